//go:build onnxruntime

package session

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/zerfoo/ortmeta/internal/onnx"
)

// BackendONNXRuntime is the name of the backend that answers through the ONNX
// Runtime shared library.
const BackendONNXRuntime = "onnxruntime"

func init() {
	Register(BackendONNXRuntime, openRuntime)
}

type runtimeSession struct {
	inputs, outputs []Descriptor
	overridable     []Descriptor
	metadata        *Metadata
	closed          bool
}

func openRuntime(ctx context.Context, path string, opts Options) (Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrArtifactNotFound, path, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	model, err := LoadModel(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrArtifactFormat, path, err)
	}

	log := opts.logger().WithFields(logrus.Fields{"path": path, "library": opts.LibraryPath})
	log.Debug("loading onnxruntime")

	rm, err := onnx.LoadRuntimeModel(opts.LibraryPath, data, model.GetGraph())
	if err != nil {
		if errors.Is(err, onnx.ErrMalformed) {
			return nil, fmt.Errorf("%w: %s: %v", ErrArtifactFormat, path, err)
		}
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"inputs":  len(rm.Inputs),
		"outputs": len(rm.Outputs),
	}).Debug("onnxruntime session loaded")

	return &runtimeSession{
		inputs:      DescribeAll(rm.Inputs),
		outputs:     DescribeAll(rm.Outputs),
		overridable: overridableInitializers(model),
		metadata:    runtimeMetadataOf(rm.Metadata, model),
	}, nil
}

// runtimeMetadataOf takes the fields ONNX Runtime reports from md and the
// rest from the decoded model.
func runtimeMetadataOf(md onnx.RuntimeMetadata, model *onnx.ModelProto) *Metadata {
	out := metadataOf(model)
	out.ProducerName = md.ProducerName
	out.GraphName = md.GraphName
	out.Domain = md.Domain
	out.Description = md.Description
	out.Version = md.Version
	out.Custom = orderCustom(model.GetMetadataProps(), md.Custom)
	return out
}

func (s *runtimeSession) Inputs() ([]Descriptor, error) {
	if s.closed {
		return nil, ErrClosed
	}
	return s.inputs, nil
}

func (s *runtimeSession) Outputs() ([]Descriptor, error) {
	if s.closed {
		return nil, ErrClosed
	}
	return s.outputs, nil
}

func (s *runtimeSession) Metadata() (*Metadata, error) {
	if s.closed {
		return nil, ErrClosed
	}
	return s.metadata, nil
}

func (s *runtimeSession) OverridableInitializers() ([]Descriptor, error) {
	if s.closed {
		return nil, ErrClosed
	}
	return s.overridable, nil
}

func (s *runtimeSession) Close() error {
	s.closed = true
	return nil
}
