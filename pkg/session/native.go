package session

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/zerfoo/ortmeta/internal/onnx"
)

func init() {
	Register(DefaultBackend, openNative)
}

// minOverridableIRVersion is the first IR version in which graph inputs with
// initializers are overridable rather than constant.
const minOverridableIRVersion = 4

type nativeSession struct {
	model *onnx.ModelProto
}

func openNative(ctx context.Context, path string, opts Options) (Session, error) {
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

	opts.logger().WithFields(logrus.Fields{
		"path":       path,
		"ir_version": model.GetIrVersion(),
		"inputs":     len(model.GetGraph().GetInput()),
		"outputs":    len(model.GetGraph().GetOutput()),
	}).Debug("decoded model")

	return &nativeSession{model: model}, nil
}

// LoadModel decodes data and checks it has what loading a model requires: an
// IR version and a graph.
func LoadModel(data []byte) (*onnx.ModelProto, error) {
	model, err := onnx.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	if model.GetIrVersion() <= 0 {
		return nil, fmt.Errorf("missing or invalid IR version %d", model.GetIrVersion())
	}
	if model.GetGraph() == nil {
		return nil, fmt.Errorf("no graph found in model")
	}
	return model, nil
}

// Inputs returns the graph inputs that are not bound by an initializer.
func (s *nativeSession) Inputs() ([]Descriptor, error) {
	if s.model == nil {
		return nil, ErrClosed
	}
	return feedInputs(s.model.GetGraph()), nil
}

func (s *nativeSession) Outputs() ([]Descriptor, error) {
	if s.model == nil {
		return nil, ErrClosed
	}
	return DescribeAll(s.model.GetGraph().GetOutput()), nil
}

func (s *nativeSession) Metadata() (*Metadata, error) {
	if s.model == nil {
		return nil, ErrClosed
	}
	return metadataOf(s.model), nil
}

func (s *nativeSession) OverridableInitializers() ([]Descriptor, error) {
	if s.model == nil {
		return nil, ErrClosed
	}
	return overridableInitializers(s.model), nil
}

func (s *nativeSession) Close() error {
	s.model = nil
	return nil
}

// feedInputs returns the graph inputs that are not bound by an initializer.
func feedInputs(g *onnx.GraphProto) []Descriptor {
	inits := g.InitializerNames()
	out := make([]Descriptor, 0, len(g.GetInput()))
	for _, vi := range g.GetInput() {
		if _, ok := inits[vi.GetName()]; ok {
			continue
		}
		out = append(out, Describe(vi))
	}
	return out
}

// overridableInitializers returns the graph inputs bound by an initializer.
// It is empty before IR version 4, where such inputs are constants.
func overridableInitializers(m *onnx.ModelProto) []Descriptor {
	out := []Descriptor{}
	if m.GetIrVersion() < minOverridableIRVersion {
		return out
	}
	g := m.GetGraph()
	inits := g.InitializerNames()
	for _, vi := range g.GetInput() {
		if _, ok := inits[vi.GetName()]; ok {
			out = append(out, Describe(vi))
		}
	}
	return out
}
