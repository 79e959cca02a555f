// Package inspector reports the declared interface of a model artifact.
package inspector

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/zerfoo/ortmeta/pkg/session"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned for an unrecognized Options.Format.
var ErrUnknownFormat = errors.New("unknown output format")

// Section headers, named after the ONNX Runtime calls that produce them.
const (
	headerInputs    = "===== ORT get_inputs ====="
	headerOutputs   = "===== ORT get_outputs ====="
	headerMeta      = "===== ORT get_modelmeta ====="
	headerOverrides = "===== ORT get_overridable_initializers ====="
)

// Options configures Report and Inspect.
type Options struct {
	Session session.Options
	// Format is one of FormatText, FormatJSON or FormatYAML; empty means text.
	Format string
	Logger logrus.FieldLogger
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// interfaceReport is the structured form of Report's output.
type interfaceReport struct {
	Inputs  []session.Descriptor `json:"inputs" yaml:"inputs"`
	Outputs []session.Descriptor `json:"outputs" yaml:"outputs"`
}

// modelReport is the structured form of Inspect's output.
type modelReport struct {
	Metadata                *session.Metadata    `json:"metadata" yaml:"metadata"`
	Inputs                  []session.Descriptor `json:"inputs" yaml:"inputs"`
	Outputs                 []session.Descriptor `json:"outputs" yaml:"outputs"`
	OverridableInitializers []session.Descriptor `json:"overridable_initializers" yaml:"overridable_initializers"`
}

// Report opens the artifact at path and writes its inputs and outputs to w.
// Nothing is written unless both lists were retrieved.
func Report(ctx context.Context, w io.Writer, path string, opts Options) (err error) {
	if err := checkFormat(opts.Format); err != nil {
		return err
	}
	s, err := openSession(ctx, path, opts)
	if err != nil {
		return err
	}
	defer closeSession(s, path, &err)

	rep := interfaceReport{}
	if rep.Inputs, err = s.Inputs(); err != nil {
		return fmt.Errorf("failed to list inputs of %s: %w", path, err)
	}
	if rep.Outputs, err = s.Outputs(); err != nil {
		return fmt.Errorf("failed to list outputs of %s: %w", path, err)
	}
	opts.logger().WithFields(logrus.Fields{
		"path":    path,
		"inputs":  len(rep.Inputs),
		"outputs": len(rep.Outputs),
	}).Debug("reporting model interface")

	var buf bytes.Buffer
	switch opts.Format {
	case FormatJSON, FormatYAML:
		err = encode(&buf, opts.Format, rep)
	default:
		writeSection(&buf, headerInputs, rep.Inputs)
		writeSection(&buf, headerOutputs, rep.Outputs)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// Inspect writes the model metadata, inputs, outputs and overridable
// initializers of the artifact at path to w. The session backend must
// implement session.Introspector.
func Inspect(ctx context.Context, w io.Writer, path string, opts Options) (err error) {
	if err := checkFormat(opts.Format); err != nil {
		return err
	}
	s, err := openSession(ctx, path, opts)
	if err != nil {
		return err
	}
	defer closeSession(s, path, &err)

	in, ok := s.(session.Introspector)
	if !ok {
		return fmt.Errorf("model metadata: %w", session.ErrNotSupported)
	}

	rep := modelReport{}
	if rep.Metadata, err = in.Metadata(); err != nil {
		return fmt.Errorf("failed to read metadata of %s: %w", path, err)
	}
	if rep.Inputs, err = s.Inputs(); err != nil {
		return fmt.Errorf("failed to list inputs of %s: %w", path, err)
	}
	if rep.Outputs, err = s.Outputs(); err != nil {
		return fmt.Errorf("failed to list outputs of %s: %w", path, err)
	}
	if rep.OverridableInitializers, err = in.OverridableInitializers(); err != nil {
		return fmt.Errorf("failed to list overridable initializers of %s: %w", path, err)
	}

	var buf bytes.Buffer
	switch opts.Format {
	case FormatJSON, FormatYAML:
		err = encode(&buf, opts.Format, rep)
	default:
		writeMetadata(&buf, rep.Metadata)
		writeSection(&buf, headerInputs, rep.Inputs)
		writeSection(&buf, headerOutputs, rep.Outputs)
		writeSection(&buf, headerOverrides, rep.OverridableInitializers)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

func checkFormat(format string) error {
	switch format {
	case "", FormatText, FormatJSON, FormatYAML:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func openSession(ctx context.Context, path string, opts Options) (session.Session, error) {
	sopts := opts.Session
	if sopts.Logger == nil {
		sopts.Logger = opts.Logger
	}
	s, err := session.Open(ctx, path, sopts)
	if err != nil {
		return nil, fmt.Errorf("failed to open model: %w", err)
	}
	return s, nil
}

func closeSession(s session.Session, path string, err *error) {
	if cerr := s.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("failed to close session for %s: %w", path, cerr)
	}
}

func writeSection(w io.Writer, header string, ds []session.Descriptor) {
	fmt.Fprintln(w, header)
	for _, d := range ds {
		fmt.Fprintln(w, d.String())
	}
}

func writeMetadata(w io.Writer, md *session.Metadata) {
	fmt.Fprintln(w, headerMeta)
	writeField(w, "producer_name", md.ProducerName)
	writeField(w, "producer_version", md.ProducerVersion)
	writeField(w, "graph_name", md.GraphName)
	writeField(w, "graph_description", md.GraphDescription)
	writeField(w, "domain", md.Domain)
	writeField(w, "description", md.Description)
	writeField(w, "version", md.Version)
	writeField(w, "ir_version", md.IRVersion)
	for _, op := range md.Opsets {
		writeField(w, "opset_import", fmt.Sprintf("%s %d", op.Domain, op.Version))
	}
	writeField(w, "node_count", md.NodeCount)
	if len(md.Custom) > 0 {
		fmt.Fprintln(w, "custom_metadata_map:")
		for _, kv := range md.Custom {
			writeField(w, "  "+kv.Key, kv.Value)
		}
	}
}

// writeField writes "key: value", dropping the trailing space for empty
// values.
func writeField(w io.Writer, key string, value interface{}) {
	v := fmt.Sprint(value)
	if v == "" {
		fmt.Fprintf(w, "%s:\n", key)
		return
	}
	fmt.Fprintf(w, "%s: %s\n", key, v)
}

func encode(w io.Writer, format string, v interface{}) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode JSON report: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode YAML report: %w", err)
		}
	}
	return nil
}
