package inspector

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zerfoo/ortmeta/internal/onnx"
	"github.com/zerfoo/ortmeta/internal/onnxtest"
	"github.com/zerfoo/ortmeta/pkg/session"
)

const classifierReport = `===== ORT get_inputs =====
x [1, 3, 224, 224] float32
===== ORT get_outputs =====
y [1, 1000] float32
`

// fakeSession answers from fixed descriptors and can fail on Outputs.
type fakeSession struct {
	inputs     []session.Descriptor
	outputsErr error
	closed     *bool
}

func (f *fakeSession) Inputs() ([]session.Descriptor, error) { return f.inputs, nil }

func (f *fakeSession) Outputs() ([]session.Descriptor, error) {
	if f.outputsErr != nil {
		return nil, f.outputsErr
	}
	return []session.Descriptor{}, nil
}

func (f *fakeSession) Close() error {
	*f.closed = true
	return nil
}

var errOutputs = errors.New("outputs unavailable")

func registerFake(t *testing.T, name string, outputsErr error) *bool {
	t.Helper()
	closed := new(bool)
	t.Cleanup(func() { session.Unregister(name) })
	session.Register(name, func(_ context.Context, _ string, _ session.Options) (session.Session, error) {
		return &fakeSession{
			inputs:     []session.Descriptor{{Name: "x", Shape: session.Shape{}, Type: "float32"}},
			outputsErr: outputsErr,
			closed:     closed,
		}, nil
	})
	return closed
}

func TestReport_Classifier(t *testing.T) {
	path := onnxtest.Write(t, t.TempDir(), "model.onnx", onnxtest.Classifier())

	var out bytes.Buffer
	require.NoError(t, Report(context.Background(), &out, path, Options{}))
	assert.Equal(t, classifierReport, out.String())
}

func TestReport_SymbolicDimension(t *testing.T) {
	m := onnxtest.Model(
		[]*onnx.ValueInfoProto{onnxtest.Tensor("images", onnx.DataTypeFloat, "batch", 3, 224, 224)},
		[]*onnx.ValueInfoProto{onnxtest.Tensor("logits", onnx.DataTypeFloat, "batch", 1000)},
	)
	path := onnxtest.Write(t, t.TempDir(), "dynamic.onnx", m)

	var out bytes.Buffer
	require.NoError(t, Report(context.Background(), &out, path, Options{Format: FormatText}))
	assert.Equal(t, `===== ORT get_inputs =====
images [batch, 3, 224, 224] float32
===== ORT get_outputs =====
logits [batch, 1000] float32
`, out.String())
}

func TestReport_CountsAndOrder(t *testing.T) {
	m := onnxtest.Model(
		[]*onnx.ValueInfoProto{
			onnxtest.Tensor("input_ids", onnx.DataTypeInt64, "batch", "sequence"),
			onnxtest.Tensor("attention_mask", onnx.DataTypeInt64, "batch", "sequence"),
			onnxtest.Tensor("token_type_ids", onnx.DataTypeInt64, "batch", "sequence"),
		},
		[]*onnx.ValueInfoProto{
			onnxtest.Tensor("last_hidden_state", onnx.DataTypeFloat, "batch", "sequence", 768),
			onnxtest.Tensor("pooler_output", onnx.DataTypeFloat, "batch", 768),
		},
	)
	path := onnxtest.Write(t, t.TempDir(), "bert.onnx", m)

	var out bytes.Buffer
	require.NoError(t, Report(context.Background(), &out, path, Options{}))
	assert.Equal(t, `===== ORT get_inputs =====
input_ids [batch, sequence] int64
attention_mask [batch, sequence] int64
token_type_ids [batch, sequence] int64
===== ORT get_outputs =====
last_hidden_state [batch, sequence, 768] float32
pooler_output [batch, 768] float32
`, out.String())
}

func TestReport_Idempotent(t *testing.T) {
	path := onnxtest.Write(t, t.TempDir(), "model.onnx", onnxtest.Classifier())

	var first, second bytes.Buffer
	require.NoError(t, Report(context.Background(), &first, path, Options{}))
	require.NoError(t, Report(context.Background(), &second, path, Options{}))
	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestReport_Errors(t *testing.T) {
	dir := t.TempDir()
	invalid := onnxtest.WriteBytes(t, dir, "invalid.onnx", []byte("not a model"))

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"missing file", filepath.Join(dir, "missing.onnx"), session.ErrArtifactNotFound},
		{"invalid file", invalid, session.ErrArtifactFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := Report(context.Background(), &out, tt.path, Options{})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.path)
			assert.Empty(t, out.String())
		})
	}
}

func TestReport_NoPartialOutput(t *testing.T) {
	closed := registerFake(t, "fake-failing-outputs", errOutputs)
	path := onnxtest.Write(t, t.TempDir(), "model.onnx", onnxtest.Classifier())

	var out bytes.Buffer
	err := Report(context.Background(), &out, path, Options{Session: session.Options{Backend: "fake-failing-outputs"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, errOutputs)
	assert.Empty(t, out.String())
	assert.True(t, *closed, "session must be closed on failure")
}

func TestReport_ClosesSession(t *testing.T) {
	closed := registerFake(t, "fake-ok", nil)
	path := onnxtest.Write(t, t.TempDir(), "model.onnx", onnxtest.Classifier())

	var out bytes.Buffer
	require.NoError(t, Report(context.Background(), &out, path, Options{Session: session.Options{Backend: "fake-ok"}}))
	assert.Equal(t, "===== ORT get_inputs =====\nx [] float32\n===== ORT get_outputs =====\n", out.String())
	assert.True(t, *closed)
}

func TestReport_JSON(t *testing.T) {
	path := onnxtest.Write(t, t.TempDir(), "model.onnx", onnxtest.Classifier())

	var out bytes.Buffer
	require.NoError(t, Report(context.Background(), &out, path, Options{Format: FormatJSON}))
	assert.JSONEq(t, `{
		"inputs": [{"name": "x", "kind": "tensor", "shape": [1, 3, 224, 224], "type": "float32"}],
		"outputs": [{"name": "y", "kind": "tensor", "shape": [1, 1000], "type": "float32"}]
	}`, out.String())
}

func TestReport_YAML(t *testing.T) {
	m := onnxtest.Model(
		[]*onnx.ValueInfoProto{onnxtest.Tensor("images", onnx.DataTypeFloat, "batch", 3, 640, 640)},
		[]*onnx.ValueInfoProto{onnxtest.Tensor("output0", onnx.DataTypeFloat, 1, 8, 8400)},
	)
	path := onnxtest.Write(t, t.TempDir(), "model.onnx", m)

	var out bytes.Buffer
	require.NoError(t, Report(context.Background(), &out, path, Options{Format: FormatYAML}))

	var got struct {
		Inputs []struct {
			Name  string        `yaml:"name"`
			Shape []interface{} `yaml:"shape"`
			Type  string        `yaml:"type"`
		} `yaml:"inputs"`
		Outputs []struct {
			Name string `yaml:"name"`
		} `yaml:"outputs"`
	}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	require.Len(t, got.Inputs, 1)
	assert.Equal(t, "images", got.Inputs[0].Name)
	assert.Equal(t, []interface{}{"batch", 3, 640, 640}, got.Inputs[0].Shape)
	assert.Equal(t, "float32", got.Inputs[0].Type)
	require.Len(t, got.Outputs, 1)
	assert.Equal(t, "output0", got.Outputs[0].Name)
}

func TestReport_UnknownFormat(t *testing.T) {
	path := onnxtest.Write(t, t.TempDir(), "model.onnx", onnxtest.Classifier())

	var out bytes.Buffer
	err := Report(context.Background(), &out, path, Options{Format: "xml"})
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Empty(t, out.String())
}

func TestInspect_Text(t *testing.T) {
	m := onnxtest.Model(
		[]*onnx.ValueInfoProto{
			onnxtest.Tensor("images", onnx.DataTypeFloat, 1, 3, 640, 640),
			onnxtest.Tensor("conf_thresh", onnx.DataTypeFloat),
		},
		[]*onnx.ValueInfoProto{onnxtest.Tensor("output0", onnx.DataTypeFloat, 1, 8, 8400)},
	)
	m.ProducerName = "pytorch"
	m.ProducerVersion = "2.1.0"
	m.Graph.Name = "main_graph"
	m.MetadataProps = []*onnx.StringStringEntryProto{{Key: "stride", Value: "32"}}
	m.Graph.Initializer = []*onnx.TensorProto{{Name: "conf_thresh", DataType: int32(onnx.DataTypeFloat)}}
	path := onnxtest.Write(t, t.TempDir(), "yolo.onnx", m)

	var out bytes.Buffer
	require.NoError(t, Inspect(context.Background(), &out, path, Options{}))
	assert.Equal(t, `===== ORT get_modelmeta =====
producer_name: pytorch
producer_version: 2.1.0
graph_name: main_graph
graph_description:
domain:
description:
version: 0
ir_version: 8
opset_import: ai.onnx 17
node_count: 1
custom_metadata_map:
  stride: 32
===== ORT get_inputs =====
images [1, 3, 640, 640] float32
===== ORT get_outputs =====
output0 [1, 8, 8400] float32
===== ORT get_overridable_initializers =====
conf_thresh [] float32
`, out.String())
}

func TestInspect_JSON(t *testing.T) {
	path := onnxtest.Write(t, t.TempDir(), "model.onnx", onnxtest.Classifier())

	var out bytes.Buffer
	require.NoError(t, Inspect(context.Background(), &out, path, Options{Format: FormatJSON}))

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out.Bytes(), &raw))
	assert.Contains(t, raw, "inputs")
	assert.Contains(t, raw, "outputs")
	assert.JSONEq(t, `[]`, string(raw["overridable_initializers"]))

	var md session.Metadata
	require.NoError(t, json.Unmarshal(raw["metadata"], &md))
	assert.Equal(t, int64(8), md.IRVersion)
	assert.Equal(t, "test_graph", md.GraphName)
}

func TestInspect_RequiresIntrospector(t *testing.T) {
	closed := registerFake(t, "fake-plain", nil)
	path := onnxtest.Write(t, t.TempDir(), "model.onnx", onnxtest.Classifier())

	var out bytes.Buffer
	err := Inspect(context.Background(), &out, path, Options{Session: session.Options{Backend: "fake-plain"}})
	assert.ErrorIs(t, err, session.ErrNotSupported)
	assert.Empty(t, out.String())
	assert.True(t, *closed)
}

func TestInspect_MissingFile(t *testing.T) {
	var out bytes.Buffer
	err := Inspect(context.Background(), &out, filepath.Join(t.TempDir(), "nope.onnx"), Options{})
	assert.ErrorIs(t, err, session.ErrArtifactNotFound)
	assert.Empty(t, out.String())
}

func TestRegisterFake_Cleanup(t *testing.T) {
	t.Run("registers", func(t *testing.T) {
		registerFake(t, "fake-scoped", nil)
		assert.Contains(t, session.Backends(), "fake-scoped")
	})
	assert.NotContains(t, session.Backends(), "fake-scoped")
}
