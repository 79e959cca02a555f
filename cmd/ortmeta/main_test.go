package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerfoo/ortmeta/internal/onnx"
	"github.com/zerfoo/ortmeta/internal/onnxtest"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	valid := onnxtest.Write(t, dir, "model.onnx", onnxtest.Classifier())
	invalid := onnxtest.WriteBytes(t, dir, "broken.onnx", []byte("definitely not protobuf"))

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:     "report valid model",
			args:     []string{"report", valid},
			wantCode: 0,
			wantStdout: "===== ORT get_inputs =====\n" +
				"x [1, 3, 224, 224] float32\n" +
				"===== ORT get_outputs =====\n" +
				"y [1, 1000] float32\n",
		},
		{
			name:       "missing model",
			args:       []string{"report", filepath.Join(dir, "missing.onnx")},
			wantCode:   1,
			wantStderr: "model artifact not found",
		},
		{
			name:       "invalid model",
			args:       []string{"report", invalid},
			wantCode:   1,
			wantStderr: "invalid model artifact",
		},
		{
			name:       "no model path",
			args:       []string{"report"},
			wantCode:   1,
			wantStderr: "a model path is required",
		},
		{
			name:       "too many arguments",
			args:       []string{"report", valid, valid},
			wantCode:   1,
			wantStderr: "accepts at most 1 arg",
		},
		{
			name:       "unknown backend",
			args:       []string{"report", "--backend", "tensorrt", valid},
			wantCode:   1,
			wantStderr: "unknown session backend",
		},
		{
			name:       "unknown format",
			args:       []string{"report", "--format", "xml", valid},
			wantCode:   1,
			wantStderr: "unknown output format",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tt.args...)
			assert.Equal(t, tt.wantCode, code, "stderr: %s", stderr)
			if tt.wantCode != 0 {
				assert.Empty(t, stdout)
				assert.Contains(t, stderr, tt.wantStderr)
				return
			}
			assert.Equal(t, tt.wantStdout, stdout)
		})
	}
}

func TestRun_ModelFromConfig(t *testing.T) {
	dir := t.TempDir()
	model := onnxtest.Write(t, dir, "model.onnx", onnxtest.Classifier())
	cfgPath := filepath.Join(dir, "ortmeta.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("model: "+model+"\nreport:\n  format: json\n"), 0o644))

	code, stdout, stderr := runCLI(t, "report", "--config", cfgPath)
	require.Equal(t, 0, code, stderr)
	assert.JSONEq(t, `{
		"inputs": [{"name": "x", "kind": "tensor", "shape": [1, 3, 224, 224], "type": "float32"}],
		"outputs": [{"name": "y", "kind": "tensor", "shape": [1, 1000], "type": "float32"}]
	}`, stdout)
}

func TestRun_FlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	model := onnxtest.Write(t, dir, "model.onnx", onnxtest.Classifier())
	cfgPath := filepath.Join(dir, "ortmeta.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("report:\n  format: json\n"), 0o644))

	code, stdout, stderr := runCLI(t, "report", "--config", cfgPath, "--format", "text", model)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "===== ORT get_inputs =====\n")
}

func TestRun_ModelFromEnv(t *testing.T) {
	model := onnxtest.Write(t, t.TempDir(), "model.onnx", onnxtest.Classifier())
	t.Setenv("ORTMETA_MODEL", model)

	code, stdout, stderr := runCLI(t, "report")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "y [1, 1000] float32\n")
}

func TestRun_Idempotent(t *testing.T) {
	model := onnxtest.Write(t, t.TempDir(), "model.onnx", onnxtest.Classifier())

	_, first, _ := runCLI(t, "report", model)
	_, second, _ := runCLI(t, "report", model)
	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestRun_DebugLogsGoToStderr(t *testing.T) {
	model := onnxtest.Write(t, t.TempDir(), "model.onnx", onnxtest.Classifier())

	code, stdout, stderr := runCLI(t, "report", "--log-level", "debug", model)
	require.Equal(t, 0, code, stderr)
	assert.NotContains(t, stdout, "level=")
	assert.Contains(t, stderr, "level=debug")
	assert.Contains(t, stderr, "opening session")
}

func TestRun_Inspect(t *testing.T) {
	m := onnxtest.Model(
		[]*onnx.ValueInfoProto{onnxtest.Tensor("images", onnx.DataTypeFloat, "batch", 3, 640, 640)},
		[]*onnx.ValueInfoProto{onnxtest.Tensor("output0", onnx.DataTypeFloat, "batch", 8, 8400)},
	)
	m.ProducerName = "pytorch"
	model := onnxtest.Write(t, t.TempDir(), "yolo.onnx", m)

	code, stdout, stderr := runCLI(t, "inspect", model)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "===== ORT get_modelmeta =====\nproducer_name: pytorch\n")
	assert.Contains(t, stdout, "images [batch, 3, 640, 640] float32\n")
	assert.Contains(t, stdout, "===== ORT get_overridable_initializers =====\n")
}
