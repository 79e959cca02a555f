package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Model)
	assert.Equal(t, "native", cfg.Backend.Name)
	assert.Equal(t, "", cfg.Backend.LibraryPath)
	assert.Equal(t, "text", cfg.Report.Format)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_FileEnvAndOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ortmeta.yaml")
	content := `
model: models/resnet.onnx
backend:
  name: onnxruntime
  library_path: /opt/ort/libonnxruntime.so
report:
  format: yaml
log:
  level: info
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("ORTMETA_LOG_LEVEL", "debug")
	t.Setenv("ORTMETA_BACKEND_LIBRARY_PATH", "/usr/lib/libonnxruntime.so")

	cfg, err := Load(path, map[string]interface{}{"report.format": "json"})
	require.NoError(t, err)

	assert.Equal(t, "models/resnet.onnx", cfg.Model)
	assert.Equal(t, "onnxruntime", cfg.Backend.Name)
	assert.Equal(t, "/usr/lib/libonnxruntime.so", cfg.Backend.LibraryPath)
	assert.Equal(t, "json", cfg.Report.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_ModelFromEnv(t *testing.T) {
	t.Setenv("ORTMETA_MODEL", "/data/model.onnx")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "/data/model.onnx", cfg.Model)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config file")
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ORTMETA_MODEL", "model"},
		{"ORTMETA_BACKEND_NAME", "backend.name"},
		{"ORTMETA_BACKEND_LIBRARY_PATH", "backend.library_path"},
		{"ORTMETA_REPORT_FORMAT", "report.format"},
		{"ORTMETA_LOG_LEVEL", "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.in))
		})
	}
}
