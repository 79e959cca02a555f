package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides: ORTMETA_BACKEND_NAME sets
// backend.name.
const EnvPrefix = "ORTMETA_"

type Config struct {
	// Model is the artifact path used when none is given on the command line.
	Model   string        `koanf:"model"`
	Backend BackendConfig `koanf:"backend"`
	Report  ReportConfig  `koanf:"report"`
	Log     LogConfig     `koanf:"log"`
}

type BackendConfig struct {
	Name        string `koanf:"name"` // native, onnxruntime
	LibraryPath string `koanf:"library_path"`
}

type ReportConfig struct {
	Format string `koanf:"format"` // text, json, yaml
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // text, json
}

// Load builds the configuration from defaults, the YAML file at path (if
// any), ORTMETA_ environment variables and finally overrides, in that order
// of increasing precedence. Override keys use the dotted koanf form.
func Load(path string, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"backend.name":         "native",
		"backend.library_path": "",
		"report.format":        "text",
		"log.level":            "warn",
		"log.format":           "text",
	}
	for key, v := range defaults {
		if err := k.Set(key, v); err != nil {
			return nil, fmt.Errorf("failed to set default %s: %w", key, err)
		}
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	for key, v := range overrides {
		if err := k.Set(key, v); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// envKey maps ORTMETA_BACKEND_LIBRARY_PATH to backend.library_path. Only the
// first underscore after a section name separates levels.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, section := range []string{"backend", "report", "log"} {
		if strings.HasPrefix(key, section+"_") {
			return section + "." + strings.TrimPrefix(key, section+"_")
		}
	}
	return key
}
