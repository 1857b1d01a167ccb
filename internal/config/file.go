package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding the YAML defaults path
const EnvConfigPath = "RECIPE_BROWSER_CONFIG"

// FileDefaults are optional startup defaults read from a YAML file.
// Preference values already saved by the user take precedence.
type FileDefaults struct {
	ServiceURL            string `yaml:"service_url"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`
	ResultColumns         int    `yaml:"result_columns"`
	LogLevel              string `yaml:"log_level"`
	LogFormat             string `yaml:"log_format"`
	LogOutput             string `yaml:"log_output"`
}

// LoadFileDefaults reads defaults from a YAML file. Unknown keys are rejected.
func LoadFileDefaults(path string) (*FileDefaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	d := &FileDefaults{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(d); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return d, nil
}

// LoadFileDefaultsFromEnv loads defaults from the file named by
// RECIPE_BROWSER_CONFIG, or returns empty defaults when it is unset.
func LoadFileDefaultsFromEnv() (*FileDefaults, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		return &FileDefaults{}, nil
	}
	return LoadFileDefaults(path)
}
