package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// LocalConfigFileName is looked up in the current directory.
	LocalConfigFileName = ".oasfaker.yaml"
	// GlobalConfigDir is the directory under the user config directory.
	GlobalConfigDir = "oasfaker"
	// GlobalConfigFileName is the name of the global config file.
	GlobalConfigFileName = "config.yaml"
)

// ConfigError reports an unreadable or malformed config file.
type ConfigError struct {
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Path + ": " + e.Message
}

// FindLocalConfig returns the path of .oasfaker.yaml in the current
// directory, or "" if there is none.
func FindLocalConfig() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	path := filepath.Join(cwd, LocalConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	return "", nil
}

// FindGlobalConfig returns the path to the global config file, or "" if
// there is none.
func FindGlobalConfig() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", nil // No config dir available
	}
	path := filepath.Join(configDir, GlobalConfigDir, GlobalConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	return "", nil
}

// Discover returns the first config file found locally or globally.
func Discover() string {
	if path, err := FindLocalConfig(); err == nil && path != "" {
		return path
	}
	if path, err := FindGlobalConfig(); err == nil && path != "" {
		return path
	}
	return ""
}

// Load returns the defaults overlaid with the config file at path.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := NewDefault()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Message: err.Error()}
	}
	fc, err := parse(data)
	if err != nil {
		return nil, &ConfigError{Path: path, Message: err.Error()}
	}
	merge(cfg, fc, SourceFile)
	return cfg, nil
}

func parse(data []byte) (*fileConfig, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) {
			return &fc, nil
		}
		return nil, err
	}
	return &fc, nil
}
