// Package config loads this module's ambient tool configuration — log
// level, default manifest filename, default target list — from a YAML
// file in the working directory. It has nothing to do with build
// manifest syntax; that grammar belongs to internal/adapters/manifest.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"go.ncore.dev/ncore/internal/core/ports"
)

// DefaultFilename is the config file FileLoader looks for when none is
// given explicitly.
const DefaultFilename = "ncore.yaml"

// file is the on-disk shape of the config file.
type file struct {
	LogLevel        string   `yaml:"logLevel"`
	DefaultManifest string   `yaml:"defaultManifest"`
	DefaultTargets  []string `yaml:"defaultTargets"`
}

// FileLoader implements ports.ConfigLoader against a YAML file named
// Filename, resolved relative to the working directory passed to Load.
type FileLoader struct {
	Filename string
}

// NewLoader creates a FileLoader that reads DefaultFilename.
func NewLoader() *FileLoader {
	return &FileLoader{Filename: DefaultFilename}
}

// Load reads the configuration rooted at cwd. A missing file is not an
// error — it yields the defaults below, so a caller with no config
// file at all still gets a usable Config.
func (l *FileLoader) Load(cwd string) (*ports.Config, error) {
	filename := l.Filename
	if filename == "" {
		filename = DefaultFilename
	}
	path := filepath.Join(cwd, filename)

	cfg := &ports.Config{
		LogLevel:        "info",
		DefaultManifest: "build.ncore",
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is joined from a caller-controlled cwd
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	if f.LogLevel != "" {
		cfg.LogLevel = f.LogLevel
	}
	if f.DefaultManifest != "" {
		cfg.DefaultManifest = f.DefaultManifest
	}
	cfg.DefaultTargets = f.DefaultTargets

	return cfg, nil
}
