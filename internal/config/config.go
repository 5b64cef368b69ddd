// Package config loads the command line settings of lox from a YAML file.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the home directory when no file is given
const DefaultFile = ".loxrc.yml"

// Config holds the settings of the lox command
type Config struct {
	LogLevel    string `yaml:"log_level"`
	Color       bool   `yaml:"color"`
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
}

// Default returns the settings used when no file overrides them
func Default() Config {
	return Config{
		LogLevel:    "warning",
		Color:       true,
		Prompt:      "> ",
		HistoryFile: ".lox_history",
	}
}

// Load reads path over the defaults. An empty path means DefaultFile in the
// home directory, which may be missing; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, DefaultFile)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Validate checks the values that can be wrong
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	if c.Prompt == "" {
		return errors.New("prompt must not be empty")
	}
	return nil
}

// Level returns the parsed log level. Call Validate first.
func (c Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}

// HistoryPath resolves HistoryFile against the home directory when relative
func (c Config) HistoryPath() string {
	if c.HistoryFile == "" || filepath.IsAbs(c.HistoryFile) {
		return c.HistoryFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return c.HistoryFile
	}
	return filepath.Join(home, c.HistoryFile)
}
