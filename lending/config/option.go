package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type Option func(cfg *Config) error

func WithLogLevel(level zapcore.Level) Option {
	return func(cfg *Config) error {
		cfg.Log.LogLevel = level
		return nil
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(cfg *Config) error {
		cfg.Server.WriteTimeout = timeout
		return nil
	}
}

// WithFile overlays the YAML file at path. Keys missing from the file keep their current value.
func WithFile(path string) Option {
	return func(cfg *Config) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrap(err, "read config file")
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return errors.Wrapf(err, "parse %s", path)
		}
		return nil
	}
}
