// Package config provides configuration management for the filesplit tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/sgaunet/filesplit/pkg/constants"
	"github.com/sgaunet/filesplit/pkg/errkind"
	"github.com/sgaunet/filesplit/pkg/hooks"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidChunkSize is returned when the configured chunk size is outside (0, 500] MB.
	ErrInvalidChunkSize = fmt.Errorf("%w: invalid chunk size", errkind.ErrConfig)
	// ErrInvalidDebugLevel is returned for a log level other than debug, info, warn or error.
	ErrInvalidDebugLevel = fmt.Errorf("%w: invalid debug level", errkind.ErrConfig)
)

var validDebugLevels = []string{"debug", "info", "warn", "error"}

// Config holds the application configuration.
type Config struct {
	ChunkSizeMB int         `env:"CHUNKSIZEMB" env-default:"100"   yaml:"chunkSizeMB"`
	DebugLevel  string      `env:"DEBUGLEVEL"  env-default:"info"  yaml:"debugLevel"`
	NoLogTime   bool        `env:"NOLOGTIME"   env-default:"false" yaml:"noLogTime"`
	Hooks       hooks.Hooks `yaml:"hooks"`
}

// NewConfigFromFile returns a new Config struct from the given file.
// Variables set in the environment override the file values.
func NewConfigFromFile(filePath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(filePath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read config from file %s: %w", errkind.ErrConfig, filePath, err)
	}
	return &cfg, nil
}

// NewConfigFromEnv returns a new Config struct from the environment variables.
func NewConfigFromEnv() (*Config, error) {
	var cfg Config
	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read config from environment: %w", errkind.ErrConfig, err)
	}
	return &cfg, nil
}

// Validate checks the chunk size bounds and the log level.
func (c *Config) Validate() error {
	var errs []error
	if c.ChunkSizeMB <= 0 || c.ChunkSizeMB > constants.MaxChunkSizeMB {
		errs = append(errs, fmt.Errorf("%w: %d MB (must be between 1 and %d)",
			ErrInvalidChunkSize, c.ChunkSizeMB, constants.MaxChunkSizeMB))
	}
	if !isValidDebugLevel(c.DebugLevel) {
		errs = append(errs, fmt.Errorf("%w: '%s' (expected one of %s)",
			ErrInvalidDebugLevel, c.DebugLevel, strings.Join(validDebugLevels, ", ")))
	}
	return errors.Join(errs...)
}

func isValidDebugLevel(level string) bool {
	for _, l := range validDebugLevels {
		if level == l {
			return true
		}
	}
	return false
}

func (c *Config) String() string {
	cyaml, err := yaml.Marshal(c)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return string(cyaml)
}

// Usage prints the usage of the config.
func (c *Config) Usage() {
	f := cleanenv.Usage(c, nil)
	f()
}
