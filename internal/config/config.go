// Package config carries the runtime settings of the schema engine:
// recursion bounds and logging. Settings load from a TOML file and are
// validated before use.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrConfigInvalid marks a configuration that fails validation.
var ErrConfigInvalid = errors.New("config: invalid configuration")

// Logging configures the engine's logger.
type Logging struct {
	// Level is one of trace, debug, info, warn, error, fatal.
	Level string `toml:"level"`
	// Format is one of json, console, pretty.
	Format string `toml:"format"`
	// AddSource includes the caller location in log records.
	AddSource bool `toml:"add_source"`
}

// Config holds the engine settings.
type Config struct {
	// MaxResolveDepth bounds reference resolution chains.
	MaxResolveDepth int `toml:"max_resolve_depth"`
	// MaxValidateDepth bounds validation recursion.
	MaxValidateDepth int `toml:"max_validate_depth"`

	Logging Logging `toml:"logging"`
}

// Default returns the configuration used when no file is provided.
func Default() Config {
	return Config{
		MaxResolveDepth:  64,
		MaxValidateDepth: 128,
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a TOML configuration file, layered over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks field ranges and enumerations.
func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.MaxResolveDepth, validation.Required, validation.Min(1), validation.Max(4096)),
		validation.Field(&c.MaxValidateDepth, validation.Required, validation.Min(1), validation.Max(4096)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	err = validation.ValidateStruct(&c.Logging,
		validation.Field(&c.Logging.Level, validation.Required,
			validation.In("trace", "debug", "info", "warn", "error", "fatal")),
		validation.Field(&c.Logging.Format, validation.Required,
			validation.In("json", "console", "pretty")),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	return nil
}
