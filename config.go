package schema

import "github.com/goliatone/go-schema/internal/config"

// Config holds the engine's runtime settings.
type Config = config.Config

// LoggingConfig configures the engine's logger.
type LoggingConfig = config.Logging

// DefaultConfig returns the settings used when no configuration is provided.
var DefaultConfig = config.Default

// LoadConfig reads a TOML configuration file layered over the defaults.
var LoadConfig = config.Load
