// Package config provides configuration management for the greet daemon.
//
// This package implements the configuration system for the greetd daemon
// including listen address management, port sweep bounds, retry pacing, and
// logging destinations. It provides centralized configuration state with
// explicit user override tracking.
//
// CONFIGURATION ARCHITECTURE:
// The daemon binds a single HTTP endpoint, but the port it ends up on is
// not fixed: startup sweeps a candidate range beginning at the preferred
// port. Configuration therefore separates three concerns:
//
//   - Listen: Preferred bind address and first candidate port
//   - MaxPort: Inclusive upper bound of the candidate sweep
//   - RetryDelay: Base delay for exponential backoff between candidates
//
// EXPLICIT OVERRIDE TRACKING:
// The configuration system tracks which values were explicitly set by users
// versus inherited from defaults. This enables sophisticated behavior like:
//
//   - PORT environment variable applying only when --listen was not given
//   - DEBUG environment variable deferring to an explicit --log-level
//   - Log file redirection only when a path was actually configured
package config

import (
	"time"

	configDefaults "github.com/solstice-dev/greet/internal/config"
)

// ConfigField represents a configuration field that can be explicitly set
type ConfigField int

const (
	// Configuration field identifiers
	ListenField ConfigField = iota
	MaxPortField
	RetryDelayField
	LogLevelField
	LogFileField
)

const (
	DefaultListen     = configDefaults.DefaultBindAddr + ":3000" // Default listen address
	DefaultMaxPort    = configDefaults.DefaultMaxPort            // Default sweep upper bound
	DefaultRetryDelay = configDefaults.DefaultRetryDelay         // Default backoff base delay
	DefaultLogLevel   = configDefaults.DefaultLogLevel           // Default log level
)

// Config holds all daemon configuration values
type Config struct {
	ListenAddr string        // Network address for the HTTP server
	ListenPort int           // Preferred HTTP port, first candidate of the sweep
	MaxPort    int           // Last candidate port of the sweep, inclusive
	RetryDelay time.Duration // Backoff base between occupied candidates
	LogLevel   string        // Log level: DEBUG, INFO, WARN, ERROR
	LogFile    string        // Log file path (empty means stdout/stderr)

	// Flags to track if values were explicitly set by user
	listenExplicitlySet     bool
	maxPortExplicitlySet    bool
	retryDelayExplicitlySet bool
	logLevelExplicitlySet   bool
	logFileExplicitlySet    bool
}

// Global configuration instance
var Global Config

// SetExplicitlySet marks a configuration field as explicitly set by the user.
// Enables environment variable overrides that respect user preferences
// versus automatic configuration defaults.
func (c *Config) SetExplicitlySet(field ConfigField, value bool) {
	switch field {
	case ListenField:
		c.listenExplicitlySet = value
	case MaxPortField:
		c.maxPortExplicitlySet = value
	case RetryDelayField:
		c.retryDelayExplicitlySet = value
	case LogLevelField:
		c.logLevelExplicitlySet = value
	case LogFileField:
		c.logFileExplicitlySet = value
	}
}

// IsExplicitlySet returns whether a configuration field was explicitly set by the user.
// Used by initialization to decide when environment variables may override
// a value and when the user's flag wins.
func (c *Config) IsExplicitlySet(field ConfigField) bool {
	switch field {
	case ListenField:
		return c.listenExplicitlySet
	case MaxPortField:
		return c.maxPortExplicitlySet
	case RetryDelayField:
		return c.retryDelayExplicitlySet
	case LogLevelField:
		return c.logLevelExplicitlySet
	case LogFileField:
		return c.logFileExplicitlySet
	}
	return false
}
