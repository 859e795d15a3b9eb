// Package config provides common default configuration values shared across
// greet components (listener acquisition, HTTP serving, CLI). This
// centralizes configuration management and keeps the daemon and the client
// CLI agreeing on the same port range and timing constants.
package config

import "time"

const (
	// DefaultBindAddr is the default bind address for the HTTP listener
	// Using 0.0.0.0 allows binding to all available network interfaces
	// TODO: Add support for IPv6 bind addresses (::)
	DefaultBindAddr = "0.0.0.0"

	// DefaultPort is the preferred listening port. Every acquisition sweep
	// starts here, under both serving strategies.
	DefaultPort = 3000

	// DefaultMaxPort is the inclusive upper bound of the port sweep.
	// A strategy that fails to bind every port in [DefaultPort, DefaultMaxPort]
	// has exhausted its range.
	DefaultMaxPort = 3010

	// DefaultRetryDelay is the base delay between bind attempts. The actual
	// wait grows exponentially: DefaultRetryDelay * 2^retries.
	DefaultRetryDelay = 1000 * time.Millisecond

	// DefaultLogLevel is the default log level for all components
	// INFO provides good balance of visibility without verbose debug output
	DefaultLogLevel = "INFO"
)
