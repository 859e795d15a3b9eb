// Package config provides configuration management for the greetctl CLI.
package config

import "github.com/solstice-dev/greet/internal/version"

const (
	DefaultAPIAddr = "127.0.0.1:3000" // Default API server address (routable)
)

// Version returns the current greetctl CLI version from the centralized version package
var Version = version.GreetctlVersion

// Global holds the global CLI configuration
var Global struct {
	APIAddr  string // Address of greet API server to connect to
	LogLevel string // Log level for CLI operations
	Timeout  int    // Connection timeout in seconds
	Verbose  bool   // Show verbose output
	Output   string // Output format: table, json
}
