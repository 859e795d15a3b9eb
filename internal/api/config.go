// Package api provides the HTTP serving stacks for the greet service.
//
// This file defines configuration structures and validation logic for the
// serving stacks that respond to greeting requests. The same Config drives
// both the gin-based primary server and the bare net/http fallback server,
// so the two stacks always bind the same host and differ only in the
// machinery that serves requests, never in what they serve.
//
// Configuration validation ensures network settings are valid before the
// port acquisition sweep starts, rather than surfacing a bad bind address
// as repeated bind failures across the whole candidate port range.
package api

import (
	"fmt"

	"github.com/solstice-dev/greet/internal/validate"
)

// Config holds the configuration parameters required for running a serving
// stack.
//
// The bind port is deliberately absent from this structure: port selection
// belongs to the acquisition controller, which asks a stack to bind one
// candidate port at a time until one succeeds. Only the bind host stays
// fixed for the lifetime of the process.
//
// The Config struct is shared by both serving stacks, ensuring that a
// strategy switch during startup can never change which interface the
// service listens on.
//
// TODO: Add support for configurable timeouts (read, write, idle)
type Config struct {
	BindAddr string // HTTP server bind address (e.g., "0.0.0.0")
}

// DefaultConfig creates a new Config instance with sensible default values
// for local development and testing environments.
//
// This function initializes a serving stack configuration with conservative
// defaults that prioritize safety during local development. The
// configuration uses loopback binding so a development instance is not
// reachable from other hosts unless explicitly requested.
//
// The daemon overrides the bind address with its configured listen address
// before constructing the serving stacks.
func DefaultConfig() *Config {
	return &Config{
		// Default to loopback for safer local development. Daemon can override.
		BindAddr: "127.0.0.1",
	}
}

// Validate performs validation of all configuration parameters to ensure a
// serving stack can bind and operate correctly.
//
// This method checks that the bind address is a usable IP address before
// any listener is created. Early validation helps operators identify
// configuration problems before the acquisition sweep starts, improving
// startup reliability and reducing troubleshooting time.
func (c *Config) Validate() error {
	if err := validate.ValidateField(c.BindAddr, "required,ip"); err != nil {
		return fmt.Errorf("bind address validation failed: %w", err)
	}
	return nil
}
