// Package main provides the entry point for the greet daemon (greetd).
//
// This package implements the main executable for the greeting HTTP service.
// The daemon serves a small plain text API and survives busy ports by
// sweeping an ascending candidate range, switching serving stacks once
// before giving up.
//
// INITIALIZATION FLOW:
// 1. Command structure setup with flag configuration
// 2. Configuration validation and environment variable processing
// 3. Daemon execution with proper error handling and exit codes
package main

import (
	"os"

	"github.com/solstice-dev/greet/cmd/greetd/commands"
)

func init() {
	// Setup all command structures
	commands.SetupCommands()
}

// main is the main entry point
func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
