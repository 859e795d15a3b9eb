// Package main provides the entry point for the greet CLI tool (greetctl).
//
// This package implements the main executable for the command-line companion
// to the greetd daemon. The CLI fetches greetings from a running server and
// verifies that the service behaves exactly as published, from whichever
// port the daemon's retry sweep landed on.
//
// CLI ARCHITECTURE:
// The main package orchestrates the complete CLI system including:
//   - Command Structure: One command per greeting route plus service checks
//   - Handler Integration: Command execution with API client communication
//   - Flag Management: Global configuration options shared by all commands
//   - Configuration Binding: CLI state management and validation pipeline
//
// INITIALIZATION FLOW:
// 1. Command structure setup linking commands to the root
// 2. Flag configuration binding global options to CLI state
// 3. Handler assignment linking commands to API operations
// 4. Configuration validation before any command runs
// 5. Command execution with proper error handling and exit codes
//
// The CLI follows kubectl-style patterns with consistent interfaces,
// comprehensive help text, and predictable exit codes for scripting.
package main

import (
	"os"

	"github.com/solstice-dev/greet/cmd/greetctl/commands"
	"github.com/solstice-dev/greet/cmd/greetctl/config"
	"github.com/solstice-dev/greet/cmd/greetctl/handlers"
)

func init() {
	// Get root command from commands package
	rootCmd := commands.RootCmd

	// Set version and validation
	rootCmd.Version = config.Version
	rootCmd.PersistentPreRunE = config.ValidateGlobalFlags

	// Setup all command structures
	commands.SetupCommands()

	// Setup global flags
	commands.SetupGlobalFlags(rootCmd, &config.Global.APIAddr, &config.Global.LogLevel,
		&config.Global.Timeout, &config.Global.Verbose, &config.Global.Output, config.DefaultAPIAddr)

	// Setup command handlers
	setupCommandHandlers()
}

// setupCommandHandlers assigns RunE functions to commands
func setupCommandHandlers() {
	helloCmd, eveningCmd, checkCmd := commands.GetGreetingCommands()

	helloCmd.RunE = handlers.HandleHello
	eveningCmd.RunE = handlers.HandleEvening
	checkCmd.RunE = handlers.HandleCheck
}

// main is the main entry point
func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
