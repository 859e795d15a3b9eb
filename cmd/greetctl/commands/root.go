// Package commands provides the complete command tree implementation for greetctl.
//
// This package defines the command structure for the greet CLI tool. Commands
// map directly onto the daemon's published HTTP surface: one command per
// greeting route plus a check command that verifies the whole surface.
//
// COMMAND STRUCTURE:
//   - hello: Fetch the root greeting from /
//   - evening: Fetch the evening greeting from /good-evening
//   - check: Probe every published route plus the 404 surface and verify
//     each response against the expected status and body
//
// All commands follow consistent patterns with standardized flag handling,
// error messages, and output formatting for reliable service interaction.
package commands

import (
	"github.com/spf13/cobra"
)

// Root command
var RootCmd = &cobra.Command{
	Use:   "greetctl",
	Short: "CLI tool for the greet HTTP service",
	Long: `Greet CLI (greetctl) is a command-line tool for fetching greetings
from a running greetd server and verifying that the service behaves
exactly as published.

The daemon may come up on any port in its retry range, so greetctl takes
the actual address through the --api flag rather than assuming a port.`,
	SilenceUsage: true,
	Example: `  # Fetch the root greeting
  greetctl hello

  # Fetch the evening greeting
  greetctl evening

  # Verify the service against its published routes
  greetctl check

  # Connect to a server that came up on a retry port
  greetctl --api=127.0.0.1:3005 hello

  # Connect to a remote server
  greetctl --api=192.168.1.100:3000 hello

  # Output check results in JSON format
  greetctl --output=json check
  greetctl -o json check

  # Show verbose output
  greetctl --verbose check`,
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	// Add all top-level commands to root
	RootCmd.AddCommand(helloCmd)
	RootCmd.AddCommand(eveningCmd)
	RootCmd.AddCommand(checkCmd)
}

// SetupGlobalFlags configures all global persistent flags
func SetupGlobalFlags(rootCmd *cobra.Command, apiAddrPtr *string, logLevelPtr *string,
	timeoutPtr *int, verbosePtr *bool, outputPtr *string, defaultAPIAddr string) {
	rootCmd.PersistentFlags().StringVar(apiAddrPtr, "api", defaultAPIAddr,
		"Greet API server address")
	rootCmd.PersistentFlags().StringVar(logLevelPtr, "log-level", "ERROR",
		"Log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().IntVar(timeoutPtr, "timeout", 8,
		"Connection timeout in seconds")
	rootCmd.PersistentFlags().BoolVarP(verbosePtr, "verbose", "v", false,
		"Show verbose output")
	rootCmd.PersistentFlags().StringVarP(outputPtr, "output", "o", "table",
		"Output format: table, json")
}
