// Package commands contains all CLI command definitions for greetctl.
package commands

import (
	"github.com/spf13/cobra"
)

// Hello command (root greeting)
var helloCmd = &cobra.Command{
	Use:   "hello",
	Short: "Fetch the root greeting",
	Long:  "Request / from the greet service and print the response body.",
	Args:  cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Evening command (evening greeting)
var eveningCmd = &cobra.Command{
	Use:   "evening",
	Short: "Fetch the evening greeting",
	Long:  "Request /good-evening from the greet service and print the response body.",
	Args:  cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Check command (service verification)
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the service against its published routes",
	Long: `Probe every published route plus an unknown path and compare each
response against the expected status and body.

Exits non-zero when any response disagrees with the published behavior,
making the command usable from scripts and health check harnesses.`,
	Example: `  # Verify the default local server
  greetctl check

  # Verify a server on a retry port
  greetctl --api=127.0.0.1:3005 check

  # Output results in JSON format
  greetctl -o json check`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// GetGreetingCommands returns the greeting command structures for handler assignment
func GetGreetingCommands() (*cobra.Command, *cobra.Command, *cobra.Command) {
	return helloCmd, eveningCmd, checkCmd
}
