// Package commands provides the complete CLI command structure for the greet daemon.
//
// This package implements the root command for greetd, the greeting HTTP
// daemon. It manages the CLI interface for network configuration, retry
// pacing, and logging through a flag system and validation pipeline.
//
// COMMAND ARCHITECTURE:
// The daemon uses a simple root command structure with flag support:
//   - Root Command: Main daemon execution with listener configuration
//   - Flag System: Network, retry pacing, and operational settings
//   - Validation Pipeline: Pre-execution configuration validation and setup
//   - Logo Display: Daemon startup presentation
//
// The zero-argument invocation is the canonical form: greetd with no flags
// serves the greeting routes on the default port range.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/solstice-dev/greet/cmd/greetd/config"
	"github.com/solstice-dev/greet/cmd/greetd/daemon"
	"github.com/solstice-dev/greet/cmd/greetd/utils"
	"github.com/solstice-dev/greet/internal/logging"
	"github.com/solstice-dev/greet/internal/version"
	"github.com/spf13/cobra"
)

// Global variable to track log file handle for cleanup
var logFileHandle *os.File

// CleanupLogFile closes the log file handle if it exists
// This function is called during daemon shutdown to ensure proper cleanup
func CleanupLogFile() {
	if logFileHandle != nil {
		if err := logFileHandle.Close(); err != nil {
			// Log to stderr since we're cleaning up the log file
			// Use fmt.Fprintf instead of logging to avoid circular dependency
			fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
		}
		logFileHandle = nil
	}
}

// Root command for the greet daemon
var RootCmd = &cobra.Command{
	Use:   "greetd",
	Short: "Hello World HTTP server with automatic port retry and fallback",
	Long: `Greet daemon (greetd) serves a tiny plain text greeting API.

Starts on the preferred port and walks an ascending port range with
exponential backoff when ports are busy. If the whole range is occupied,
the daemon switches once to a standard library serving stack and sweeps
the range again before giving up.`,
	Version:      version.GreetdVersion,
	SilenceUsage: true, // Don't show usage on errors
	Example: `  # Start with defaults (port 3000, retrying up to 3010)
  greetd

  # Prefer a different port range
  greetd --listen=0.0.0.0:8080 --max-port=8090

  # Faster retries for local development
  greetd --retry-delay=100ms --log-level=DEBUG

  # Log to a file
  greetd --log-file=/var/log/greetd.log`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Display logo first, before any validation or logging
		utils.DisplayLogo(version.GreetdVersion)
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Check which flags were explicitly set by user
		CheckExplicitFlags(cmd)

		// Setup log file redirection if --log-file was specified
		if config.Global.IsExplicitlySet(config.LogFileField) && config.Global.LogFile != "" {
			// Create parent directories if they don't exist
			logDir := filepath.Dir(config.Global.LogFile)
			if err := os.MkdirAll(logDir, 0755); err != nil {
				return fmt.Errorf("failed to create log directory %s: %w", logDir, err)
			}

			// Open/create log file with append mode
			var err error
			logFileHandle, err = os.OpenFile(config.Global.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return fmt.Errorf("failed to open log file %s: %w", config.Global.LogFile, err)
			}

			// Redirect all logging to the file
			logging.SetOutput(logFileHandle)
		}

		// Configure logging level immediately after flags are parsed to prevent
		// INFO logs during config initialization when ERROR level is requested
		logging.SetLevel(config.Global.LogLevel)
		// Initialize configuration from environment variables and defaults
		config.InitializeConfig()
		// Re-apply logging level after config initialization to pick up
		// any environment variable overrides that may have changed the log level
		logging.SetLevel(config.Global.LogLevel)
		// Validate configuration and ensure log file cleanup on validation failure
		if err := config.ValidateConfig(); err != nil {
			// Close log file handle if validation fails to prevent resource leak
			CleanupLogFile()
			return err
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Ensure log file cleanup on exit
		defer CleanupLogFile()
		return daemon.Run()
	},
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	// Setup all flags
	SetupFlags(RootCmd)

	// Currently only has the root command
	// Future subcommands can be added here
}
