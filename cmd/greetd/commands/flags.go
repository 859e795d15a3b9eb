// Package commands contains Cobra CLI command definitions for greetd.
package commands

import (
	"github.com/solstice-dev/greet/cmd/greetd/config"
	"github.com/spf13/cobra"
)

// SetupFlags configures all command line flags for the daemon
func SetupFlags(cmd *cobra.Command) {
	// Network flags
	cmd.Flags().StringVar(&config.Global.ListenAddr, "listen", config.DefaultListen,
		"Address and preferred port for the HTTP server (e.g., 0.0.0.0:3000)\n"+
			"When the port is busy the daemon retries ascending ports up to --max-port")
	cmd.Flags().IntVar(&config.Global.MaxPort, "max-port", config.DefaultMaxPort,
		"Last port to try when the preferred port is busy (inclusive)")

	// Retry pacing flags
	cmd.Flags().DurationVar(&config.Global.RetryDelay, "retry-delay", config.DefaultRetryDelay,
		"Base delay between bind attempts; doubles after each occupied port")

	// Operational flags
	cmd.Flags().StringVar(&config.Global.LogLevel, "log-level", config.DefaultLogLevel,
		"Log level: DEBUG, INFO, WARN, ERROR")
	cmd.Flags().StringVar(&config.Global.LogFile, "log-file", "",
		"Write logs to a file instead of stdout/stderr")
}

// CheckExplicitFlags checks if flags were explicitly set by the user
func CheckExplicitFlags(cmd *cobra.Command) {
	config.Global.SetExplicitlySet(config.ListenField, cmd.Flags().Changed("listen"))
	config.Global.SetExplicitlySet(config.MaxPortField, cmd.Flags().Changed("max-port"))
	config.Global.SetExplicitlySet(config.RetryDelayField, cmd.Flags().Changed("retry-delay"))
	config.Global.SetExplicitlySet(config.LogLevelField, cmd.Flags().Changed("log-level"))
	config.Global.SetExplicitlySet(config.LogFileField, cmd.Flags().Changed("log-file"))
}
