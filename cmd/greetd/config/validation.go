// Package config handles configuration validation for the greet daemon.
//
// This package provides validation logic for all daemon configuration
// parameters before startup. Validation ensures reliable operation by:
//   - Parsing and validating the listen address
//   - Enforcing port requirements (no OS-assigned port 0)
//   - Checking the sweep upper bound against the preferred port
//   - Requiring a positive backoff base delay
//   - Applying environment variable overrides with flag precedence
//
// The validation process transforms raw configuration values into validated,
// normalized forms ready for the listener acquisition sweep. This prevents
// misconfigurations that would otherwise surface as confusing bind failures
// or an empty candidate range at startup.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/solstice-dev/greet/internal/logging"
	"github.com/solstice-dev/greet/internal/validate"
)

// InitializeConfig initializes configuration from environment variables and defaults.
// This function applies environment overrides to the Global config before
// validation runs. Explicit flags always win over the environment, so the
// overrides only apply to values still carrying their defaults.
func InitializeConfig() {
	// Initialize DEBUG environment variable override
	if os.Getenv("DEBUG") == "true" && !Global.IsExplicitlySet(LogLevelField) {
		Global.LogLevel = "DEBUG"
		logging.Info("DEBUG environment variable detected, setting log level to DEBUG")
	}

	// Initialize PORT environment variable override for the preferred port.
	// Only the port component changes; the bind host keeps its default.
	if portEnv := os.Getenv("PORT"); portEnv != "" && !Global.IsExplicitlySet(ListenField) {
		port, err := strconv.Atoi(portEnv)
		if err != nil || port < 1 || port > 65535 {
			logging.Warn("Invalid PORT environment variable '%s', keeping %s", portEnv, Global.ListenAddr)
		} else if host, _, splitErr := net.SplitHostPort(Global.ListenAddr); splitErr == nil {
			Global.ListenAddr = fmt.Sprintf("%s:%d", host, port)
			logging.Info("PORT environment variable detected, preferred port set to %d", port)
		}
	}
}

// ValidateConfig performs validation and normalization of all daemon
// configuration parameters before service startup.
//
// This function orchestrates the complete validation workflow:
//   - Listen address parsing and validation
//   - Preferred port assignment (explicit ports only, never 0)
//   - Sweep bound consistency (max-port anchors an ascending range)
//   - Backoff pacing validation (retry-delay must be positive)
//   - Log level validation against the canonical level set
//
// After successful validation, ListenAddr holds just the host and
// ListenPort the preferred port, ready for the acquisition controller.
//
// Returns error for any validation failure with descriptive context.
func ValidateConfig() error {
	// Parse and validate the listen address for the HTTP server
	netAddr, err := validate.ParseBindAddress(Global.ListenAddr)
	if err != nil {
		logging.Error("Invalid listen address '%s': %v", Global.ListenAddr, err)
		return fmt.Errorf("invalid listen address: %w", err)
	}

	// Enforce an explicit preferred port. Port 0 (OS-assigned) would make
	// the sweep range meaningless since every candidate derives from it.
	if err := validate.ValidateField(netAddr.Port, "required,min=1,max=65535"); err != nil {
		logging.Error("Listen port cannot be 0 (auto-assigned) - the retry sweep needs a concrete starting port")
		return fmt.Errorf("daemon requires specific port (not 0): %w", err)
	}

	Global.ListenAddr = netAddr.Host
	Global.ListenPort = netAddr.Port

	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		return err
	}

	// Validate the sweep upper bound against the preferred port
	if err := validate.ValidatePortRange(Global.MaxPort); err != nil {
		logging.Error("Invalid max-port value: %d", Global.MaxPort)
		return fmt.Errorf("invalid max-port: %w", err)
	}
	if Global.MaxPort < Global.ListenPort {
		logging.Error("max-port %d is below the preferred port %d", Global.MaxPort, Global.ListenPort)
		return fmt.Errorf("max-port must be at least the preferred port: %d < %d", Global.MaxPort, Global.ListenPort)
	}

	// Validate backoff pacing between occupied candidates
	if err := validate.ValidatePositiveTimeout(Global.RetryDelay, "retry-delay"); err != nil {
		logging.Error("Invalid retry-delay: %v", err)
		return fmt.Errorf("invalid retry-delay: %w", err)
	}

	return nil
}
