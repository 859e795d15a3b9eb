// Package validate provides configuration validation utilities for greet
// components.
//
// This file implements common validation patterns used by the daemon and CLI
// config packages to ensure consistency and reduce duplication. All functions
// leverage the go-playground/validator library for standardized validation
// behavior.
package validate

import (
	"fmt"
	"time"
)

// ValidatePortRange validates that a port number is within the valid range (1-65535).
// Uses the validator library for consistent error handling and messaging.
//
// Rejects port 0 (OS-assigned) since the acquisition sweep needs a fixed,
// predictable range to walk and report.
func ValidatePortRange(port int) error {
	return ValidateField(port, "required,min=1,max=65535")
}

// ValidatePositiveTimeout validates that a timeout duration is positive (> 0).
// Essential for ensuring timing configurations don't cause infinite waits or
// immediate failures.
//
// Used for the retry backoff base delay and the CLI connection timeout.
func ValidatePositiveTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 {
		return fmt.Errorf("%s must be positive", name)
	}
	return nil
}
