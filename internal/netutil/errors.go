// Package netutil provides network utilities for the greet service.
//
// This file implements unified network error checking utilities for consistent
// error classification across all networking components. Provides proper type-based
// error detection that works reliably across different operating systems and Go
// versions, avoiding fragile string-based error matching.
//
// Key capabilities:
//   - Address-in-use detection for port binding conflicts
//   - Connection-refused detection for unreachable services
//   - Proper error unwrapping and type checking
//   - Cross-platform compatibility using syscall constants
//
// The acquisition controller depends on this classification to decide between
// sweeping to the next port and switching serving strategies.

package netutil

import (
	"errors"
	"net"
	"syscall"
)

// IsAddressInUseError checks if an error indicates "address already in use"
// using proper error type checking rather than string matching.
//
// Critical for reliable error classification that works across different
// operating systems and Go versions. Enables the retry logic to distinguish
// between port conflicts (walk to the next port with backoff) and other
// binding failures (switch strategy or give up).
func IsAddressInUseError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.EADDRINUSE)
	}
	return false
}

// IsConnectionRefusedError checks if an error indicates "connection refused"
// using proper error type checking rather than string matching.
//
// Used by greetctl to turn a failed probe into a useful hint that the daemon
// is not running at the target address, rather than surfacing a raw dial
// error.
func IsConnectionRefusedError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED)
	}
	return false
}
