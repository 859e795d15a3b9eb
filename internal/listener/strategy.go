// Package listener implements the listener acquisition controller for the
// greet service: the startup routine that turns a preferred port and an upper
// bound into a live net.Listener, or a clean process exit when the whole
// range is occupied.
//
// Acquisition walks candidate ports under a serving strategy. A port conflict
// advances to the next port after an exponentially growing, context-aware
// delay. Exhausting the range under the primary strategy switches once to the
// fallback strategy and re-sweeps the same range from the preferred port,
// with no delay before that first fallback attempt. Exhausting the range
// under the fallback strategy is terminal. A bind failure that is not a port
// conflict never continues the sweep: under primary it switches straight to
// fallback, under fallback it is terminal.
//
// This file defines the capability and state types; the controller itself
// lives in acquire.go.
package listener

import (
	"net"
	"time"
)

// Mode identifies which serving strategy an acquisition attempt runs under.
// The controller flips primary to fallback at most once and never back.
type Mode string

const (
	// ModePrimary is the framework-based serving strategy tried first.
	ModePrimary Mode = "primary"

	// ModeFallback is the bare serving strategy used after primary fails.
	ModeFallback Mode = "fallback"
)

// Strategy is one serving stack's view of the acquisition loop: bind a
// specific port, serve a bound listener, and shut down. Both stacks respond
// identically on the wire; the controller neither knows nor cares what
// protocol a strategy speaks.
//
// Bind must return *netutil.AddressInUseError (possibly wrapped) for port
// conflicts so the controller can tell retryable occupation apart from
// fatal bind errors.
type Strategy interface {
	// Name identifies the strategy in logs and diagnostics.
	Name() string

	// Bind reserves the given port and returns the live listener.
	Bind(port int) (net.Listener, error)

	// Serve accepts connections on a listener returned by Bind. It blocks
	// until the strategy is closed or the listener fails.
	Serve(lis net.Listener) error

	// Close stops serving immediately. Safe to call whether or not Serve
	// has been started.
	Close() error
}

// Attempt is the immutable state of one bind attempt: which port, how many
// attempts have already failed in this sweep, and under which strategy.
// Transitions return fresh values, so any point of the state machine can be
// constructed directly in tests.
type Attempt struct {
	Port    int  // Candidate port for this attempt
	Retries int  // Failed attempts so far in this sweep
	Mode    Mode // Strategy this sweep runs under
}

// Next returns the attempt for the following candidate port.
func (a Attempt) Next() Attempt {
	return Attempt{Port: a.Port + 1, Retries: a.Retries + 1, Mode: a.Mode}
}

// Delay returns the backoff wait before moving on from this attempt:
// base * 2^retries, so the first conflict waits the base delay and each
// further conflict doubles it.
func (a Attempt) Delay(base time.Duration) time.Duration {
	return base << a.Retries
}
