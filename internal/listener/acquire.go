// Package listener implements the listener acquisition controller.
//
// This file implements the controller: the bounded sweep over the port
// range, the backoff schedule between conflicts, the single primary-to-
// fallback transition, and the terminal range-exhaustion error.
package listener

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/solstice-dev/greet/internal/logging"
	"github.com/solstice-dev/greet/internal/netutil"
)

// PortRangeExhaustedError reports that every port in the swept range failed
// to bind under the named strategy. Under the fallback strategy this is the
// terminal startup failure; the diagnostic names the exhausted range.
type PortRangeExhaustedError struct {
	Mode  Mode  // Strategy whose sweep was exhausted
	First int   // First port of the swept range, inclusive
	Last  int   // Last port of the swept range, inclusive
	Err   error // Conflict from the final attempt
}

func (e *PortRangeExhaustedError) Error() string {
	return fmt.Sprintf("no available port in range %d-%d under %s strategy",
		e.First, e.Last, e.Mode)
}

func (e *PortRangeExhaustedError) Unwrap() error {
	return e.Err
}

// Controller owns all retry, backoff, and fallback policy for acquiring the
// service's listening socket. It holds no socket state itself; each attempt
// delegates the actual bind to the strategy under trial.
type Controller struct {
	FirstPort int           // Preferred port; every sweep starts here
	LastPort  int           // Inclusive upper bound of the sweep
	BaseDelay time.Duration // Backoff base; attempt n waits BaseDelay*2^n

	Primary  Strategy // Framework-based stack, tried first
	Fallback Strategy // Bare stack, tried after primary fails

	// sleep waits for the backoff delay while staying responsive to
	// cancellation. Swapped out in tests to record the schedule instead of
	// waiting it.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewController creates a controller for the given port range and backoff
// base delay. The range is inclusive on both ends; FirstPort == LastPort
// yields a single-attempt sweep per strategy.
func NewController(firstPort, lastPort int, baseDelay time.Duration, primary, fallback Strategy) *Controller {
	return &Controller{
		FirstPort: firstPort,
		LastPort:  lastPort,
		BaseDelay: baseDelay,
		Primary:   primary,
		Fallback:  fallback,
		sleep:     sleepContext,
	}
}

// sleepContext waits for the given duration unless the context is canceled
// first, in which case it returns the context's error. Keeps the acquisition
// loop responsive to shutdown signals during long backoff waits.
func sleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// Acquire runs the full acquisition state machine: sweep the range under the
// primary strategy, fall back once to the fallback strategy, and fail
// terminally if that sweep also exhausts the range. Returns the bound
// listener together with the strategy that bound it, so the caller serves
// through the same stack that owns the socket.
//
// Any primary failure, range exhaustion or an unexpected bind error, moves
// to the fallback sweep immediately, starting over at the preferred port
// with the retry count reset and no delay before the first attempt.
// Fallback failures are final. Context cancellation aborts mid-backoff and
// surfaces as the context's error.
func (c *Controller) Acquire(ctx context.Context) (net.Listener, Strategy, error) {
	lis, err := c.sweep(ctx, c.Primary, ModePrimary)
	if err == nil {
		return lis, c.Primary, nil
	}
	if ctx.Err() != nil {
		return nil, nil, ctx.Err()
	}

	logging.Warn("Primary strategy failed to acquire a listener: %v", err)
	logging.Warn("Switching to %s strategy at port %d", c.Fallback.Name(), c.FirstPort)

	lis, ferr := c.sweep(ctx, c.Fallback, ModeFallback)
	if ferr == nil {
		return lis, c.Fallback, nil
	}
	if ctx.Err() != nil {
		return nil, nil, ctx.Err()
	}

	return nil, nil, fmt.Errorf("fallback strategy failed to acquire a listener: %w", ferr)
}

// sweep walks the port range once under a single strategy. Conflicts advance
// to the next port after the attempt's backoff delay; the final port's
// conflict skips the delay and reports exhaustion, so strategy switching
// carries no residual wait. Non-conflict bind errors abort the sweep
// immediately for the caller to interpret.
func (c *Controller) sweep(ctx context.Context, strat Strategy, mode Mode) (net.Listener, error) {
	var lastErr error

	for attempt := (Attempt{Port: c.FirstPort, Mode: mode}); attempt.Port <= c.LastPort; attempt = attempt.Next() {
		lis, err := strat.Bind(attempt.Port)
		if err == nil {
			if attempt.Retries > 0 {
				logging.Info("Bound port %d under %s strategy after %d occupied ports",
					attempt.Port, mode, attempt.Retries)
			}
			return lis, nil
		}

		if !netutil.IsAddressInUseError(err) {
			return nil, err
		}
		lastErr = err

		if attempt.Port == c.LastPort {
			break
		}

		delay := attempt.Delay(c.BaseDelay)
		logging.Warn("Port %d is in use under %s strategy, retrying on port %d in %s",
			attempt.Port, mode, attempt.Port+1, delay)
		if serr := c.sleep(ctx, delay); serr != nil {
			return nil, serr
		}
	}

	return nil, &PortRangeExhaustedError{Mode: mode, First: c.FirstPort, Last: c.LastPort, Err: lastErr}
}
