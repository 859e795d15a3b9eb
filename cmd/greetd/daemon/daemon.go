// Package daemon provides the core greet daemon orchestration and lifecycle management.
//
// This package implements the startup, serving, and graceful shutdown logic
// for the greeting HTTP service. It wires together the two serving stacks
// and the listener acquisition controller that decides which stack ends up
// owning the socket.
//
// STARTUP FLOW:
// 1. Validate the serving configuration produced by the config package
// 2. Construct both serving stacks from the same configuration
// 3. Run the acquisition sweep: preferred port first, then ascending
//    candidates with exponential backoff, switching stacks once if the
//    primary cannot bind anywhere in the range
// 4. Announce the bound port and the served routes
// 5. Serve until a shutdown signal arrives
//
// SHUTDOWN:
// SIGINT/SIGTERM cancel the shared context. Cancellation reaches the
// acquisition sweep as well, so a signal during a long backoff wait exits
// promptly instead of serving out the remaining delay. After a listener is
// acquired, the same signal path closes the serving stack and waits for the
// serve loop to drain before reporting completion.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/solstice-dev/greet/cmd/greetd/config"
	"github.com/solstice-dev/greet/internal/api"
	"github.com/solstice-dev/greet/internal/greeting"
	"github.com/solstice-dev/greet/internal/listener"
	"github.com/solstice-dev/greet/internal/logging"
	"github.com/solstice-dev/greet/internal/netutil"
	"github.com/solstice-dev/greet/internal/version"
)

// buildAPIConfig converts daemon config to serving stack config
func buildAPIConfig() *api.Config {
	apiConfig := api.DefaultConfig()

	apiConfig.BindAddr = config.Global.ListenAddr

	return apiConfig
}

// Run orchestrates the complete greet daemon lifecycle from listener
// acquisition to graceful shutdown.
//
// Returns nil for clean exits (including a signal arriving before a port
// was acquired) and an error when startup fails terminally, such as both
// serving stacks exhausting the port range.
func Run() error {
	// Apply logging level early to respect --log-level flag before any log output
	logging.SetLevel(config.Global.LogLevel)
	logging.Info("Starting greet daemon v%s", version.GreetdVersion)

	// Redirect stdlib logger output through the unified pipeline to capture
	// dependency logs (an http.Server without ErrorLog uses the global logger)
	if config.Global.LogLevel == "ERROR" {
		logging.RedirectStandardLog(nil)
	} else {
		logging.RedirectStandardLog(logging.NewLevelWriter("DEBUG", "stdlog"))
	}

	apiConfig := buildAPIConfig()
	if err := apiConfig.Validate(); err != nil {
		logging.Error("Invalid serving configuration: %v", err)
		return fmt.Errorf("invalid serving configuration: %w", err)
	}

	// Both stacks share one config so a strategy switch never changes the
	// bind host or the served routes
	primary := api.NewServer(apiConfig)
	fallback := api.NewFallbackServer(apiConfig)

	controller := listener.NewController(config.Global.ListenPort, config.Global.MaxPort,
		config.Global.RetryDelay, primary, fallback)

	// Set up graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logging.Info("Received signal: %v", sig)
		cancel()
	}()

	logging.Info("Acquiring listener on %s starting from port %d (up to %d)",
		config.Global.ListenAddr, config.Global.ListenPort, config.Global.MaxPort)

	lis, strat, err := controller.Acquire(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logging.Info("Startup interrupted before a listener was acquired")
			return nil
		}

		var exhausted *listener.PortRangeExhaustedError
		if errors.As(err, &exhausted) {
			logging.Error("Both serving stacks failed: %v", exhausted)
			logging.Error("Free a port in range %d-%d or move the range with --listen/--max-port",
				exhausted.First, exhausted.Last)
		} else {
			logging.Error("Failed to acquire listener: %v", err)
		}
		return fmt.Errorf("failed to acquire listener: %w", err)
	}

	port, err := netutil.GetListenerPort(lis)
	if err != nil {
		lis.Close()
		logging.Error("Failed to determine bound port: %v", err)
		return fmt.Errorf("failed to determine bound port: %w", err)
	}

	logging.Success("Server started on %s:%d using the %s stack",
		config.Global.ListenAddr, port, strat.Name())
	logging.Info("Routes served:")
	for _, route := range greeting.Routes() {
		logging.Info("  - %s %s", route.Method, route.Path)
	}
	logging.Info("Daemon running... Press Ctrl+C to shutdown")

	// Serve in the background so shutdown signals stay responsive
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- strat.Serve(lis)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logging.Error("Server failed: %v", err)
			return fmt.Errorf("server failed: %w", err)
		}
		// Serve only returns nil after Close, so this is a completed shutdown
		return nil
	case <-ctx.Done():
	}

	// Graceful shutdown
	logging.Info("Initiating graceful shutdown...")

	if err := strat.Close(); err != nil {
		logging.Error("Error shutting down server: %v", err)
	}

	// Wait for the serve loop to drain before reporting completion
	if err := <-serveErr; err != nil {
		logging.Error("Server exited with error during shutdown: %v", err)
	}

	logging.Success("Greet daemon shutdown completed")
	return nil
}
