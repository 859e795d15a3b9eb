// Package api provides the HTTP serving stacks for the greet service.
// The gin-based Server is the primary stack; FallbackServer provides the
// same routes on the standard library when the primary cannot start.
package api

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/solstice-dev/greet/internal/logging"
	"github.com/solstice-dev/greet/internal/netutil"
)

// Timeouts shared by both serving stacks so a strategy switch never
// changes connection behavior.
const (
	readTimeout  = 15 * time.Second
	writeTimeout = 15 * time.Second
	idleTimeout  = 60 * time.Second
)

// Server is the gin-based primary serving stack
type Server struct {
	bindAddr   string
	binder     *netutil.PortBinder
	httpServer *http.Server
}

// NewServer creates a new primary serving stack instance
func NewServer(config *Config) *Server {
	// Set Gin to release mode for production
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		bindAddr: config.BindAddr,
		binder:   netutil.NewPortBinder(),
	}

	// Build the router up front so Close from the signal path never races
	// Serve over a half-initialized server
	s.httpServer = &http.Server{
		Handler:      s.buildRouter(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return s
}

// Name identifies the stack in startup logs and diagnostics
func (s *Server) Name() string {
	return "gin"
}

// Bind attempts to claim the candidate port on the configured bind address
func (s *Server) Bind(port int) (net.Listener, error) {
	return s.binder.BindTCP(s.bindAddr, port)
}

// Serve accepts connections on the bound listener until Close is called
func (s *Server) Serve(lis net.Listener) error {
	if err := s.httpServer.Serve(lis); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Close stops the server and releases the bound listener
func (s *Server) Close() error {
	return s.httpServer.Close()
}

// buildRouter assembles the gin engine with middleware and routes
func (s *Server) buildRouter() *gin.Engine {
	router := gin.New()

	// Configure Gin logging only if not already configured by CLI tools
	if !logging.IsConfiguredByCLI() {
		gin.DefaultWriter = logging.NewLevelWriter("INFO", "gin")
		gin.DefaultErrorWriter = logging.NewLevelWriter("ERROR", "gin")
	}

	// Keep dispatch identical to the fallback stack: unknown paths get a
	// plain 404, never a redirect or a 405
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false
	router.HandleMethodNotAllowed = false

	// Add middleware
	router.Use(s.loggingMiddleware())
	router.Use(gin.Recovery())

	// Setup routes
	s.setupRoutes(router)

	return router
}
