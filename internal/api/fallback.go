package api

import (
	"fmt"
	"io"
	stdlog "log"
	"net"
	"net/http"

	"github.com/solstice-dev/greet/internal/greeting"
	"github.com/solstice-dev/greet/internal/logging"
	"github.com/solstice-dev/greet/internal/netutil"
)

// FallbackServer is the standard library fallback serving stack.
//
// It exists for the case where the primary stack cannot acquire a port
// anywhere in the configured range. It serves the same greeting table with
// the same response bodies, headers, and log lines as the gin stack, so a
// client cannot tell which stack answered.
type FallbackServer struct {
	bindAddr   string
	binder     *netutil.PortBinder
	httpServer *http.Server
}

// NewFallbackServer creates a new fallback serving stack instance
func NewFallbackServer(config *Config) *FallbackServer {
	s := &FallbackServer{
		bindAddr: config.BindAddr,
		binder:   netutil.NewPortBinder(),
	}

	s.httpServer = &http.Server{
		Handler:      http.HandlerFunc(s.handle),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
		// Route net/http's own complaints through the shared logger
		ErrorLog: stdlog.New(logging.NewLevelWriter("WARN", "http"), "", 0),
	}

	return s
}

// Name identifies the stack in startup logs and diagnostics
func (s *FallbackServer) Name() string {
	return "net/http"
}

// Bind attempts to claim the candidate port on the configured bind address
func (s *FallbackServer) Bind(port int) (net.Listener, error) {
	return s.binder.BindTCP(s.bindAddr, port)
}

// Serve accepts connections on the bound listener until Close is called
func (s *FallbackServer) Serve(lis net.Listener) error {
	if err := s.httpServer.Serve(lis); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Close stops the server and releases the bound listener
func (s *FallbackServer) Close() error {
	return s.httpServer.Close()
}

// handle dispatches a request against the shared greeting table
//
// The request line is logged before dispatch, responses are plain text,
// and anything outside the table is a 404, matching the gin stack.
func (s *FallbackServer) handle(w http.ResponseWriter, r *http.Request) {
	logging.Info("%s %s", r.Method, r.URL.RequestURI())

	w.Header().Set("Content-Type", greeting.ContentType)

	route, ok := greeting.Match(r.Method, r.URL.Path)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, greeting.NotFoundBody)
		return
	}

	w.WriteHeader(route.Status)
	io.WriteString(w, route.Body)
}
