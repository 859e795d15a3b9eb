// Package client provides API client functionality for the greetctl CLI.
//
// This package implements the HTTP client layer for communicating with the
// greetd daemon. It handles all aspects of API communication including
// request execution, error handling, retry logic, and structured logging
// for reliable service interaction.
//
// API CLIENT ARCHITECTURE:
// The GreetAPIClient wraps the Resty HTTP client with greet-specific behavior:
//   - Connection Management: Timeout configuration and retry policies
//   - Request/Response Handling: Plain text bodies with status code checks
//   - Identification: User-Agent headers for compatibility tracking
//   - Fault Tolerance: Automatic retries on connection failures
//
// The daemon serves plain text rather than structured payloads, so the
// client exposes response bodies verbatim. Greeting fetches treat any
// non-200 status as an error; the Probe method reports raw status and body
// unchanged so callers can verify the service against its published
// behavior, including the 404 surface.
package client

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/solstice-dev/greet/cmd/greetctl/config"
	"github.com/solstice-dev/greet/cmd/greetctl/utils"
	"github.com/solstice-dev/greet/internal/logging"
	"github.com/solstice-dev/greet/internal/netutil"
)

// ProbeResult captures the raw response from a single service probe without
// interpreting it. Contains the status, body, and content type exactly as
// received so callers can compare against expected values.
//
// Used by the check command to verify every published route plus the 404
// surface, where a non-200 status is an expected outcome rather than an
// error condition.
type ProbeResult struct {
	Path        string `json:"path"`
	Status      int    `json:"status"`
	Body        string `json:"body"`
	ContentType string `json:"contentType"`
}

// GreetAPIClient wraps the Resty HTTP client with greet-specific functionality
// for reliable service communication. Provides a configured client with retry
// logic, structured logging, and proper timeout handling for all operations.
//
// Manages all HTTP communication with greetd endpoints including error
// handling and response checks. Configured with appropriate timeouts, retry
// policies, and logging integration for dependable CLI operations.
type GreetAPIClient struct {
	client  *resty.Client
	baseURL string
}

// NewGreetAPIClient creates a new API client with comprehensive Resty
// configuration for reliable service communication. Configures timeout
// handling, retry logic, structured logging integration, and proper headers.
//
// Sets up retry policies for fault tolerance and integrates with the CLI
// logging system for consistent operational visibility and debugging
// capabilities across all greetctl commands.
func NewGreetAPIClient(apiAddr string, timeout int) *GreetAPIClient {
	client := resty.New()

	baseURL := fmt.Sprintf("http://%s", apiAddr)

	// Route Resty's internal logging through our structured logging system
	client.SetLogger(utils.RestyLogger{})

	// Configure client with timeouts, headers, and retry logic
	client.
		SetTimeout(time.Duration(timeout)*time.Second).
		SetBaseURL(baseURL).
		SetHeader("Accept", "text/plain").
		SetHeader("User-Agent", fmt.Sprintf("greetctl/%s", config.Version))

	// Add retry mechanism with custom retry conditions
	client.
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// Only retry on connection errors, not HTTP errors
			return err != nil
		})

	// Custom request logging using structured logging
	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logging.Debug("Making API request: %s %s", req.Method, req.URL)
		return nil
	})

	// Custom response logging using structured logging
	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logging.Debug("API response: %d %s (took %v)",
			resp.StatusCode(), resp.Status(), resp.Time())
		return nil
	})

	// Custom error logging using structured logging
	client.OnError(func(req *resty.Request, err error) {
		logging.Debug("API request failed: %s %s - %v", req.Method, req.URL, err)
	})

	return &GreetAPIClient{
		client:  client,
		baseURL: baseURL,
	}
}

// GetHello fetches the root greeting from the daemon. Performs the GET
// against / and returns the plain text body for display.
//
// Treats any status other than 200 as an error so callers see a clear
// message when the service misbehaves, and handles connectivity issues
// gracefully with the server address included for troubleshooting.
func (api *GreetAPIClient) GetHello() (string, error) {
	resp, err := api.client.R().Get("/")

	if err != nil {
		if netutil.IsConnectionRefusedError(err) {
			return "", fmt.Errorf("connection refused at %s - is greetd running there?", api.baseURL)
		}
		return "", fmt.Errorf("failed to connect to API server at %s: %w", api.baseURL, err)
	}

	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode(), resp.String())
	}

	return resp.String(), nil
}

// GetGoodEvening fetches the evening greeting from the daemon. Performs the
// GET against /good-evening and returns the plain text body for display.
//
// Treats any status other than 200 as an error so callers see a clear
// message when the service misbehaves, and handles connectivity issues
// gracefully with the server address included for troubleshooting.
func (api *GreetAPIClient) GetGoodEvening() (string, error) {
	resp, err := api.client.R().Get("/good-evening")

	if err != nil {
		if netutil.IsConnectionRefusedError(err) {
			return "", fmt.Errorf("connection refused at %s - is greetd running there?", api.baseURL)
		}
		return "", fmt.Errorf("failed to connect to API server at %s: %w", api.baseURL, err)
	}

	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode(), resp.String())
	}

	return resp.String(), nil
}

// Probe performs a GET against an arbitrary path and reports the raw status,
// body, and content type. HTTP-level failures are part of the result, not an
// error: a 404 from an unknown path is exactly what the check command wants
// to see. Only transport failures are returned as errors.
func (api *GreetAPIClient) Probe(path string) (*ProbeResult, error) {
	resp, err := api.client.R().Get(path)

	if err != nil {
		if netutil.IsConnectionRefusedError(err) {
			return nil, fmt.Errorf("connection refused at %s - is greetd running there?", api.baseURL)
		}
		return nil, fmt.Errorf("failed to connect to API server at %s: %w", api.baseURL, err)
	}

	return &ProbeResult{
		Path:        path,
		Status:      resp.StatusCode(),
		Body:        resp.String(),
		ContentType: resp.Header().Get("Content-Type"),
	}, nil
}

// CreateAPIClient creates a new greet API client using current global CLI
// configuration including API address and timeout settings. Provides
// convenient client instantiation for CLI commands without manual
// configuration management.
//
// Simplifies API client creation throughout the CLI by leveraging global
// configuration state, ensuring consistent client behavior across command
// implementations.
func CreateAPIClient() *GreetAPIClient {
	return NewGreetAPIClient(config.Global.APIAddr, config.Global.Timeout)
}
