// Package handlers provides command handler functions for greetctl.
//
// This package contains all the command execution logic for greetctl
// commands. Handlers coordinate between the API client and user-facing
// output while keeping presentation concerns out of the client layer.
//
// All handlers follow consistent patterns:
// - cobra.Command RunE function signature for CLI integration
// - Standardized error handling and logging using the logging package
// - Output formatting that respects the global --output and --verbose flags
//
// The greeting commands print response bodies verbatim so their output can
// be piped and compared directly. The check command compares live responses
// against the same route table the daemon serves from, so the expected
// values can never drift from the implementation.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/solstice-dev/greet/cmd/greetctl/client"
	"github.com/solstice-dev/greet/cmd/greetctl/config"
	"github.com/solstice-dev/greet/cmd/greetctl/utils"
	"github.com/solstice-dev/greet/internal/greeting"
	"github.com/solstice-dev/greet/internal/logging"
	"github.com/spf13/cobra"
)

// checkResult records the outcome of verifying one path against its
// published response. Problem is empty when the response matched.
type checkResult struct {
	Path        string `json:"path"`
	Status      int    `json:"status"`
	WantStatus  int    `json:"wantStatus"`
	Body        string `json:"body"`
	ContentType string `json:"contentType"`
	Healthy     bool   `json:"healthy"`
	Problem     string `json:"problem,omitempty"`
}

// HandleHello handles the hello command for fetching the root greeting from
// the service. Prints the response body verbatim so the command's output
// matches what any HTTP client would see on /.
//
// Provides the quickest way to confirm the service is up and answering,
// with connection errors reported including the server address for
// troubleshooting misconfigured or unreachable targets.
func HandleHello(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	logging.Info("Fetching greeting from API server: %s", config.Global.APIAddr)

	// Create API client and fetch the greeting
	apiClient := client.CreateAPIClient()
	body, err := apiClient.GetHello()
	if err != nil {
		return err
	}

	fmt.Println(body)
	logging.Success("Successfully fetched greeting from /")
	return nil
}

// HandleEvening handles the evening command for fetching the evening
// greeting from the service. Prints the response body verbatim so the
// command's output matches what any HTTP client would see on /good-evening.
//
// Complements the hello command by exercising the second published route,
// with connection errors reported including the server address for
// troubleshooting misconfigured or unreachable targets.
func HandleEvening(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	logging.Info("Fetching greeting from API server: %s", config.Global.APIAddr)

	// Create API client and fetch the greeting
	apiClient := client.CreateAPIClient()
	body, err := apiClient.GetGoodEvening()
	if err != nil {
		return err
	}

	fmt.Println(body)
	logging.Success("Successfully fetched greeting from /good-evening")
	return nil
}

// HandleCheck handles the check command for verifying the service against
// its published behavior. Probes every route the daemon serves plus an
// unknown path, then compares each response's status, body, and content
// type against the expected values.
//
// Essential for confirming that a freshly started server, on whichever port
// the retry sweep landed on, serves exactly the published surface. Returns
// a non-zero exit through cobra when any probe disagrees, making the
// command usable from scripts and health check harnesses.
func HandleCheck(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	logging.Info("Checking greet service at API server: %s", config.Global.APIAddr)

	apiClient := client.CreateAPIClient()

	// Expected responses come from the same table the daemon serves from
	type expectation struct {
		path   string
		status int
		body   string
	}
	expected := make([]expectation, 0, 3)
	for _, route := range greeting.Routes() {
		expected = append(expected, expectation{path: route.Path, status: route.Status, body: route.Body})
	}
	// Anything outside the table must come back as the plain text 404
	expected = append(expected, expectation{path: "/missing", status: http.StatusNotFound, body: greeting.NotFoundBody})

	results := make([]checkResult, 0, len(expected))
	failed := 0
	for _, want := range expected {
		probe, err := apiClient.Probe(want.path)
		if err != nil {
			return err
		}

		var problems []string
		if probe.Status != want.status {
			problems = append(problems, fmt.Sprintf("status %d, want %d", probe.Status, want.status))
		}
		if probe.Body != want.body {
			problems = append(problems, fmt.Sprintf("body %q, want %q", probe.Body, want.body))
		}
		if probe.ContentType != greeting.ContentType {
			problems = append(problems, fmt.Sprintf("content type %q, want %q", probe.ContentType, greeting.ContentType))
		}

		result := checkResult{
			Path:        want.path,
			Status:      probe.Status,
			WantStatus:  want.status,
			Body:        probe.Body,
			ContentType: probe.ContentType,
			Healthy:     len(problems) == 0,
			Problem:     strings.Join(problems, "; "),
		}
		if !result.Healthy {
			failed++
		}
		results = append(results, result)
	}

	if config.Global.Output == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			logging.Error("Failed to encode JSON: %v", err)
			return fmt.Errorf("failed to encode JSON output")
		}
	} else {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

		// Header - show EXPECTED and CONTENT-TYPE columns only in verbose mode
		if config.Global.Verbose {
			fmt.Fprintln(w, "PATH\tSTATUS\tEXPECTED\tCONTENT-TYPE\tRESULT")
		} else {
			fmt.Fprintln(w, "PATH\tSTATUS\tRESULT")
		}

		for _, result := range results {
			outcome := "ok"
			if !result.Healthy {
				outcome = result.Problem
			}

			if config.Global.Verbose {
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n",
					result.Path, result.Status, result.WantStatus, result.ContentType, outcome)
			} else {
				fmt.Fprintf(w, "%s\t%d\t%s\n", result.Path, result.Status, outcome)
			}
		}
		w.Flush()
	}

	if failed > 0 {
		return fmt.Errorf("service check failed: %d of %d probes mismatched", failed, len(results))
	}

	logging.Success("All %d service checks passed", len(results))
	return nil
}
