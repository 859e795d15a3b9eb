package config

import (
	"net"
	"strings"
	"testing"
	"time"
)

// TestDefaultBindAddr validates the default bind address constant
func TestDefaultBindAddr(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{
			name:     "default bind address is 0.0.0.0",
			expected: "0.0.0.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if DefaultBindAddr != tt.expected {
				t.Errorf("DefaultBindAddr = %q, want %q", DefaultBindAddr, tt.expected)
			}
		})
	}
}

// TestDefaultBindAddrIsValidIP validates that the default bind address is a valid IP
func TestDefaultBindAddrIsValidIP(t *testing.T) {
	ip := net.ParseIP(DefaultBindAddr)
	if ip == nil {
		t.Errorf("DefaultBindAddr %q is not a valid IP address", DefaultBindAddr)
	}

	// Verify it's IPv4
	if ip.To4() == nil {
		t.Errorf("DefaultBindAddr %q is not a valid IPv4 address", DefaultBindAddr)
	}
}

// TestPortRange validates the port sweep boundaries
func TestPortRange(t *testing.T) {
	tests := []struct {
		name     string
		got      int
		expected int
	}{
		{
			name:     "preferred port is 3000",
			got:      DefaultPort,
			expected: 3000,
		},
		{
			name:     "max port is 3010",
			got:      DefaultMaxPort,
			expected: 3010,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %d, want %d", tt.got, tt.expected)
			}
		})
	}
}

// TestPortRangeConsistency validates logical consistency of the sweep range
func TestPortRangeConsistency(t *testing.T) {
	if DefaultPort > DefaultMaxPort {
		t.Errorf("DefaultPort %d must not exceed DefaultMaxPort %d", DefaultPort, DefaultMaxPort)
	}

	if DefaultPort < 1 || DefaultPort > 65535 {
		t.Errorf("DefaultPort %d is outside the valid TCP port range", DefaultPort)
	}

	if DefaultMaxPort < 1 || DefaultMaxPort > 65535 {
		t.Errorf("DefaultMaxPort %d is outside the valid TCP port range", DefaultMaxPort)
	}

	// Eleven candidate ports per strategy keeps worst-case startup bounded
	if got := DefaultMaxPort - DefaultPort + 1; got != 11 {
		t.Errorf("sweep covers %d ports, want 11", got)
	}
}

// TestDefaultRetryDelay validates the backoff base delay
func TestDefaultRetryDelay(t *testing.T) {
	if DefaultRetryDelay != 1000*time.Millisecond {
		t.Errorf("DefaultRetryDelay = %v, want 1s", DefaultRetryDelay)
	}

	if DefaultRetryDelay <= 0 {
		t.Error("DefaultRetryDelay must be positive")
	}
}

// TestDefaultLogLevel validates the default log level constant
func TestDefaultLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{
			name:     "default log level is INFO",
			expected: "INFO",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if DefaultLogLevel != tt.expected {
				t.Errorf("DefaultLogLevel = %q, want %q", DefaultLogLevel, tt.expected)
			}
		})
	}
}

// TestDefaultLogLevelFormat validates log level format conventions
func TestDefaultLogLevelFormat(t *testing.T) {
	// Log level should be uppercase
	if DefaultLogLevel != strings.ToUpper(DefaultLogLevel) {
		t.Errorf("DefaultLogLevel %q should be uppercase", DefaultLogLevel)
	}

	// Log level should not contain spaces
	if strings.Contains(DefaultLogLevel, " ") {
		t.Errorf("DefaultLogLevel %q should not contain spaces", DefaultLogLevel)
	}

	// Log level should not be empty
	if DefaultLogLevel == "" {
		t.Error("DefaultLogLevel should not be empty")
	}
}
