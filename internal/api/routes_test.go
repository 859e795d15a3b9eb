package api

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// TestSetupRoutes tests that routes are properly registered by checking the route tree
func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	server := NewServer(&Config{BindAddr: "127.0.0.1"})
	router := gin.New()

	// Setup routes
	server.setupRoutes(router)

	// Get the registered routes from Gin's route tree
	routes := router.Routes()

	// Expected routes
	expectedRoutes := map[string]string{
		"GET /":             "hello endpoint",
		"GET /good-evening": "evening endpoint",
	}

	registeredRoutes := make(map[string]bool)
	for _, route := range routes {
		key := route.Method + " " + route.Path
		registeredRoutes[key] = true
	}

	for expectedRoute, description := range expectedRoutes {
		t.Run(description, func(t *testing.T) {
			if !registeredRoutes[expectedRoute] {
				t.Errorf("Route %s not registered", expectedRoute)
			}
		})
	}

	// The greeting surface is exactly two routes; NoRoute handles the rest
	if len(routes) != len(expectedRoutes) {
		t.Errorf("Expected %d routes, got %d", len(expectedRoutes), len(routes))
	}
}

// TestRouterDispatch tests status codes and bodies through the full router,
// including the dispatch corners where gin would normally redirect
func TestRouterDispatch(t *testing.T) {
	gin.SetMode(gin.TestMode)

	server := NewServer(&Config{BindAddr: "127.0.0.1"})
	router := server.buildRouter()

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantBody   string
	}{
		{"root greeting", "GET", "/", 200, "Hello World!"},
		{"evening greeting", "GET", "/good-evening", 200, "Good evening"},
		{"unknown path", "GET", "/missing", 404, "Not Found"},
		{"trailing slash is not redirected", "GET", "/good-evening/", 404, "Not Found"},
		{"wrong method", "POST", "/", 404, "Not Found"},
		{"query string does not affect matching", "GET", "/?name=x", 200, "Hello World!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, w.Code)
			}

			if w.Body.String() != tt.wantBody {
				t.Errorf("Body = %q, want %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}
