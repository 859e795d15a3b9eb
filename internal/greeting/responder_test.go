package greeting

import (
	"net/http"
	"testing"
)

// TestRoutes validates the published route table
func TestRoutes(t *testing.T) {
	routes := Routes()

	if len(routes) != 2 {
		t.Fatalf("Routes() returned %d routes, want 2", len(routes))
	}

	expected := map[string]Route{
		"/":             {Method: http.MethodGet, Path: "/", Status: http.StatusOK, Body: "Hello World!"},
		"/good-evening": {Method: http.MethodGet, Path: "/good-evening", Status: http.StatusOK, Body: "Good evening"},
	}

	for _, r := range routes {
		want, ok := expected[r.Path]
		if !ok {
			t.Errorf("unexpected route %q in table", r.Path)
			continue
		}
		if r != want {
			t.Errorf("route %q = %+v, want %+v", r.Path, r, want)
		}
	}
}

// TestMatch validates method+path resolution against the table
func TestMatch(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		wantFound bool
		wantBody  string
	}{
		{
			name:      "root route",
			method:    http.MethodGet,
			path:      "/",
			wantFound: true,
			wantBody:  "Hello World!",
		},
		{
			name:      "good evening route",
			method:    http.MethodGet,
			path:      "/good-evening",
			wantFound: true,
			wantBody:  "Good evening",
		},
		{
			name:      "unknown path",
			method:    http.MethodGet,
			path:      "/good-morning",
			wantFound: false,
		},
		{
			name:      "wrong method on known path",
			method:    http.MethodPost,
			path:      "/",
			wantFound: false,
		},
		{
			name:      "trailing slash is a different path",
			method:    http.MethodGet,
			path:      "/good-evening/",
			wantFound: false,
		},
		{
			name:      "HEAD is not GET",
			method:    http.MethodHead,
			path:      "/",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route, found := Match(tt.method, tt.path)

			if found != tt.wantFound {
				t.Fatalf("Match(%s, %s) found = %v, want %v", tt.method, tt.path, found, tt.wantFound)
			}

			if found && route.Body != tt.wantBody {
				t.Errorf("Match(%s, %s) body = %q, want %q", tt.method, tt.path, route.Body, tt.wantBody)
			}
		})
	}
}

// TestNotFoundContract validates the uniform miss response
func TestNotFoundContract(t *testing.T) {
	if NotFoundBody != "Not Found" {
		t.Errorf("NotFoundBody = %q, want %q", NotFoundBody, "Not Found")
	}

	if ContentType != "text/plain; charset=utf-8" {
		t.Errorf("ContentType = %q, want plain text utf-8", ContentType)
	}
}
