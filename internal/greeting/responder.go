// Package greeting defines the responses the greet service serves, as one
// shared table consumed by both serving stacks.
//
// The service's entire wire surface is two fixed GET routes plus a uniform
// 404 for everything else. Both the framework-based stack and the bare
// net/http fallback build their handlers from Routes() and the NotFound
// constants below, so a client cannot tell the two apart: same statuses,
// same bodies, same content type. Keeping the table here, rather than
// duplicating route lists per stack, is what makes that guarantee
// structural.
//
// Handlers are stateless: every response depends only on the request's
// method and path, never on prior requests.
package greeting

import "net/http"

// ContentType is the content type for every response, matched or not.
const ContentType = "text/plain; charset=utf-8"

// NotFoundBody is the body served for any method+path outside the table.
const NotFoundBody = "Not Found"

// Route maps a method and path to a fixed response.
type Route struct {
	Method string // HTTP method, exact match
	Path   string // URL path, exact match (no trailing-slash tolerance)
	Status int    // Response status code
	Body   string // Literal response body
}

// Routes returns the complete route table. The slice is freshly allocated on
// each call so callers can iterate without sharing state.
func Routes() []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/", Status: http.StatusOK, Body: "Hello World!"},
		{Method: http.MethodGet, Path: "/good-evening", Status: http.StatusOK, Body: "Good evening"},
	}
}

// Match returns the route for the given method and path, or false when the
// request falls outside the table and must be answered with NotFoundBody.
func Match(method, path string) (Route, bool) {
	for _, r := range Routes() {
		if r.Method == method && r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}
