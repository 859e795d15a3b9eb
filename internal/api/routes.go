package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/solstice-dev/greet/internal/greeting"
)

// Configures all greeting routes
//
// Routes come from the shared greeting table, so the primary and fallback
// stacks register exactly the same paths with exactly the same responses.
func (s *Server) setupRoutes(router *gin.Engine) {
	for _, route := range greeting.Routes() {
		route := route
		router.Handle(route.Method, route.Path, func(c *gin.Context) {
			c.String(route.Status, route.Body)
		})
	}

	// Everything else is a plain text 404
	router.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, greeting.NotFoundBody)
	})
}
