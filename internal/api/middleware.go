package api

import (
	"github.com/gin-gonic/gin"
	"github.com/solstice-dev/greet/internal/logging"
)

// loggingMiddleware provides request logging
//
// Each request is logged exactly once, before the handler runs, so the
// method and URL are on record even if handling stalls or panics. The
// fallback stack emits the identical line from its handler.
func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logging.Info("%s %s", c.Request.Method, c.Request.URL.RequestURI())
		c.Next()
	}
}
