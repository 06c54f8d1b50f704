package middleware

import (
	"net/http"
	"strings"

	"dealroom/services/access"

	"github.com/gin-gonic/gin"
)

// Gate enforces the client route table on an API route. clientPattern is
// the route-table pattern the API endpoint backs (e.g. "/deal/:id/book");
// the ":id" segment is filled from the request's deal-ID parameter before
// the gate runs. Denials carry the same redirect, reason, and from fields
// the client banner consumes; the server answers 403 because it cannot
// drive the client router itself.
func Gate(clientPattern string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)

		path := clientPattern
		if dealID := c.Param("id"); dealID != "" {
			path = strings.Replace(clientPattern, ":id", dealID, 1)
		}

		decision := access.Authorize(user, path)
		if decision.Allow {
			c.Next()
			return
		}

		status := http.StatusForbidden
		if decision.Redirect == access.PathLogin {
			status = http.StatusUnauthorized
		}
		c.AbortWithStatusJSON(status, gin.H{
			"error":    "access denied",
			"redirect": decision.Redirect,
			"reason":   decision.Reason,
			"from":     decision.From,
		})
	}
}
