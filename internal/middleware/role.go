package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PratikPaudel/nwcs-inventory/pkg/utils"
)

// AdminOnly rejects callers whose token does not carry the admin flag.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get("isAdmin")
		if !exists {
			utils.ErrorResponse(c, http.StatusForbidden, "Role not found in context")
			c.Abort()
			return
		}

		if admin, ok := isAdmin.(bool); !ok || !admin {
			utils.ErrorResponse(c, http.StatusForbidden, "Insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
