package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// actorID returns the authenticated caller's ID set by the auth middleware.
func actorID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("userID")
	if !exists {
		return uuid.Nil, false
	}

	id, ok := value.(uuid.UUID)
	return id, ok
}
