package controllers

import (
	"github.com/cardealer/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// parseID parses the id path parameter.
func parseID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errInvalidUUID
	}

	return id, nil
}

// userID returns the ID of the authenticated user. The authentication
// middleware guarantees it is set on all protected routes.
func userID(c *gin.Context) uuid.UUID {
	return c.MustGet(httputil.ContextUserID).(uuid.UUID)
}
