package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/toppers-edu/admin-console-api/internal/middleware"
	"github.com/toppers-edu/admin-console-api/internal/models"
)

// claimsFromContext extracts JWT claims stored by the auth middleware.
func claimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}
