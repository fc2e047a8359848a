package middleware

import (
	"github.com/dkuznetsova/staff-accounts-api/internal/constants"
	apierrors "github.com/dkuznetsova/staff-accounts-api/internal/errors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RequireAuth checks if an administrator is authenticated via session
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		accountID := session.Get(constants.ContextKeyUserID)

		if accountID == nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		// Store account ID in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, accountID)
		c.Next()
	}
}

// GetAccountID retrieves the authenticated account ID from context
func GetAccountID(c *gin.Context) (string, bool) {
	accountID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return "", false
	}

	id, ok := accountID.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
