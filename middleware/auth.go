package middleware

import (
	"net/http"
	"strings"

	"hotel-reservation-backend/config"
	"hotel-reservation-backend/models"
	"hotel-reservation-backend/utils"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// Auth validates the bearer token and stores the session claims in the
// request context. No global auth state: handlers read the session from the
// context they were called with.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := header
		if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenString = parts[1]
		}

		claims, err := utils.ParseToken(strings.TrimSpace(tokenString))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(sessionKey, claims)
		c.Next()
	}
}

// Session returns the claims stored by Auth.
func Session(c *gin.Context) (utils.SessionClaims, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return utils.SessionClaims{}, false
	}
	claims, ok := v.(utils.SessionClaims)
	return claims, ok
}

// RequirePermission gates a route on the session role holding the given
// capability.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := Session(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no session"})
			return
		}

		var count int64
		err := config.DB.Model(&models.RolePermission{}).
			Joins("JOIN roles ON roles.id = role_permissions.role_id").
			Where("LOWER(roles.name) = ? AND role_permissions.permission = ?",
				strings.ToLower(claims.Role), permission).
			Count(&count).Error
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "permission check failed"})
			return
		}
		if count == 0 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}

		c.Next()
	}
}

// SweepAuth guards the internal sweep endpoint with a shared secret so the
// external cron can call it independently of staff sessions.
func SweepAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" || c.GetHeader("X-Sweep-Secret") != secret {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid sweep secret"})
			return
		}
		c.Next()
	}
}
