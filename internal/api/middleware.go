package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staylodge/staylodge-backend/internal/auth"
	"github.com/staylodge/staylodge-backend/internal/user"
)

// RequireTenant ensures the authenticated user has the tenant role.
// It MUST be used after auth.AuthRequired middleware.
func RequireTenant(userService user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.GetUserID(c)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		// The token carries the role; fall back to the database when an old
		// token predates the claim.
		role := auth.GetUserRole(c)
		if role == "" {
			u, err := userService.GetByID(c.Request.Context(), userID)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
				return
			}
			role = u.Role
		}

		if role != user.RoleTenant {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: tenant access required"})
			return
		}

		c.Next()
	}
}
