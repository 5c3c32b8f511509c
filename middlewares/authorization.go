package middlewares

import (
	"net/http"

	"github.com/NemesisID/PreviewOnly-Dash/services"
	"github.com/NemesisID/PreviewOnly-Dash/utils"

	"github.com/gin-gonic/gin"
)

// RequirePermission must run after AuthMiddleware, which puts the role on the context.
func RequirePermission(authz *services.AuthorizationService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := utils.CurrentRole(c)
		if role == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "not authenticated"})
			c.Abort()
			return
		}

		ok, err := authz.Can(role, resource, action)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "permission check failed"})
			c.Abort()
			return
		}
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
			c.Abort()
			return
		}

		c.Next()
	}
}
