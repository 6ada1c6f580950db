package middleware

import (
	"net/http"

	"github.com/amlakhub/amlak-api/internal/models"
	"github.com/gin-gonic/gin"
)

// Access-restricted message shown to the client, in the site's language.
const msgAccessRestricted = "دسترسی شما محدود شده است"

// RequireRoles allows the request through only when the verified role is in
// the route's allow-list. The check is a plain membership test: superadmin is
// rejected like anyone else unless explicitly listed. Must run after
// RequireAuth.
func RequireRoles(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get(CtxUserRole)
		role, ok := v.(models.Role)

		if !exists || !ok || !roleAllowed(role, allowed) {
			c.JSON(http.StatusForbidden, gin.H{
				"message": msgAccessRestricted,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func roleAllowed(role models.Role, allowed []models.Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}

	return false
}
