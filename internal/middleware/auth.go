package middleware

import (
	"net/http"

	"github.com/amlakhub/amlak-api/internal/ratelimit"
	"github.com/amlakhub/amlak-api/internal/service"
	"github.com/gin-gonic/gin"
)

// Invalid-token message shown to the client, in the site's language.
const msgInvalidToken = "توکن نامعتبر"

// Gin context keys populated by RequireAuth.
const (
	CtxClaims   = "claims"
	CtxUserID   = "user_id"
	CtxUserRole = "user_role"
)

// RequireAuth validates the bearer token and exposes the verified claims to
// downstream handlers. Unlike the limiter's identity resolution this check is
// authoritative: signature and expiry must both pass.
//
// The response does not distinguish a missing token from a bad signature or
// an expired one.
func RequireAuth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := ratelimit.BearerToken(c.Request)
		if raw == "" {
			unauthorized(c)
			return
		}

		claims, err := authService.ValidateToken(raw)
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(CtxClaims, claims)
		c.Set(CtxUserID, claims.ID)
		c.Set(CtxUserRole, claims.Role)

		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"message": msgInvalidToken,
	})
	c.Abort()
}
