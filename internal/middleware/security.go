package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Paths that scanners probe for; blocked outright before any other check.
var blockedPathFragments = []string{"/.env", "/config/", "/.git/"}

// SecurityHeaders hardens every response and hard-blocks requests probing
// for dotfiles and config paths.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")

		path := c.Request.URL.Path
		for _, fragment := range blockedPathFragments {
			if strings.Contains(path, fragment) {
				c.JSON(http.StatusForbidden, gin.H{
					"error": "Access denied",
				})
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
