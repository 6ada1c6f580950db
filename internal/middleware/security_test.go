package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newSecuredRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SecurityHeaders())
	router.GET("/api/listings", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router
}

func TestSecurityHeaders_SetOnEveryResponse(t *testing.T) {
	router := newSecuredRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/listings", nil))

	want := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"X-XSS-Protection":       "1; mode=block",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}

	for header, value := range want {
		if got := w.Header().Get(header); got != value {
			t.Fatalf("header %s: expected %q, got %q", header, value, got)
		}
	}
}

func TestSecurityHeaders_BlocksProbedPaths(t *testing.T) {
	router := newSecuredRouter()

	paths := []string{
		"/.env",
		"/api/../.env",
		"/config/database.yml",
		"/.git/HEAD",
		"/some/dir/.env",
	}

	for _, path := range paths {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		if w.Code != http.StatusForbidden {
			t.Fatalf("path %s: expected 403, got %d", path, w.Code)
		}

		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("path %s: failed to parse body: %v", path, err)
		}
		if body["error"] != "Access denied" {
			t.Fatalf("path %s: expected Access denied, got %q", path, body["error"])
		}
	}
}

func TestSecurityHeaders_NormalPathsPass(t *testing.T) {
	router := newSecuredRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/listings", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for ordinary path, got %d", w.Code)
	}
}
