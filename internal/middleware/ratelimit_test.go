package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amlakhub/amlak-api/internal/ratelimit"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func newLimitedRouter(store ratelimit.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimit(store))
	router.GET("/api/listings", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router
}

func anonRequest() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/listings", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	req.Header.Set("User-Agent", "test-agent")

	return req
}

func authedRequest(t *testing.T, subject string) *http.Request {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  subject,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("whatever"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	req := anonRequest()
	req.Header.Set("token", token)

	return req
}

func TestRateLimit_AnonymousQuota(t *testing.T) {
	router := newLimitedRouter(ratelimit.NewMemoryStore())

	for i := 1; i <= anonymousQuota; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, anonRequest())
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, anonRequest())
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("request %d: expected 429, got %d", anonymousQuota+1, w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse body: %v", err)
	}
	if body["error"] != "Too many requests" {
		t.Fatalf("unexpected error field %q", body["error"])
	}
	if !strings.Contains(body["message"], "300") || !strings.Contains(body["message"], "Sign in") {
		t.Fatalf("expected quota and sign-in hint in message, got %q", body["message"])
	}
}

func TestRateLimit_AuthenticatedQuotaIndependentOfAnonymous(t *testing.T) {
	router := newLimitedRouter(ratelimit.NewMemoryStore())

	// Exhaust the anonymous bucket for this IP
	for i := 0; i <= anonymousQuota; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, anonRequest())
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, anonRequest())
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected anonymous bucket exhausted, got %d", w.Code)
	}

	// Signed-in traffic from the same address uses its own bucket
	for i := 1; i <= authenticatedQuota; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(t, "u123"))
		if w.Code != http.StatusOK {
			t.Fatalf("authenticated request %d: expected 200, got %d", i, w.Code)
		}
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, "u123"))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("authenticated request %d: expected 429, got %d", authenticatedQuota+1, w.Code)
	}

	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if !strings.Contains(body["message"], "700") {
		t.Fatalf("expected authenticated quota in message, got %q", body["message"])
	}
	if strings.Contains(body["message"], "Sign in") {
		t.Fatalf("sign-in hint should not be shown to authenticated callers: %q", body["message"])
	}
}

func TestRateLimit_ResponseHeaders(t *testing.T) {
	router := newLimitedRouter(ratelimit.NewMemoryStore())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, anonRequest())

	if got := w.Header().Get("X-RateLimit-Limit"); got != "300" {
		t.Fatalf("expected limit header 300, got %q", got)
	}
	if got := w.Header().Get("X-RateLimit-Remaining"); got != "299" {
		t.Fatalf("expected remaining header 299, got %q", got)
	}
	if w.Header().Get("X-RateLimit-Reset") == "" {
		t.Fatal("expected reset header to be set")
	}
}

// failingStore simulates a broken quota backend.
type failingStore struct{}

func (failingStore) Get(context.Context, string) (ratelimit.Entry, bool, error) {
	return ratelimit.Entry{}, false, errors.New("backend down")
}

func (failingStore) IncrementOrReset(context.Context, string, time.Duration, time.Time) (ratelimit.Entry, error) {
	return ratelimit.Entry{}, errors.New("backend down")
}

func TestRateLimit_FailsOpenOnStoreError(t *testing.T) {
	router := newLimitedRouter(failingStore{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, anonRequest())
	if w.Code != http.StatusOK {
		t.Fatalf("expected request admitted when the store fails, got %d", w.Code)
	}
}
