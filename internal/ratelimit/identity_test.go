package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	return token
}

func TestResolveIdentity_ValidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/listings", nil)
	req.Header.Set("token", signedToken(t, jwt.MapClaims{
		"id":  "u123",
		"exp": time.Now().Add(time.Hour).Unix(),
	}))

	key, class := ResolveIdentity(req)
	if key != "user_u123" {
		t.Fatalf("expected user_u123, got %q", key)
	}
	if class != ClassAuthenticated {
		t.Fatalf("expected authenticated class, got %v", class)
	}
}

func TestResolveIdentity_BearerHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/listings", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, jwt.MapClaims{"id": "u9"}))

	key, class := ResolveIdentity(req)
	if key != "user_u9" || class != ClassAuthenticated {
		t.Fatalf("expected user_u9/authenticated, got %q/%v", key, class)
	}
}

func TestResolveIdentity_ExpiredTokenDowngradesToAnonymous(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/listings", nil)
	req.Header.Set("token", signedToken(t, jwt.MapClaims{
		"id":  "u123",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}))
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	req.Header.Set("User-Agent", "curl/8.0")

	key, class := ResolveIdentity(req)
	if class != ClassAnonymous {
		t.Fatalf("expected anonymous class for expired token, got %v", class)
	}
	if key != "anon_203.0.113.9_curl/8.0" {
		t.Fatalf("unexpected key %q", key)
	}
}

func TestResolveIdentity_MalformedTokenNeverFails(t *testing.T) {
	for _, tok := range []string{"garbage", "a.b", "a.b.c.d", "..."} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("token", tok)

		key, class := ResolveIdentity(req)
		if class != ClassAnonymous {
			t.Fatalf("token %q: expected anonymous, got %v", tok, class)
		}
		if !strings.HasPrefix(key, "anon_") {
			t.Fatalf("token %q: expected anon key, got %q", tok, key)
		}
	}
}

func TestResolveIdentity_TokenWithoutSubject(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("token", signedToken(t, jwt.MapClaims{"name": "nobody"}))

	_, class := ResolveIdentity(req)
	if class != ClassAnonymous {
		t.Fatalf("expected anonymous for token without id, got %v", class)
	}
}

func TestResolveIdentity_FingerprintHeaderPreference(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.1")
	req.Header.Set("X-Real-Ip", "203.0.113.2")
	req.Header.Set("User-Agent", "ua")

	key, _ := ResolveIdentity(req)
	if key != "anon_198.51.100.1_ua" {
		t.Fatalf("expected x-forwarded-for preferred, got %q", key)
	}

	req.Header.Del("X-Forwarded-For")
	key, _ = ResolveIdentity(req)
	if key != "anon_203.0.113.2_ua" {
		t.Fatalf("expected x-real-ip fallback, got %q", key)
	}

	req.Header.Del("X-Real-Ip")
	key, _ = ResolveIdentity(req)
	if key != "anon_unknown_ua" {
		t.Fatalf("expected unknown fallback, got %q", key)
	}
}

func TestResolveIdentity_UserAgentTruncated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "1.1.1.1")
	req.Header.Set("User-Agent", strings.Repeat("x", 200))

	key, _ := ResolveIdentity(req)
	want := "anon_1.1.1.1_" + strings.Repeat("x", maxFingerprintUA)
	if key != want {
		t.Fatalf("expected truncated user agent, got %q", key)
	}
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := BearerToken(req); got != "" {
		t.Fatalf("expected empty token, got %q", got)
	}

	req.Header.Set("Authorization", "Basic abc")
	if got := BearerToken(req); got != "" {
		t.Fatalf("expected empty token for non-bearer auth, got %q", got)
	}

	req.Header.Set("Authorization", "Bearer abc.def.ghi")
	if got := BearerToken(req); got != "abc.def.ghi" {
		t.Fatalf("expected bearer token, got %q", got)
	}

	// The token header wins over Authorization
	req.Header.Set("token", "raw.token.value")
	if got := BearerToken(req); got != "raw.token.value" {
		t.Fatalf("expected token header preferred, got %q", got)
	}
}
