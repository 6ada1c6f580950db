package ratelimit

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Class separates signed-in traffic from anonymous traffic; the two get
// different quotas and independent buckets.
type Class int

const (
	ClassAnonymous Class = iota
	ClassAuthenticated
)

func (c Class) String() string {
	if c == ClassAuthenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Anonymous fingerprints keep at most this many user-agent characters.
const maxFingerprintUA = 50

// ResolveIdentity derives the bucket key and class for a request.
//
// The token is decoded without signature verification: the limiter only needs
// a stable bucket key, and the auth middleware remains the authority on who
// the caller actually is. A token that fails to decode, carries no id, or has
// already expired downgrades the caller to anonymous; this path never fails
// the request.
func ResolveIdentity(r *http.Request) (string, Class) {
	if raw := BearerToken(r); raw != "" {
		if id, ok := decodeSubject(raw); ok {
			return "user_" + id, ClassAuthenticated
		}
	}

	return "anon_" + fingerprint(r), ClassAnonymous
}

// BearerToken pulls the raw token from the "token" header, falling back to
// "Authorization: Bearer <token>".
func BearerToken(r *http.Request) string {
	if tok := r.Header.Get("token"); tok != "" {
		return strings.TrimSpace(tok)
	}

	auth := r.Header.Get("Authorization")
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return strings.TrimSpace(parts[1])
	}

	return ""
}

func decodeSubject(raw string) (string, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return "", false
	}

	id, _ := claims["id"].(string)
	if id == "" {
		return "", false
	}

	if exp, ok := claims["exp"].(float64); ok && time.Now().Unix() > int64(exp) {
		return "", false
	}

	return id, true
}

func fingerprint(r *http.Request) string {
	ip := r.Header.Get("X-Forwarded-For")
	if ip == "" {
		ip = r.Header.Get("X-Real-Ip")
	}
	if ip == "" {
		ip = "unknown"
	}

	ua := r.Header.Get("User-Agent")
	if len(ua) > maxFingerprintUA {
		ua = ua[:maxFingerprintUA]
	}

	return ip + "_" + ua
}
