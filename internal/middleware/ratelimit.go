package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/amlakhub/amlak-api/internal/ratelimit"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Quotas are fixed: signed-in callers get the larger bucket. A counter can
// overshoot to roughly twice the quota across a window boundary; that is the
// usual fixed-window artifact and is accepted here.
const (
	authenticatedQuota = 700
	anonymousQuota     = 300
	quotaWindow        = 15 * time.Minute
)

// RateLimit buckets every request by resolved identity and rejects the ones
// that exceed the class quota for the current window.
//
// Any store failure admits the request: the limiter is abuse mitigation, and
// blocking legitimate traffic on an internal fault would be worse than
// missing a count.
func RateLimit(store ratelimit.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, class := ratelimit.ResolveIdentity(c.Request)

		quota := int64(anonymousQuota)
		if class == ratelimit.ClassAuthenticated {
			quota = authenticatedQuota
		}

		entry, err := store.IncrementOrReset(c.Request.Context(), key, quotaWindow, time.Now())
		if err != nil {
			log.Warn().Err(err).Str("identity", key).Msg("rate limit check failed, admitting request")
			c.Next()
			return
		}

		remaining := quota - entry.Count
		if remaining < 0 {
			remaining = 0
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(quota, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(entry.ResetAt.Unix(), 10))

		if entry.Count > quota {
			retryAfter := int(time.Until(entry.ResetAt).Seconds())
			if retryAfter < 0 {
				retryAfter = 0
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			msg := fmt.Sprintf("Rate limit of %d requests per 15 minutes exceeded", quota)
			if class == ratelimit.ClassAnonymous {
				msg += ". Sign in to get a higher limit"
			}

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":   "Too many requests",
				"message": msg,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
