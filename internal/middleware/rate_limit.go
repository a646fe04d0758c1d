package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/centralcontact/forms-api/internal/api/dto"
	"github.com/centralcontact/forms-api/internal/config"
	"github.com/centralcontact/forms-api/pkg/logger"
)

type RateLimitMiddleware struct {
	redis  *redis.Client
	config *config.Config
	logger *logger.Logger
}

func NewRateLimitMiddleware(redis *redis.Client, config *config.Config, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redis:  redis,
		config: config,
		logger: logger,
	}
}

// SubmitRateLimit implements per-website rate limiting on the public
// submission endpoint, keyed by the website UUID path parameter.
func (m *RateLimitMiddleware) SubmitRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		websiteUUID := c.Param("uuid")
		if websiteUUID == "" {
			c.Next()
			return
		}

		limit := m.getWebsiteRateLimit(websiteUUID)

		key := fmt.Sprintf("rate_limit:website:%s", websiteUUID)

		// Check current request count
		current, err := m.redis.Get(c.Request.Context(), key).Int()
		if err != nil && err != redis.Nil {
			m.logger.Error("Redis error in rate limiting", err)
			// Allow request to continue on Redis error (fail open)
			c.Next()
			return
		}

		if current >= limit {
			c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Minute).Unix(), 10))

			c.JSON(http.StatusTooManyRequests, dto.Error{Message: "Rate limit exceeded"})
			c.Abort()
			return
		}

		// Increment counter
		pipe := m.redis.Pipeline()
		pipe.Incr(c.Request.Context(), key)
		pipe.Expire(c.Request.Context(), key, time.Minute)
		_, err = pipe.Exec(c.Request.Context())

		if err != nil {
			m.logger.Error("Redis pipeline error in rate limiting", err)
		}

		// Add rate limit headers
		remaining := limit - (current + 1)
		if remaining < 0 {
			remaining = 0
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Minute).Unix(), 10))

		c.Next()
	}
}

// GlobalRateLimit implements global rate limiting based on IP
func (m *RateLimitMiddleware) GlobalRateLimit(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		key := fmt.Sprintf("rate_limit:global:%s", clientIP)

		// Check current request count
		current, err := m.redis.Get(c.Request.Context(), key).Int()
		if err != nil && err != redis.Nil {
			m.logger.Error("Redis error in global rate limiting", err)
			c.Next()
			return
		}

		if current >= limit {
			c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Minute).Unix(), 10))

			c.JSON(http.StatusTooManyRequests, dto.Error{Message: "Global rate limit exceeded"})
			c.Abort()
			return
		}

		// Increment counter
		pipe := m.redis.Pipeline()
		pipe.Incr(c.Request.Context(), key)
		pipe.Expire(c.Request.Context(), key, time.Minute)
		_, err = pipe.Exec(c.Request.Context())

		if err != nil {
			m.logger.Error("Redis pipeline error in global rate limiting", err)
		}

		// Add rate limit headers
		remaining := limit - (current + 1)
		if remaining < 0 {
			remaining = 0
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Minute).Unix(), 10))

		c.Next()
	}
}

// getWebsiteRateLimit retrieves the submission rate limit for a website.
// TODO: allow per-website overrides stored on the websites table
func (m *RateLimitMiddleware) getWebsiteRateLimit(websiteUUID string) int {
	if m.config.DefaultRateLimit > 0 {
		return m.config.DefaultRateLimit
	}
	return 1000
}
