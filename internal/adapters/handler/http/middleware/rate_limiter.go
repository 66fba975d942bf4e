package middleware

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type RateLimit struct {
	Limit  int
	Window time.Duration
	// Prefix namespaces the counters, so several deployments can share redis.
	Prefix string
}

// RateLimiterMiddleware is a fixed-window counter per client IP. Redis
// failures let the request through.
func RateLimiterMiddleware(rdb *redis.Client, rl RateLimit) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("%srate_limit:%s", rl.Prefix, c.ClientIP())

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Printf("[CACHE] Redis error (rate limiter skipped): %v", err)
			c.Next()
			return
		}

		if count == 1 {
			if err := rdb.Expire(ctx, key, rl.Window).Err(); err != nil {
				log.Printf("[CACHE] Redis expire error: %v. Deleting key to avoid zombie.", err)
				rdb.Del(ctx, key)
				c.Next()
				return
			}
		}

		ttl, err := rdb.TTL(ctx, key).Result()
		if err != nil || ttl < 0 {
			ttl = rl.Window
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.Limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(max(0, int64(rl.Limit)-count), 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))

		if count > int64(rl.Limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":      "too many requests, slow down",
				"retry_in_s": int(ttl.Seconds()),
			})
			return
		}

		c.Next()
	}
}
