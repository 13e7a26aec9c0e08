package security

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/redis/go-redis/v9"
)

// RateLimiter applies a fixed-window per-IP limit backed by Redis. It fails
// open: without Redis (or on a Redis error) requests pass through.
type RateLimiter struct {
	redis  *redis.Client
	limit  int64
	window time.Duration
}

func NewRateLimiter(redisClient *redis.Client, limit int64, window time.Duration) *RateLimiter {
	return &RateLimiter{redis: redisClient, limit: limit, window: window}
}

// Limit is applied to write endpoints to blunt repeated submissions.
func (r *RateLimiter) Limit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if r.redis == nil {
				return next(c)
			}

			ctx := c.Request().Context()
			key := fmt.Sprintf("ratelimit:%s:%s", c.Request().URL.Path, c.RealIP())

			count, err := r.redis.Incr(ctx, key).Result()
			if err != nil {
				slog.Warn("rate limiter unavailable", "key", key, "error", err)
				return next(c)
			}
			if count == 1 {
				r.redis.Expire(ctx, key, r.window)
			}
			if count > r.limit {
				return c.JSON(429, map[string]string{
					"message": "Too many requests. Please try again later.",
				})
			}

			return next(c)
		}
	}
}
