package middleware

import (
	"fmt"
	"math"

	"github.com/labstack/echo/v4"

	"fleamarket/internal/infrastructure/ratelimit"
	"fleamarket/pkg/errors"
	"fleamarket/pkg/logger"
	"fleamarket/pkg/response"
)

// RateLimitAction limits an endpoint per client IP under the given action's bucket.
func RateLimitAction(limiter *ratelimit.RateLimiter, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			allowed, wait := limiter.Allow(ip, action)
			if !allowed {
				retryAfter := int(math.Ceil(wait.Seconds()))
				logger.Warn("RATE LIMIT: %s blocked for %s (retry in %ds)", ip, action, retryAfter)
				c.Response().Header().Set("Retry-After", fmt.Sprint(retryAfter))
				return response.Error(c, errors.TooManyRequests("Rate limit exceeded. Please wait before trying again"))
			}

			return next(c)
		}
	}
}
