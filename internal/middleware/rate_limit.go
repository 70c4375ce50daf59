package middleware

import (
	"log"

	"catalog/internal/ratelimit"

	"github.com/gofiber/fiber/v2"
)

// RateLimit rejects requests from a client IP once limiter denies it. If the
// limiter itself fails the request is let through.
func RateLimit(limiter ratelimit.Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		allowed, err := limiter.Allow(c.UserContext(), c.IP())
		if err != nil {
			log.Printf("Rate limiter unavailable: %v", err)
			return c.Next()
		}
		if !allowed {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"statusCode": fiber.StatusTooManyRequests,
				"message":    "Too many attempts, try again later",
				"error":      "Too Many Requests",
			})
		}
		return c.Next()
	}
}
