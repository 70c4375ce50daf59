package middleware

import (
	"log"
	"strings"

	"catalog/internal/models"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

const userKey = "user"

// AuthRequired is a Fiber middleware to check for a valid JWT token. The
// authenticated user is stored in the request locals.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"statusCode": fiber.StatusUnauthorized,
				"message":    "Authorization header is required",
				"error":      "Unauthorized",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"statusCode": fiber.StatusUnauthorized,
				"message":    "Authorization header format must be 'Bearer <token>'",
				"error":      "Unauthorized",
			})
		}

		user, err := authService.Authenticate(c.UserContext(), parts[1])
		if err != nil {
			log.Printf("JWT authentication failed: %v", err)
			return RespondError(c, err)
		}

		c.Locals(userKey, user)
		return c.Next()
	}
}

// RoleRequired admits the user stored by AuthRequired when it holds one of
// roles. It must be mounted after AuthRequired.
func RoleRequired(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := services.Authorize(CurrentUser(c), roles...); err != nil {
			return RespondError(c, err)
		}
		return c.Next()
	}
}

// Auth chains AuthRequired and RoleRequired.
func Auth(authService *services.AuthService, roles ...models.Role) []fiber.Handler {
	return []fiber.Handler{AuthRequired(authService), RoleRequired(roles...)}
}

// CurrentUser returns the user stored by AuthRequired, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userKey).(*models.User)
	return user
}
