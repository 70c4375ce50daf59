package middleware

import (
	"errors"
	"log"

	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// StatusFor maps a service error class onto an HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrBadRequest), errors.Is(err, services.ErrConflict):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// RespondError writes err as a JSON error body. Only messages of
// classified service errors reach the client.
func RespondError(c *fiber.Ctx, err error) error {
	status := StatusFor(err)

	message := "Unexpected error, check server logs"
	var svcErr *services.Error
	if errors.As(err, &svcErr) && status != fiber.StatusInternalServerError {
		message = svcErr.Message
	} else if !errors.Is(err, services.ErrInternal) {
		log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}

	return c.Status(status).JSON(fiber.Map{
		"statusCode": status,
		"message":    message,
		"error":      utils.StatusMessage(status),
	})
}
