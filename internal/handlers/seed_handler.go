package handlers

import (
	"log"

	"catalog/internal/middleware"
	"catalog/internal/models"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SeedHandler exposes the fixture reload.
type SeedHandler struct {
	seedService *services.SeedService
	authService *services.AuthService
}

// NewSeedHandler creates a new SeedHandler.
func NewSeedHandler(seedService *services.SeedService, authService *services.AuthService) *SeedHandler {
	return &SeedHandler{
		seedService: seedService,
		authService: authService,
	}
}

// RegisterRoutes registers the admin-only seed route.
func (h *SeedHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/seed", append(middleware.Auth(h.authService, models.RoleAdmin), h.HandleRunSeed)...)
}

// HandleRunSeed reloads the fixture catalog.
func (h *SeedHandler) HandleRunSeed(c *fiber.Ctx) error {
	if err := h.seedService.RunSeed(c.UserContext()); err != nil {
		log.Printf("Seed failed: %v", err)
		return middleware.RespondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Seed executed",
	})
}
