package handlers

import (
	"log"

	"catalog/internal/middleware"
	"catalog/internal/models"
	"catalog/internal/ratelimit"
	"catalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService  *services.AuthService
	loginLimiter ratelimit.Limiter
	validate     *validator.Validate
}

// NewAuthHandler creates a new AuthHandler. loginLimiter may be nil.
func NewAuthHandler(authService *services.AuthService, loginLimiter ratelimit.Limiter) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		loginLimiter: loginLimiter,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)

	login := []fiber.Handler{h.HandleLogin}
	if h.loginLimiter != nil {
		login = append([]fiber.Handler{middleware.RateLimit(h.loginLimiter)}, login...)
	}
	authRoutes.Post("/login", login...)

	authRoutes.Get("/check-status", append(middleware.Auth(h.authService), h.HandleCheckStatus)...)
	authRoutes.Get("/private", middleware.AuthRequired(h.authService), h.HandlePrivate)
	authRoutes.Get("/private2", append(middleware.Auth(h.authService, models.RoleAdmin, models.RoleSuperUser), h.HandlePrivate)...)
	authRoutes.Get("/private3", append(middleware.Auth(h.authService, models.RoleAdmin, models.RoleSuperUser, models.RoleUser), h.HandlePrivate)...)
}

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=50"`
	FullName string `json:"fullName" validate:"required,min=1"`
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	result, err := h.authService.Register(c.UserContext(), services.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		log.Printf("Error registering user: %v", err)
		return middleware.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles user login and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	result, err := h.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		log.Printf("Error during login for %s: %v", req.Email, err)
		return middleware.RespondError(c, err)
	}

	return c.JSON(result)
}

// HandleCheckStatus returns the current user with a renewed token.
func (h *AuthHandler) HandleCheckStatus(c *fiber.Ctx) error {
	result, err := h.authService.CheckStatus(c.UserContext(), middleware.CurrentUser(c))
	if err != nil {
		return middleware.RespondError(c, err)
	}
	return c.JSON(result)
}

// HandlePrivate answers the role-gated private routes.
func (h *AuthHandler) HandlePrivate(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	return c.JSON(fiber.Map{
		"ok":        true,
		"message":   "Access granted",
		"user":      user,
		"userEmail": user.Email,
	})
}
