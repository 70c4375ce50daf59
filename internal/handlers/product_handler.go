package handlers

import (
	"log"

	"catalog/internal/middleware"
	"catalog/internal/models"
	"catalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	productService *services.ProductService
	authService    *services.AuthService
	validate       *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService *services.ProductService, authService *services.AuthService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		authService:    authService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the product routes. Reads are public; writes
// need the admin role.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleList)
	productRoutes.Get("/:term", h.HandleFindOne)

	adminOnly := middleware.Auth(h.authService, models.RoleAdmin)
	productRoutes.Post("/", append(adminOnly, h.HandleCreate)...)
	productRoutes.Patch("/:id", append(adminOnly, h.HandleUpdate)...)
	productRoutes.Delete("/:id", append(adminOnly, h.HandleDelete)...)
}

// parseID rejects path ids that are not UUIDs in the canonical
// 8-4-4-4-12 form.
func parseID(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	if len(id) != 36 {
		return "", false
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"statusCode": fiber.StatusBadRequest,
		"message":    "Validation failed (uuid is expected)",
		"error":      "Bad Request",
	})
}

// HandleList returns one page of products.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	var params services.PaginationParams
	if err := c.QueryParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid query parameters",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(params); err != nil {
		return validationFailed(c, err)
	}

	products, err := h.productService.List(c.UserContext(), params)
	if err != nil {
		return middleware.RespondError(c, err)
	}
	return c.JSON(products)
}

// HandleFindOne returns a product by id, title or slug.
func (h *ProductHandler) HandleFindOne(c *fiber.Ctx) error {
	product, err := h.productService.FindOnePlain(c.UserContext(), c.Params("term"))
	if err != nil {
		return middleware.RespondError(c, err)
	}
	return c.JSON(product)
}

// HandleCreate creates a product.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var input services.CreateProductInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return badBody(c, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return validationFailed(c, err)
	}

	product, err := h.productService.Create(c.UserContext(), input)
	if err != nil {
		return middleware.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdate applies a partial update to a product.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	var input services.UpdateProductInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return badBody(c, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return validationFailed(c, err)
	}

	product, err := h.productService.Update(c.UserContext(), id, input)
	if err != nil {
		return middleware.RespondError(c, err)
	}
	return c.JSON(product)
}

// HandleDelete removes a product.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	if err := h.productService.Remove(c.UserContext(), id); err != nil {
		return middleware.RespondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}
