package handlers

import (
	"log"
	"path/filepath"

	"catalog/internal/middleware"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// FileHandler handles product image uploads and downloads.
type FileHandler struct {
	fileService *services.FileService
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(fileService *services.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// RegisterRoutes registers the file routes.
func (h *FileHandler) RegisterRoutes(router fiber.Router) {
	fileRoutes := router.Group("/files")
	fileRoutes.Post("/product", h.HandleUploadProductImage)
	fileRoutes.Get("/product/:imageName", h.HandleGetProductImage)
}

// HandleUploadProductImage stores the multipart field "file".
func (h *FileHandler) HandleUploadProductImage(c *fiber.Ctx) error {
	var upload *services.FileUpload

	header, err := c.FormFile("file")
	if err == nil {
		f, err := header.Open()
		if err != nil {
			log.Printf("Error opening uploaded file: %v", err)
			return badBody(c, err)
		}
		defer f.Close()

		upload = &services.FileUpload{
			ContentType: header.Header.Get(fiber.HeaderContentType),
			Size:        header.Size,
			Body:        f,
		}
	}

	secureURL, err := h.fileService.UploadProductImage(c.UserContext(), upload)
	if err != nil {
		return middleware.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"secureUrl": secureURL,
	})
}

// HandleGetProductImage streams a stored image.
func (h *FileHandler) HandleGetProductImage(c *fiber.Ctx) error {
	name := c.Params("imageName")
	r, err := h.fileService.OpenProductImage(c.UserContext(), name)
	if err != nil {
		return middleware.RespondError(c, err)
	}

	c.Type(filepath.Ext(name))
	return c.SendStream(r)
}
