package services

import (
	"context"
	"errors"

	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/google/uuid"
)

// DefaultPageLimit is used when a list request gives no limit.
const DefaultPageLimit = 10

// ProductService handles business logic related to products.
type ProductService struct {
	repo   repositories.ProductRepository
	events EventPublisher
}

// NewProductService creates a new ProductService. events may be nil.
func NewProductService(repo repositories.ProductRepository, events EventPublisher) *ProductService {
	return &ProductService{
		repo:   repo,
		events: events,
	}
}

// PaginationParams selects one page of an offset-paginated listing.
type PaginationParams struct {
	Limit  int `query:"limit" validate:"omitempty,min=1"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

// CreateProductInput is the payload for a new product.
type CreateProductInput struct {
	Title       string   `json:"title" validate:"required,min=1"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Description *string  `json:"description"`
	Slug        *string  `json:"slug"`
	Stock       *int     `json:"stock" validate:"omitempty,gt=0"`
	Sizes       []string `json:"sizes" validate:"required"`
	Gender      string   `json:"gender" validate:"required,oneof=men women kid unisex"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
}

// UpdateProductInput is a partial product. Nil fields keep their stored
// value; a non-nil Images replaces the whole image set.
type UpdateProductInput struct {
	Title       *string  `json:"title" validate:"omitempty,min=1"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Description *string  `json:"description"`
	Slug        *string  `json:"slug"`
	Stock       *int     `json:"stock" validate:"omitempty,gt=0"`
	Sizes       []string `json:"sizes"`
	Gender      *string  `json:"gender" validate:"omitempty,oneof=men women kid unisex"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
}

func (in UpdateProductInput) applyTo(p *models.Product) {
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Description != nil {
		p.Description = in.Description
	}
	if in.Slug != nil {
		p.Slug = *in.Slug
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.Sizes != nil {
		p.Sizes = models.StringList(in.Sizes)
	}
	if in.Gender != nil {
		p.Gender = *in.Gender
	}
	if in.Tags != nil {
		p.Tags = models.StringList(in.Tags)
	}
}

func toImages(urls []string) []models.ProductImage {
	images := make([]models.ProductImage, 0, len(urls))
	for _, url := range urls {
		images = append(images, models.ProductImage{URL: url})
	}
	return images
}

func isUUID(term string) bool {
	if len(term) != 36 {
		return false
	}
	_, err := uuid.Parse(term)
	return err == nil
}

// List returns one page of products with flattened images.
func (s *ProductService) List(ctx context.Context, params PaginationParams) ([]models.PlainProduct, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	products, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, handleDBError("list products", err)
	}

	plain := make([]models.PlainProduct, 0, len(products))
	for i := range products {
		plain = append(plain, products[i].Plain())
	}
	return plain, nil
}

// FindOne looks a product up by id when term is a UUID, and by title
// (ignoring case) or slug otherwise.
func (s *ProductService) FindOne(ctx context.Context, term string) (*models.Product, error) {
	var (
		product *models.Product
		err     error
	)
	if isUUID(term) {
		product, err = s.repo.GetByID(ctx, term)
	} else {
		product, err = s.repo.FindByTitleOrSlug(ctx, term)
	}
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, newError(ErrNotFound, "Product with %s not found", term)
		}
		return nil, handleDBError("find product", err)
	}
	return product, nil
}

// FindOnePlain is FindOne with the images flattened to URLs.
func (s *ProductService) FindOnePlain(ctx context.Context, term string) (*models.PlainProduct, error) {
	product, err := s.FindOne(ctx, term)
	if err != nil {
		return nil, err
	}
	plain := product.Plain()
	return &plain, nil
}

// Create stores a product and one image row per given URL.
func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (*models.PlainProduct, error) {
	product := &models.Product{
		Title:       input.Title,
		Description: input.Description,
		Sizes:       models.StringList(input.Sizes),
		Gender:      input.Gender,
		Tags:        models.StringList(input.Tags),
		Images:      toImages(input.Images),
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Slug != nil {
		product.Slug = *input.Slug
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, handleDBError("create product", err)
	}

	publish(ctx, s.events, CatalogEvent{Type: EventProductCreated, ProductID: product.ID, Title: product.Title})
	plain := product.Plain()
	return &plain, nil
}

// Update overlays input on the stored product and writes it in a single
// transaction. The returned product is re-read after commit.
func (s *ProductService) Update(ctx context.Context, id string, input UpdateProductInput) (*models.PlainProduct, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, newError(ErrNotFound, "Product with id %s not found", id)
		}
		return nil, handleDBError("load product", err)
	}

	input.applyTo(product)
	replaceImages := input.Images != nil
	if replaceImages {
		product.Images = toImages(input.Images)
	}

	if err := s.repo.Update(ctx, product, replaceImages); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, newError(ErrNotFound, "Product with id %s not found", id)
		}
		return nil, handleDBError("update product", err)
	}

	publish(ctx, s.events, CatalogEvent{Type: EventProductUpdated, ProductID: product.ID, Title: product.Title})
	return s.FindOnePlain(ctx, id)
}

// Remove deletes a product together with its images.
func (s *ProductService) Remove(ctx context.Context, id string) error {
	product, err := s.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, product); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return newError(ErrNotFound, "Product with %s not found", id)
		}
		return handleDBError("delete product", err)
	}

	publish(ctx, s.events, CatalogEvent{Type: EventProductDeleted, ProductID: product.ID, Title: product.Title})
	return nil
}

// DeleteAllProducts empties the catalog. It is only used for reseeding.
func (s *ProductService) DeleteAllProducts(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return handleDBError("delete all products", err)
	}
	return nil
}
