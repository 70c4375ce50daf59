package repositories

import (
	"context"
	"fmt"
	"strings"

	"catalog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

func orderedImages(db *gorm.DB) *gorm.DB {
	return db.Order("product_images.id")
}

// List retrieves one page of products.
func (r *GORMProductRepository) List(ctx context.Context, limit, offset int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Preload("Images", orderedImages).
		Order("created_at").
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", translate(err))
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).Preload("Images", orderedImages).First(&product, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, translate(err))
	}
	return &product, nil
}

// FindByTitleOrSlug retrieves a product whose title matches term ignoring
// case or whose slug equals term.
func (r *GORMProductRepository) FindByTitleOrSlug(ctx context.Context, term string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Images", orderedImages).
		Where("UPPER(title) = ? OR slug = ?", strings.ToUpper(term), term).
		Take(&product).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find product by term %q: %w", term, translate(err))
	}
	return &product, nil
}

// Create inserts a product together with its images.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", translate(err))
	}
	return nil
}

// Update writes the product row and, when asked, swaps its image rows, all
// inside a single transaction.
func (r *GORMProductRepository) Update(ctx context.Context, product *models.Product, replaceImages bool) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if replaceImages {
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
				return err
			}
		}

		result := tx.Model(product).Select("*").Omit(clause.Associations, "ID", "CreatedAt").Updates(product)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if replaceImages && len(product.Images) > 0 {
			for i := range product.Images {
				product.Images[i].ID = 0
				product.Images[i].ProductID = product.ID
			}
			if err := tx.Create(&product.Images).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", product.ID, translate(err))
	}
	return nil
}

// Delete removes a product and the images it owns.
func (r *GORMProductRepository) Delete(ctx context.Context, product *models.Product) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Product{}, "id = ?", product.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", product.ID, translate(err))
	}
	return nil
}

// DeleteAll removes every product and image.
func (r *GORMProductRepository) DeleteAll(ctx context.Context) error {
	db := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})
	if err := db.Delete(&models.ProductImage{}).Error; err != nil {
		return fmt.Errorf("failed to delete product images: %w", translate(err))
	}
	if err := db.Delete(&models.Product{}).Error; err != nil {
		return fmt.Errorf("failed to delete products: %w", translate(err))
	}
	return nil
}
