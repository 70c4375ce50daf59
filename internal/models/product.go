package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Genders lists the accepted values of Product.Gender.
var Genders = []string{"men", "women", "kid", "unisex"}

// Product is the aggregate root of the catalog. Its images have no
// lifecycle of their own and are always written together with it.
type Product struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title       string         `json:"title" gorm:"uniqueIndex;type:varchar(255);not null"`
	Price       float64        `json:"price" gorm:"not null;default:0"`
	Description *string        `json:"description"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;type:varchar(255);not null"`
	Stock       int            `json:"stock" gorm:"not null;default:0"`
	Sizes       StringList     `json:"sizes"`
	Gender      string         `json:"gender" gorm:"type:varchar(20);not null"`
	Tags        StringList     `json:"tags"`
	Images      []ProductImage `json:"images" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `json:"-"`
	UpdatedAt   time.Time      `json:"-"`
}

// ProductImage is an image URL owned by a Product.
type ProductImage struct {
	ID        uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	URL       string `json:"url" gorm:"type:text;not null"`
	ProductID string `json:"-" gorm:"type:varchar(36);not null;index"`
}

// BeforeSave derives the slug from the title when it is missing and
// normalizes it on every insert and update.
func (p *Product) BeforeSave(_ *gorm.DB) error {
	if p.Slug == "" {
		p.Slug = p.Title
	}
	p.Slug = NormalizeSlug(p.Slug)
	if p.Tags == nil {
		p.Tags = StringList{}
	}
	if p.Sizes == nil {
		p.Sizes = StringList{}
	}
	return nil
}

// NormalizeSlug lowercases s, turns spaces into underscores and drops apostrophes.
func NormalizeSlug(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	return strings.ReplaceAll(s, "'", "")
}

// ImageURLs returns the image URLs in persisted order.
func (p *Product) ImageURLs() []string {
	urls := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		urls = append(urls, img.URL)
	}
	return urls
}

// PlainProduct is the client view of a Product with images flattened to URLs.
type PlainProduct struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Description *string  `json:"description"`
	Slug        string   `json:"slug"`
	Stock       int      `json:"stock"`
	Sizes       []string `json:"sizes"`
	Gender      string   `json:"gender"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
}

// Plain flattens the product for API responses.
func (p *Product) Plain() PlainProduct {
	sizes := []string(p.Sizes)
	if sizes == nil {
		sizes = []string{}
	}
	tags := []string(p.Tags)
	if tags == nil {
		tags = []string{}
	}
	return PlainProduct{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Slug:        p.Slug,
		Stock:       p.Stock,
		Sizes:       sizes,
		Gender:      p.Gender,
		Tags:        tags,
		Images:      p.ImageURLs(),
	}
}
