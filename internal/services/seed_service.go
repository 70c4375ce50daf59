package services

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"
)

// SeedService reloads the fixture catalog.
type SeedService struct {
	products *ProductService
	events   EventPublisher
	fixtures []CreateProductInput
}

// NewSeedService creates a SeedService loading the built-in fixtures.
func NewSeedService(products *ProductService, events EventPublisher) *SeedService {
	return NewSeedServiceWithFixtures(products, events, seedProducts)
}

// NewSeedServiceWithFixtures creates a SeedService loading the given products.
func NewSeedServiceWithFixtures(products *ProductService, events EventPublisher, fixtures []CreateProductInput) *SeedService {
	return &SeedService{
		products: products,
		events:   events,
		fixtures: fixtures,
	}
}

// RunSeed deletes every product and creates the fixtures concurrently. It
// is not atomic: when one create fails the first error is returned and the
// products already written stay.
func (s *SeedService) RunSeed(ctx context.Context) error {
	if err := s.products.DeleteAllProducts(ctx); err != nil {
		return err
	}

	var g errgroup.Group
	for _, fixture := range s.fixtures {
		g.Go(func() error {
			if _, err := s.products.Create(ctx, fixture); err != nil {
				log.Printf("Seeding product %q failed: %v", fixture.Title, err)
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.Printf("Seed executed: %d products", len(s.fixtures))
	publish(ctx, s.events, CatalogEvent{Type: EventSeedCompleted, Count: len(s.fixtures)})
	return nil
}
