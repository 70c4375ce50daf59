package services

import (
	"context"
	"log"
	"time"
)

// Routing keys of the catalog events.
const (
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
	EventSeedCompleted  = "seed.completed"
)

// EventPublisher delivers catalog events to a broker. Both pkg/rabbitmq and
// pkg/kafka clients satisfy it.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// CatalogEvent is the payload published for every catalog change.
type CatalogEvent struct {
	Type       string    `json:"type"`
	ProductID  string    `json:"productId,omitempty"`
	Title      string    `json:"title,omitempty"`
	Count      int       `json:"count,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// publish sends an event when a publisher is configured. Delivery failures
// are logged and never fail the write that triggered them.
func publish(ctx context.Context, publisher EventPublisher, event CatalogEvent) {
	if publisher == nil {
		return
	}
	event.OccurredAt = time.Now().UTC()
	if err := publisher.Publish(ctx, event.Type, event); err != nil {
		log.Printf("Failed to publish %s event: %v", event.Type, err)
	}
}
