package service

import (
	"context"
	"time"
)

// PriceChangeEvent is published whenever a listing is created, repriced or changes stock.
type PriceChangeEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	ProductID     string    `json:"product_id"`
	SupermarketID string    `json:"supermarket_id"`
	City          string    `json:"city"`
	OldPrice      string    `json:"old_price,omitempty"` // Empty for new listings and deletions
	NewPrice      string    `json:"new_price,omitempty"` // Empty for deletions
	InStock       bool      `json:"in_stock"`
	ChangedBy     string    `json:"changed_by"`
	ChangedAt     time.Time `json:"changed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPriceChange publishes a listing change for downstream consumers
	PublishPriceChange(ctx context.Context, event *PriceChangeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
