// Package service declares the outbound collaborators of the catalog.
package service

import (
	"context"
	"time"
)

// CatalogEventType names a change in the catalog
type CatalogEventType string

const (
	// EventStoreCreated is published after a store is created
	EventStoreCreated CatalogEventType = "store.created"

	// EventStoreUpdated is published after a store is edited
	EventStoreUpdated CatalogEventType = "store.updated"

	// EventHeartToggled is published after a user hearts or un-hearts a store
	EventHeartToggled CatalogEventType = "store.heart_toggled"
)

// CatalogEvent is published after a catalog write has been committed
type CatalogEvent struct {
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	EventID    string           `json:"event_id"`
	Type       CatalogEventType `json:"type"`
	StoreID    string           `json:"store_id"`
	Slug       string           `json:"slug,omitempty"`
	UserID     string           `json:"user_id,omitempty"`
	Hearted    bool             `json:"hearted,omitempty"` // Only for EventHeartToggled
	OccurredAt time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing catalog events to a message queue
type EventPublisher interface {
	// PublishCatalogEvent publishes a committed catalog change
	PublishCatalogEvent(ctx context.Context, event *CatalogEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
