package service

import (
	"context"
)

// ListingEvent is published after a listing or profile submission has been
// persisted, for downstream consumers such as search indexing.
type ListingEvent struct {
	RequestID string   `json:"request_id,omitempty"` // For distributed tracing
	EntityID  string   `json:"entity_id"`
	OwnerID   string   `json:"owner_id"`
	Kind      string   `json:"kind"`   // "listing" or "business_profile"
	Action    string   `json:"action"` // "created" or "updated"
	Title     string   `json:"title"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishListingEvent publishes a submission event for async processing
	PublishListingEvent(ctx context.Context, event *ListingEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
