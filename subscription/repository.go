package subscription

import (
	"context"
	"time"
)

// Reader provides read operations for subscriptions, always tenant scoped
type Reader interface {
	Get(ctx context.Context, tenantID, id string) (Subscription, error)
	FindActive(ctx context.Context, tenantID, eventType string) ([]Subscription, error)
	ListByTenant(ctx context.Context, tenantID string) ([]Subscription, error)
}

// Writer provides write operations for subscriptions
type Writer interface {
	Insert(ctx context.Context, s Subscription) error
	Deactivate(ctx context.Context, tenantID, id string, updatedAt time.Time) error
}

type Repository interface {
	Reader
	Writer
}
