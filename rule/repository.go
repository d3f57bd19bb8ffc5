package rule

import (
	"context"
	"time"
)

// Reader provides read operations for rules, always tenant scoped
type Reader interface {
	Get(ctx context.Context, tenantID, id string) (Rule, error)
	FindActive(ctx context.Context, tenantID string, trigger TriggerType) ([]Rule, error)
	ListByTenant(ctx context.Context, tenantID string) ([]Rule, error)
}

// Writer provides write operations for rules
type Writer interface {
	Insert(ctx context.Context, r Rule) error
	SetActive(ctx context.Context, tenantID, id string, active bool, updatedAt time.Time) error
}

type Repository interface {
	Reader
	Writer
}
