package event

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("event not found")
	// ErrConflict is returned by CompareAndSwap when the stored event changed underneath
	ErrConflict = errors.New("event was modified concurrently")
)

// Reader provides read operations for outbound events
type Reader interface {
	Get(ctx context.Context, id string) (OutboundEvent, error)
	/* ListPending returns pending events due at now, oldest first
	 * At most limit events are returned
	 */
	ListPending(ctx context.Context, now time.Time, limit int) ([]OutboundEvent, error)
	// ListByTenant returns a tenant's events newest first; a zero status matches any
	ListByTenant(ctx context.Context, tenantID string, status Status, limit int) ([]OutboundEvent, error)
	CountByStatus(ctx context.Context) (map[Status]int64, error)
}

// Writer provides write operations for outbound events
type Writer interface {
	Insert(ctx context.Context, ev OutboundEvent) error
	/* CompareAndSwap stores next only if the stored event still has the
	 * status and retry count of prev. Returns ErrConflict otherwise.
	 */
	CompareAndSwap(ctx context.Context, prev, next OutboundEvent) error
}

type Repository interface {
	Reader
	Writer
	Close(ctx context.Context) error
}
