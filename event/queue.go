package event

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/document"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/payload"
)

const (
	// DefaultListLimit bounds a single dispatch pass
	DefaultListLimit = 20
	// maxSwapAttempts bounds the optimistic read-modify-write loop
	maxSwapAttempts = 5
)

var ErrTenantRequired = errors.New("tenant id is required")

// UseCase defines the queue operations used by the trigger notifier and the dispatcher
type UseCase interface {
	Enqueue(ctx context.Context, tenantID, eventType string, p document.Document) (OutboundEvent, error)
	ListPending(ctx context.Context, limit int) ([]OutboundEvent, error)
	MarkDelivered(ctx context.Context, id string) (OutboundEvent, error)
	MarkFailed(ctx context.Context, id, errorMessage string) (OutboundEvent, error)
	Get(ctx context.Context, id string) (OutboundEvent, error)
	ListByTenant(ctx context.Context, tenantID string, status Status, limit int) ([]OutboundEvent, error)
}

/* Queue is pure state bookkeeping over a Repository: it never performs network I/O.
 * Every transition is a compare-and-swap on (status, retry count), so overlapping
 * dispatch passes cannot double count a failure or resurrect a terminal event.
 */
type Queue struct {
	Repo   Repository
	Policy RetryPolicy
	now    func() time.Time
}

// NewQueue creates a queue; a non-positive MaxRetries falls back to the default policy threshold
func NewQueue(repo Repository, policy RetryPolicy) *Queue {
	if policy.MaxRetries <= 0 {
		policy.MaxRetries = DefaultMaxRetries
	}
	return &Queue{
		Repo:   repo,
		Policy: policy,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// WithClock replaces the time source, used by tests exercising backoff
func (q *Queue) WithClock(now func() time.Time) *Queue {
	q.now = now
	return q
}

// Enqueue creates a new pending event with a zero retry count
func (q *Queue) Enqueue(ctx context.Context, tenantID, eventType string, p document.Document) (OutboundEvent, error) {
	if strings.TrimSpace(tenantID) == "" {
		return OutboundEvent{}, ErrTenantRequired
	}
	if err := payload.ValidateEventType(eventType); err != nil {
		return OutboundEvent{}, fmt.Errorf("validating event type: %w", err)
	}
	if p == nil {
		p = document.Document{}
	}

	now := q.now()
	ev := OutboundEvent{
		ID:         uuid.New().String(),
		TenantID:   tenantID,
		EventType:  eventType,
		Payload:    p,
		Status:     Pending,
		RetryCount: 0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := q.Repo.Insert(ctx, ev); err != nil {
		return OutboundEvent{}, fmt.Errorf("storing event: %w", err)
	}

	return ev, nil
}

// ListPending returns due pending events, oldest first
func (q *Queue) ListPending(ctx context.Context, limit int) ([]OutboundEvent, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	events, err := q.Repo.ListPending(ctx, q.now(), limit)
	if err != nil {
		return nil, fmt.Errorf("listing pending events: %w", err)
	}
	return events, nil
}

// MarkDelivered moves a pending event to delivered; terminal events are left untouched
func (q *Queue) MarkDelivered(ctx context.Context, id string) (OutboundEvent, error) {
	return q.transition(ctx, id, func(current OutboundEvent) (OutboundEvent, bool) {
		if current.Status.IsFinal() {
			return current, false
		}
		next := current
		next.Status = Delivered
		next.NextAttemptAt = time.Time{}
		next.UpdatedAt = q.now()
		return next, true
	})
}

/* MarkFailed records one failed attempt. The event stays pending until the
 * retry count reaches the policy threshold, then it becomes failed for good.
 */
func (q *Queue) MarkFailed(ctx context.Context, id, errorMessage string) (OutboundEvent, error) {
	return q.transition(ctx, id, func(current OutboundEvent) (OutboundEvent, bool) {
		if current.Status.IsFinal() {
			return current, false
		}
		now := q.now()
		next := current
		next.RetryCount = current.RetryCount + 1
		next.LastError = errorMessage
		next.UpdatedAt = now
		next.NextAttemptAt = time.Time{}

		if q.Policy.Exhausted(next.RetryCount) {
			next.Status = Failed
			return next, true
		}

		if delay := q.Policy.NextDelay(next.RetryCount); delay > 0 {
			next.NextAttemptAt = now.Add(delay)
		}
		return next, true
	})
}

// Get retrieves an event by ID
func (q *Queue) Get(ctx context.Context, id string) (OutboundEvent, error) {
	ev, err := q.Repo.Get(ctx, id)
	if err != nil {
		return OutboundEvent{}, fmt.Errorf("getting event: %w", err)
	}
	return ev, nil
}

// ListByTenant lists a tenant's events, optionally filtered by status
func (q *Queue) ListByTenant(ctx context.Context, tenantID string, status Status, limit int) ([]OutboundEvent, error) {
	if strings.TrimSpace(tenantID) == "" {
		return nil, ErrTenantRequired
	}
	if status != 0 {
		if err := status.Validate(); err != nil {
			return nil, fmt.Errorf("validating status: %w", err)
		}
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}

	events, err := q.Repo.ListByTenant(ctx, tenantID, status, limit)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	return events, nil
}

func (q *Queue) transition(ctx context.Context, id string, apply func(OutboundEvent) (OutboundEvent, bool)) (OutboundEvent, error) {
	for attempt := 0; attempt < maxSwapAttempts; attempt++ {
		current, err := q.Repo.Get(ctx, id)
		if err != nil {
			return OutboundEvent{}, fmt.Errorf("getting event: %w", err)
		}

		next, changed := apply(current)
		if !changed {
			return current, nil
		}

		err = q.Repo.CompareAndSwap(ctx, current, next)
		if errors.Is(err, ErrConflict) {
			continue
		}
		if err != nil {
			return OutboundEvent{}, fmt.Errorf("updating event: %w", err)
		}
		return next, nil
	}

	return OutboundEvent{}, fmt.Errorf("updating event %s: %w", id, ErrConflict)
}
