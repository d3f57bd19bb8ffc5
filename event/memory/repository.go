package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/event"
)

// Repository is an in-memory event.Repository used in tests and when no database is configured
type Repository struct {
	mu       sync.Mutex
	events   map[string]event.OutboundEvent
	pending  []string            // non-terminal ids in insertion order, oldest first
	byTenant map[string][]string // tenant -> event ids
}

func NewRepository() *Repository {
	return &Repository{
		events:   map[string]event.OutboundEvent{},
		byTenant: map[string][]string{},
	}
}

func (r *Repository) Insert(ctx context.Context, ev event.OutboundEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.events[ev.ID]; exists {
		return fmt.Errorf("event %s already exists", ev.ID)
	}
	r.events[ev.ID] = copyEvent(ev)
	if !ev.Status.IsFinal() {
		r.pending = append(r.pending, ev.ID)
	}
	r.byTenant[ev.TenantID] = append(r.byTenant[ev.TenantID], ev.ID)
	return nil
}

func (r *Repository) Get(ctx context.Context, id string) (event.OutboundEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ev, ok := r.events[id]
	if !ok {
		return event.OutboundEvent{}, event.ErrNotFound
	}
	return copyEvent(ev), nil
}

func (r *Repository) ListPending(ctx context.Context, now time.Time, limit int) ([]event.OutboundEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []event.OutboundEvent{}
	for _, id := range r.pending {
		if len(out) >= limit {
			break
		}
		ev := r.events[id]
		if ev.Due(now) {
			out = append(out, copyEvent(ev))
		}
	}
	return out, nil
}

func (r *Repository) ListByTenant(ctx context.Context, tenantID string, status event.Status, limit int) ([]event.OutboundEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := r.byTenant[tenantID]
	out := []event.OutboundEvent{}
	for i := len(ids) - 1; i >= 0 && len(out) < limit; i-- {
		ev := r.events[ids[i]]
		if status != 0 && ev.Status != status {
			continue
		}
		out = append(out, copyEvent(ev))
	}
	return out, nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[event.Status]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := map[event.Status]int64{
		event.Pending:   0,
		event.Delivered: 0,
		event.Failed:    0,
	}
	for _, ev := range r.events {
		counts[ev.Status]++
	}
	return counts, nil
}

func (r *Repository) CompareAndSwap(ctx context.Context, prev, next event.OutboundEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.events[prev.ID]
	if !ok {
		return event.ErrNotFound
	}
	if stored.Status != prev.Status || stored.RetryCount != prev.RetryCount {
		return event.ErrConflict
	}

	// identity and creation fields are immutable
	next.ID = stored.ID
	next.TenantID = stored.TenantID
	next.CreatedAt = stored.CreatedAt
	r.events[prev.ID] = copyEvent(next)
	if next.Status.IsFinal() && !stored.Status.IsFinal() {
		r.removePending(prev.ID)
	}
	return nil
}

func (r *Repository) Close(ctx context.Context) error {
	return nil
}

func (r *Repository) removePending(id string) {
	for i, pid := range r.pending {
		if pid == id {
			r.pending = append(r.pending[:i], r.pending[i+1:]...)
			return
		}
	}
}

func copyEvent(ev event.OutboundEvent) event.OutboundEvent {
	ev.Payload = ev.Payload.Clone()
	return ev
}
