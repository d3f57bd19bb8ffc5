package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/subscription"
)

// Repository is an in-memory subscription.Repository
type Repository struct {
	mu       sync.RWMutex
	subs     map[string]subscription.Subscription
	byTenant map[string][]string
}

func NewRepository() *Repository {
	return &Repository{
		subs:     map[string]subscription.Subscription{},
		byTenant: map[string][]string{},
	}
}

func (r *Repository) Insert(ctx context.Context, s subscription.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.subs[s.ID]; exists {
		return fmt.Errorf("subscription %s already exists", s.ID)
	}
	r.subs[s.ID] = s
	r.byTenant[s.TenantID] = append(r.byTenant[s.TenantID], s.ID)
	return nil
}

func (r *Repository) Get(ctx context.Context, tenantID, id string) (subscription.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.subs[id]
	if !ok || s.TenantID != tenantID {
		return subscription.Subscription{}, subscription.ErrNotFound
	}
	return s, nil
}

func (r *Repository) FindActive(ctx context.Context, tenantID, eventType string) ([]subscription.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []subscription.Subscription
	for _, id := range r.byTenant[tenantID] {
		s := r.subs[id]
		if s.Active && s.EventType == eventType {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *Repository) ListByTenant(ctx context.Context, tenantID string) ([]subscription.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []subscription.Subscription{}
	for _, id := range r.byTenant[tenantID] {
		out = append(out, r.subs[id])
	}
	return out, nil
}

func (r *Repository) Deactivate(ctx context.Context, tenantID, id string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.subs[id]
	if !ok || s.TenantID != tenantID {
		return subscription.ErrNotFound
	}
	s.Active = false
	s.UpdatedAt = updatedAt
	r.subs[id] = s
	return nil
}
