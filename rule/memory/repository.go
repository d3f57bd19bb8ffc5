package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/rule"
)

// Repository is an in-memory rule.Repository
type Repository struct {
	mu       sync.RWMutex
	rules    map[string]rule.Rule
	byTenant map[string][]string // tenant -> rule ids in insertion order
}

func NewRepository() *Repository {
	return &Repository{
		rules:    map[string]rule.Rule{},
		byTenant: map[string][]string{},
	}
}

func (r *Repository) Insert(ctx context.Context, rl rule.Rule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rules[rl.ID]; exists {
		return fmt.Errorf("rule %s already exists", rl.ID)
	}
	r.rules[rl.ID] = copyRule(rl)
	r.byTenant[rl.TenantID] = append(r.byTenant[rl.TenantID], rl.ID)
	return nil
}

func (r *Repository) Get(ctx context.Context, tenantID, id string) (rule.Rule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rl, ok := r.rules[id]
	if !ok || rl.TenantID != tenantID {
		return rule.Rule{}, rule.ErrNotFound
	}
	return copyRule(rl), nil
}

func (r *Repository) FindActive(ctx context.Context, tenantID string, trigger rule.TriggerType) ([]rule.Rule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []rule.Rule
	for _, id := range r.byTenant[tenantID] {
		rl := r.rules[id]
		if rl.Active && rl.TriggerType == trigger {
			out = append(out, copyRule(rl))
		}
	}
	return out, nil
}

func (r *Repository) ListByTenant(ctx context.Context, tenantID string) ([]rule.Rule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []rule.Rule{}
	for _, id := range r.byTenant[tenantID] {
		out = append(out, copyRule(r.rules[id]))
	}
	return out, nil
}

func (r *Repository) SetActive(ctx context.Context, tenantID, id string, active bool, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rl, ok := r.rules[id]
	if !ok || rl.TenantID != tenantID {
		return rule.ErrNotFound
	}
	rl.Active = active
	rl.UpdatedAt = updatedAt
	r.rules[id] = rl
	return nil
}

func copyRule(rl rule.Rule) rule.Rule {
	rl.Condition = rl.Condition.Clone()
	rl.Action = rl.Action.Clone()
	return rl
}
