package subscription

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/payload"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/signature"
)

// UseCase defines the subscription registry operations
type UseCase interface {
	FindActive(ctx context.Context, tenantID, eventType string) ([]Subscription, error)
	Create(ctx context.Context, tenantID, eventType, targetURL, secret string) (Subscription, error)
	Deactivate(ctx context.Context, tenantID, id string) (Subscription, error)
	List(ctx context.Context, tenantID string) ([]Subscription, error)
}

// Registry resolves the delivery targets of an event
type Registry struct {
	Repo Repository
	now  func() time.Time
}

func NewRegistry(repo Repository) *Registry {
	return &Registry{
		Repo: repo,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// FindActive returns the active subscriptions of a tenant for an event type
func (r *Registry) FindActive(ctx context.Context, tenantID, eventType string) ([]Subscription, error) {
	if strings.TrimSpace(tenantID) == "" {
		return nil, ErrTenantRequired
	}

	subs, err := r.Repo.FindActive(ctx, tenantID, eventType)
	if err != nil {
		return nil, fmt.Errorf("finding subscriptions: %w", err)
	}

	active := subs[:0]
	for _, s := range subs {
		if s.Active {
			active = append(active, s)
		}
	}
	return active, nil
}

// Create registers an endpoint; an empty secret is generated
func (r *Registry) Create(ctx context.Context, tenantID, eventType, targetURL, secret string) (Subscription, error) {
	if strings.TrimSpace(tenantID) == "" {
		return Subscription{}, ErrTenantRequired
	}
	if err := payload.ValidateEventType(eventType); err != nil {
		return Subscription{}, fmt.Errorf("validating event type: %w", err)
	}
	if err := ValidateURL(targetURL); err != nil {
		return Subscription{}, fmt.Errorf("validating target url: %w", err)
	}

	if secret == "" {
		generated, err := signature.GenerateSecret(signature.DefaultSecretBytes)
		if err != nil {
			return Subscription{}, fmt.Errorf("generating secret: %w", err)
		}
		secret = generated
	}

	now := r.now()
	s := Subscription{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		EventType: eventType,
		TargetURL: targetURL,
		Secret:    secret,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := r.Repo.Insert(ctx, s); err != nil {
		return Subscription{}, fmt.Errorf("storing subscription: %w", err)
	}
	return s, nil
}

// Deactivate soft-disables a subscription
func (r *Registry) Deactivate(ctx context.Context, tenantID, id string) (Subscription, error) {
	if strings.TrimSpace(tenantID) == "" {
		return Subscription{}, ErrTenantRequired
	}

	if err := r.Repo.Deactivate(ctx, tenantID, id, r.now()); err != nil {
		return Subscription{}, fmt.Errorf("deactivating subscription: %w", err)
	}

	s, err := r.Repo.Get(ctx, tenantID, id)
	if err != nil {
		return Subscription{}, fmt.Errorf("getting subscription: %w", err)
	}
	return s, nil
}

// List returns every subscription of a tenant
func (r *Registry) List(ctx context.Context, tenantID string) ([]Subscription, error) {
	if strings.TrimSpace(tenantID) == "" {
		return nil, ErrTenantRequired
	}

	subs, err := r.Repo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}
	return subs, nil
}
