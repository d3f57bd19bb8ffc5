package rule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/document"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/payload"
)

// UseCase defines the rule engine operations
type UseCase interface {
	Evaluate(ctx context.Context, tenantID string, trigger TriggerType, triggerCtx document.Document) ([]EnqueueRequest, error)
	CreateRule(ctx context.Context, tenantID string, trigger TriggerType, condition, action document.Document) (Rule, error)
	SetActive(ctx context.Context, tenantID, id string, active bool) (Rule, error)
	List(ctx context.Context, tenantID string) ([]Rule, error)
}

/* Engine evaluates trigger notifications against stored rules
 * The match policy is picked per trigger type from the MatcherRegistry
 */
type Engine struct {
	Repo     Repository
	Matchers *MatcherRegistry
	now      func() time.Time
}

// NewEngine creates an engine; a nil registry gets the built-in matchers
func NewEngine(repo Repository, matchers *MatcherRegistry) *Engine {
	if matchers == nil {
		matchers = DefaultMatchers()
	}
	return &Engine{
		Repo:     repo,
		Matchers: matchers,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Evaluate returns one enqueue request per active rule whose condition accepts triggerCtx
func (e *Engine) Evaluate(ctx context.Context, tenantID string, trigger TriggerType, triggerCtx document.Document) ([]EnqueueRequest, error) {
	if strings.TrimSpace(tenantID) == "" {
		return nil, ErrTenantRequired
	}

	matcher, ok := e.Matchers.Lookup(trigger)
	if !ok {
		return nil, nil
	}

	rules, err := e.Repo.FindActive(ctx, tenantID, trigger)
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}

	var requests []EnqueueRequest
	for _, r := range rules {
		if !r.Active {
			continue
		}
		if matcher.Match(r.Condition, triggerCtx) {
			requests = append(requests, r.Request(triggerCtx))
		}
	}

	return requests, nil
}

// CreateRule validates and stores a new active rule
func (e *Engine) CreateRule(ctx context.Context, tenantID string, trigger TriggerType, condition, action document.Document) (Rule, error) {
	r := Rule{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		TriggerType: trigger,
		Condition:   condition,
		Action:      action,
		Active:      true,
	}
	if err := e.Validate(r); err != nil {
		return Rule{}, err
	}
	if r.Condition == nil {
		r.Condition = document.Document{}
	}
	if r.Action == nil {
		r.Action = document.Document{}
	}

	now := e.now()
	r.CreatedAt = now
	r.UpdatedAt = now

	if err := e.Repo.Insert(ctx, r); err != nil {
		return Rule{}, fmt.Errorf("storing rule: %w", err)
	}
	return r, nil
}

// Validate checks a rule before it is stored
func (e *Engine) Validate(r Rule) error {
	if strings.TrimSpace(r.TenantID) == "" {
		return ErrTenantRequired
	}
	if _, ok := e.Matchers.Lookup(r.TriggerType); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidTrigger, r.TriggerType)
	}
	if err := payload.ValidateEventType(r.EventType()); err != nil {
		return fmt.Errorf("validating action: %w", err)
	}
	return nil
}

// SetActive enables or soft-disables a rule
func (e *Engine) SetActive(ctx context.Context, tenantID, id string, active bool) (Rule, error) {
	if strings.TrimSpace(tenantID) == "" {
		return Rule{}, ErrTenantRequired
	}

	now := e.now()
	if err := e.Repo.SetActive(ctx, tenantID, id, active, now); err != nil {
		return Rule{}, fmt.Errorf("updating rule: %w", err)
	}

	r, err := e.Repo.Get(ctx, tenantID, id)
	if err != nil {
		return Rule{}, fmt.Errorf("getting rule: %w", err)
	}
	return r, nil
}

// List returns every rule of a tenant, active or not
func (e *Engine) List(ctx context.Context, tenantID string) ([]Rule, error) {
	if strings.TrimSpace(tenantID) == "" {
		return nil, ErrTenantRequired
	}

	rules, err := e.Repo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listing rules: %w", err)
	}
	return rules, nil
}
