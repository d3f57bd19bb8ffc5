package trigger

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/document"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/event"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/rule"
)

/* Notifier is the only thing domain code needs to know about the engine.
 * A notification is turned into zero or more pending events and returns
 * without waiting for any delivery.
 */
type Notifier interface {
	NotifyTrigger(ctx context.Context, tenantID string, trigger rule.TriggerType, triggerCtx document.Document) error
}

// UseCase adds the enqueued events to the Notifier contract, for callers that report them
type UseCase interface {
	Notifier
	Notify(ctx context.Context, tenantID string, trigger rule.TriggerType, triggerCtx document.Document) ([]event.OutboundEvent, error)
}

// Evaluator is the rule engine as seen from the notifier
type Evaluator interface {
	Evaluate(ctx context.Context, tenantID string, trigger rule.TriggerType, triggerCtx document.Document) ([]rule.EnqueueRequest, error)
}

// Enqueuer is the event queue as seen from the notifier
type Enqueuer interface {
	Enqueue(ctx context.Context, tenantID, eventType string, p document.Document) (event.OutboundEvent, error)
}

type Service struct {
	Rules  Evaluator
	Queue  Enqueuer
	logger zerolog.Logger
}

func NewService(rules Evaluator, queue Enqueuer, logger zerolog.Logger) *Service {
	return &Service{
		Rules:  rules,
		Queue:  queue,
		logger: logger,
	}
}

// NotifyTrigger implements Notifier
func (s *Service) NotifyTrigger(ctx context.Context, tenantID string, trigger rule.TriggerType, triggerCtx document.Document) error {
	_, err := s.Notify(ctx, tenantID, trigger, triggerCtx)
	return err
}

/* Notify evaluates the rules and enqueues one event per match.
 * An enqueue failure does not stop the remaining matches: the events that were
 * stored are returned together with the joined errors.
 */
func (s *Service) Notify(ctx context.Context, tenantID string, trigger rule.TriggerType, triggerCtx document.Document) ([]event.OutboundEvent, error) {
	requests, err := s.Rules.Evaluate(ctx, tenantID, trigger, triggerCtx)
	if err != nil {
		return nil, fmt.Errorf("evaluating rules: %w", err)
	}

	events := []event.OutboundEvent{}
	var errs []error
	for _, req := range requests {
		ev, err := s.Queue.Enqueue(ctx, req.TenantID, req.EventType, req.Payload)
		if err != nil {
			errs = append(errs, fmt.Errorf("enqueueing %s event: %w", req.EventType, err))
			continue
		}
		events = append(events, ev)
	}

	err = errors.Join(errs...)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("tenant_id", tenantID).
			Str("trigger", trigger.String()).
			Int("matched", len(requests)).
			Int("enqueued", len(events)).
			Msg("enqueueing matched events")
		return events, err
	}

	s.logger.Debug().
		Str("tenant_id", tenantID).
		Str("trigger", trigger.String()).
		Int("matched", len(requests)).
		Int("enqueued", len(events)).
		Msg("trigger notified")

	return events, nil
}
