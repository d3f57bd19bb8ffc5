package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/event"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/payload"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/subscription"
)

// Stats summarizes one dispatch pass
type Stats struct {
	Claimed       int `json:"claimed"`
	Delivered     int `json:"delivered"`
	Retried       int `json:"retried"`
	Failed        int `json:"failed"`
	NoSubscribers int `json:"no_subscribers"`
	Attempts      int `json:"attempts"`
}

// UseCase is what schedulers and the admin API call
type UseCase interface {
	DispatchPending(ctx context.Context) (Stats, error)
}

// Queue is the part of the event queue the dispatcher drives
type Queue interface {
	ListPending(ctx context.Context, limit int) ([]event.OutboundEvent, error)
	MarkDelivered(ctx context.Context, id string) (event.OutboundEvent, error)
	MarkFailed(ctx context.Context, id, errorMessage string) (event.OutboundEvent, error)
}

// SubscriptionFinder resolves the delivery targets of an event
type SubscriptionFinder interface {
	FindActive(ctx context.Context, tenantID, eventType string) ([]subscription.Subscription, error)
}

// Recorder receives delivery measurements, see metrics.OTelExporter
type Recorder interface {
	ObserveDelivery(ctx context.Context, eventType string, success bool, elapsed time.Duration)
	ObservePass(ctx context.Context, stats Stats, elapsed time.Duration)
}

type Config struct {
	BatchSize       int
	DeliveryTimeout time.Duration
	InstanceID      string
}

/* Dispatcher drains pending events and delivers them to every active subscription.
 * A pass is not a loop: callers schedule it (ticker, cron, admin endpoint).
 * Each attempt reports its own outcome to the queue, so with several subscribers
 * the shared event status follows the attempts in order. Reports against an event
 * that already became terminal are no-ops in the queue.
 */
type Dispatcher struct {
	queue      Queue
	subs       SubscriptionFinder
	sender     Sender
	locker     Locker
	recorder   Recorder
	heartbeats HeartbeatStore
	logger     zerolog.Logger
	cfg        Config
}

func NewDispatcher(queue Queue, subs SubscriptionFinder, sender Sender, cfg Config, logger zerolog.Logger) *Dispatcher {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = event.DefaultListLimit
	}
	if cfg.DeliveryTimeout <= 0 {
		cfg.DeliveryTimeout = DefaultDeliveryTimeout
	}
	return &Dispatcher{
		queue:  queue,
		subs:   subs,
		sender: sender,
		locker: NewLocalLocker(),
		logger: logger,
		cfg:    cfg,
	}
}

// WithLocker replaces the in-process lock, e.g. with a Redis lock shared by replicas
func (d *Dispatcher) WithLocker(l Locker) *Dispatcher {
	d.locker = l
	return d
}

func (d *Dispatcher) WithRecorder(r Recorder) *Dispatcher {
	d.recorder = r
	return d
}

func (d *Dispatcher) WithHeartbeats(h HeartbeatStore) *Dispatcher {
	d.heartbeats = h
	return d
}

// DispatchPending runs one pass. Per-event errors are joined, they never abort the pass.
func (d *Dispatcher) DispatchPending(ctx context.Context) (Stats, error) {
	unlock, err := d.locker.TryLock(ctx)
	if err != nil {
		return Stats{}, err
	}
	defer unlock()

	start := time.Now()
	stats := Stats{}

	events, err := d.queue.ListPending(ctx, d.cfg.BatchSize)
	if err != nil {
		return stats, fmt.Errorf("listing pending events: %w", err)
	}
	stats.Claimed = len(events)
	d.beat(ctx, "dispatching", stats)

	var errs []error
	for _, ev := range events {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := d.dispatchEvent(ctx, ev, &stats); err != nil {
			errs = append(errs, err)
		}
	}

	elapsed := time.Since(start)
	if d.recorder != nil {
		d.recorder.ObservePass(ctx, stats, elapsed)
	}
	d.beat(ctx, "idle", stats)

	if stats.Claimed > 0 {
		d.logger.Info().
			Int("claimed", stats.Claimed).
			Int("delivered", stats.Delivered).
			Int("retried", stats.Retried).
			Int("failed", stats.Failed).
			Int("no_subscribers", stats.NoSubscribers).
			Int("attempts", stats.Attempts).
			Dur("elapsed", elapsed).
			Msg("dispatch pass completed")
	}

	return stats, errors.Join(errs...)
}

func (d *Dispatcher) dispatchEvent(ctx context.Context, ev event.OutboundEvent, stats *Stats) error {
	log := d.logger.With().
		Str("event_id", ev.ID).
		Str("tenant_id", ev.TenantID).
		Str("event_type", ev.EventType).
		Logger()

	subs, err := d.subs.FindActive(ctx, ev.TenantID, ev.EventType)
	if err != nil {
		log.Error().Err(err).Msg("finding subscriptions")
		return fmt.Errorf("finding subscriptions for event %s: %w", ev.ID, err)
	}

	if len(subs) == 0 {
		stats.NoSubscribers++
		updated, err := d.queue.MarkDelivered(ctx, ev.ID)
		if err != nil {
			return fmt.Errorf("marking event %s delivered: %w", ev.ID, err)
		}
		log.Debug().Msg("no subscribers, event delivered vacuously")
		count(stats, updated.Status)
		return nil
	}

	envelope, err := payload.New(ev.EventType, ev.Payload)
	var body []byte
	if err == nil {
		body, err = envelope.Bytes()
	}
	if err != nil {
		updated, markErr := d.queue.MarkFailed(ctx, ev.ID, err.Error())
		if markErr != nil {
			return errors.Join(err, fmt.Errorf("marking event %s failed: %w", ev.ID, markErr))
		}
		count(stats, updated.Status)
		return fmt.Errorf("encoding event %s: %w", ev.ID, err)
	}

	var (
		errs []error
		last event.OutboundEvent
		seen bool
	)
	for _, sub := range subs {
		stats.Attempts++
		outcome, failure := d.attempt(ctx, ev, sub, body)

		var (
			updated event.OutboundEvent
			markErr error
		)
		if failure == "" {
			updated, markErr = d.queue.MarkDelivered(ctx, ev.ID)
			log.Info().Str("subscription_id", sub.ID).Int("status_code", outcome).Msg("webhook delivered")
		} else {
			updated, markErr = d.queue.MarkFailed(ctx, ev.ID, failure)
			log.Warn().Str("subscription_id", sub.ID).Str("error", failure).Msg("webhook delivery failed")
		}
		if markErr != nil {
			errs = append(errs, fmt.Errorf("recording attempt for event %s: %w", ev.ID, markErr))
			continue
		}
		last, seen = updated, true
	}

	if seen {
		count(stats, last.Status)
	}
	return errors.Join(errs...)
}

// attempt returns the status code and an empty failure text on success
func (d *Dispatcher) attempt(ctx context.Context, ev event.OutboundEvent, sub subscription.Subscription, body []byte) (int, string) {
	attemptCtx, cancel := context.WithTimeout(ctx, d.cfg.DeliveryTimeout)
	defer cancel()

	start := time.Now()
	code, err := d.sender.Send(attemptCtx, Delivery{
		EventID:   ev.ID,
		EventType: ev.EventType,
		URL:       sub.TargetURL,
		Secret:    sub.Secret,
		Body:      body,
	})
	elapsed := time.Since(start)

	failure := ""
	switch {
	case err != nil:
		failure = err.Error()
	case code < 200 || code > 299:
		failure = fmt.Sprintf("Status %d", code)
	}

	if d.recorder != nil {
		d.recorder.ObserveDelivery(ctx, ev.EventType, failure == "", elapsed)
	}
	return code, failure
}

func (d *Dispatcher) beat(ctx context.Context, status string, stats Stats) {
	if d.heartbeats == nil {
		return
	}
	err := d.heartbeats.Beat(ctx, Heartbeat{
		InstanceID:    d.cfg.InstanceID,
		Status:        status,
		LastPass:      stats,
		LastHeartbeat: time.Now().UTC(),
	})
	if err != nil {
		d.logger.Warn().Err(err).Msg("recording heartbeat")
	}
}

func count(stats *Stats, status event.Status) {
	switch status {
	case event.Delivered:
		stats.Delivered++
	case event.Failed:
		stats.Failed++
	case event.Pending:
		stats.Retried++
	}
}
