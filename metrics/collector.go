package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/dispatch"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/event"
)

// StatusCounter is satisfied by every event.Repository
type StatusCounter interface {
	CountByStatus(ctx context.Context) (map[event.Status]int64, error)
}

// QueueCollector implements Collector over the event store and the heartbeat store
type QueueCollector struct {
	events     StatusCounter
	heartbeats dispatch.HeartbeatStore
}

// NewQueueCollector creates a collector; heartbeats may be nil
func NewQueueCollector(events StatusCounter, heartbeats dispatch.HeartbeatStore) *QueueCollector {
	return &QueueCollector{
		events:     events,
		heartbeats: heartbeats,
	}
}

// Collect gathers all metrics
func (c *QueueCollector) Collect(ctx context.Context) (Metrics, error) {
	statusCounts, err := c.GetStatusCounts(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting status counts: %w", err)
	}

	dispatchers, err := c.GetActiveDispatchers(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting active dispatchers: %w", err)
	}

	return Metrics{
		StatusCounts: statusCounts,
		Dispatchers:  dispatchers,
		Timestamp:    time.Now(),
	}, nil
}

// GetStatusCounts returns counts of events keyed by lowercase status name
func (c *QueueCollector) GetStatusCounts(ctx context.Context) (map[string]int64, error) {
	statusCounts := map[string]int64{
		event.Pending.String():   0,
		event.Delivered.String(): 0,
		event.Failed.String():    0,
	}

	counts, err := c.events.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting events: %w", err)
	}
	for status, n := range counts {
		statusCounts[status.String()] = n
	}

	return statusCounts, nil
}

// GetActiveDispatchers returns the heartbeats that have not expired
func (c *QueueCollector) GetActiveDispatchers(ctx context.Context) ([]dispatch.Heartbeat, error) {
	if c.heartbeats == nil {
		return []dispatch.Heartbeat{}, nil
	}

	active, err := c.heartbeats.Active(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading heartbeats: %w", err)
	}
	return active, nil
}
