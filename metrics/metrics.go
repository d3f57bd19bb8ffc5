package metrics

import (
	"context"
	"time"

	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/dispatch"
)

// Metrics represents the current state of the delivery engine.
type Metrics struct {
	// StatusCounts maps status name to count of outbound events in that status
	StatusCounts map[string]int64 `json:"status_counts"`

	// Dispatchers lists the instances that reported a heartbeat recently
	Dispatchers []dispatch.Heartbeat `json:"dispatchers"`

	// Timestamp when metrics were collected
	Timestamp time.Time `json:"timestamp"`
}

// Collector defines the interface for collecting metrics from the delivery engine.
type Collector interface {
	// Collect gathers current metrics from the system
	Collect(ctx context.Context) (Metrics, error)

	// GetStatusCounts returns the count of outbound events by status
	GetStatusCounts(ctx context.Context) (map[string]int64, error)

	// GetActiveDispatchers returns the live dispatcher instances
	GetActiveDispatchers(ctx context.Context) ([]dispatch.Heartbeat, error)
}
