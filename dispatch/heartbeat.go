package dispatch

import (
	"context"
	"time"
)

// Heartbeat is what a dispatcher instance reports after each pass
type Heartbeat struct {
	InstanceID    string    `json:"instance_id"`
	Status        string    `json:"status"` // "idle", "dispatching"
	LastPass      Stats     `json:"last_pass"`
	LastHeartbeat time.Time `json:"last_heartbeat"`
}

// HeartbeatStore records dispatcher liveness, see dispatch/redis
type HeartbeatStore interface {
	Beat(ctx context.Context, hb Heartbeat) error
	Active(ctx context.Context) ([]Heartbeat, error)
}
