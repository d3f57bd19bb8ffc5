package dispatch

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryHeartbeats is a single-process HeartbeatStore
type MemoryHeartbeats struct {
	mu    sync.Mutex
	ttl   time.Duration
	beats map[string]Heartbeat
}

func NewMemoryHeartbeats(ttl time.Duration) *MemoryHeartbeats {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &MemoryHeartbeats{ttl: ttl, beats: map[string]Heartbeat{}}
}

func (m *MemoryHeartbeats) Beat(ctx context.Context, hb Heartbeat) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.beats[hb.InstanceID] = hb
	return nil
}

func (m *MemoryHeartbeats) Active(ctx context.Context) ([]Heartbeat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-m.ttl)
	out := []Heartbeat{}
	for _, hb := range m.beats {
		if hb.LastHeartbeat.After(cutoff) {
			out = append(out, hb)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InstanceID < out[j].InstanceID })
	return out, nil
}
