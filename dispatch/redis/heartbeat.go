package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/dispatch"
)

const heartbeatPrefix = "dispatcher:heartbeat"

// HeartbeatStore keeps one expiring key per dispatcher instance
type HeartbeatStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewHeartbeatStore creates a store; an instance is considered gone after ttl without a beat
func NewHeartbeatStore(client *redis.Client, ttl time.Duration) *HeartbeatStore {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &HeartbeatStore{client: client, ttl: ttl}
}

// Beat stores or updates an instance's heartbeat
func (s *HeartbeatStore) Beat(ctx context.Context, hb dispatch.Heartbeat) error {
	key := fmt.Sprintf("%s:%s", heartbeatPrefix, hb.InstanceID)

	data, err := json.Marshal(hb)
	if err != nil {
		return fmt.Errorf("marshaling heartbeat: %w", err)
	}

	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("setting heartbeat: %w", err)
	}

	return nil
}

// Active returns the heartbeats of every live instance
func (s *HeartbeatStore) Active(ctx context.Context) ([]dispatch.Heartbeat, error) {
	pattern := heartbeatPrefix + ":*"
	heartbeats := []dispatch.Heartbeat{}

	var cursor uint64
	for {
		keys, nextCursor, err := s.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("scanning heartbeat keys: %w", err)
		}

		for _, key := range keys {
			data, err := s.client.Get(ctx, key).Result()
			if err == redis.Nil {
				// Key expired between scan and get
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("getting heartbeat: %w", err)
			}

			var hb dispatch.Heartbeat
			if err := json.Unmarshal([]byte(data), &hb); err != nil {
				continue
			}
			heartbeats = append(heartbeats, hb)
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	return heartbeats, nil
}
