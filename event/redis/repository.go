package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/document"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/event"
)

/* Redis implementation of event.Repository
 * Uses Redis Hashes for event storage and Sorted Sets scored by creation time
 * as the pending index and the per-tenant index.
 * CompareAndSwap runs under WATCH so a concurrent writer aborts the transaction.
 */

const (
	hashPrefix   = "outbound_event"          // Hash naming: outbound_event:{event_id}
	pendingKey   = "outbound_events:pending" // Sorted set of pending event ids
	tenantPrefix = "outbound_events:tenant"  // Sorted set naming: outbound_events:tenant:{tenant_id}
	countsKey    = "outbound_events:counts"  // Hash of status -> count
	scanChunk    = 100
)

var errEventExists = errors.New("event already exists")

type Repository struct {
	client    *redis.Client
	retention time.Duration
}

// NewRepository creates a new Redis repository
func NewRepository(addr, password string, db int) (*Repository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to Redis: %w", err)
	}

	return NewRepositoryFromClient(client), nil
}

// NewRepositoryFromClient wraps an existing client, shared with the dispatch lock
func NewRepositoryFromClient(client *redis.Client) *Repository {
	return &Repository{client: client}
}

/* WithRetention expires terminal events after ttl. Zero keeps them forever.
 * Status counts are cumulative and are not decremented on expiry.
 */
func (r *Repository) WithRetention(ttl time.Duration) *Repository {
	r.retention = ttl
	return r
}

// Insert stores a new event and indexes it; the existence check runs under WATCH
func (r *Repository) Insert(ctx context.Context, ev event.OutboundEvent) error {
	key := eventKey(ev.ID)

	fields, err := toHash(ev)
	if err != nil {
		return err
	}
	score := float64(ev.CreatedAt.UnixMicro())

	txf := func(tx *redis.Tx) error {
		exists, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return fmt.Errorf("checking event: %w", err)
		}
		if exists > 0 {
			return errEventExists
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, fields)
			if ev.Status == event.Pending {
				pipe.ZAdd(ctx, pendingKey, redis.Z{Score: score, Member: ev.ID})
			}
			pipe.ZAdd(ctx, tenantKey(ev.TenantID), redis.Z{Score: score, Member: ev.ID})
			pipe.HIncrBy(ctx, countsKey, ev.Status.String(), 1)
			return nil
		})
		return err
	}

	err = r.client.Watch(ctx, txf, key)
	if errors.Is(err, errEventExists) || errors.Is(err, redis.TxFailedErr) {
		// a concurrent insert of the same id won the transaction
		return fmt.Errorf("event %s already exists", ev.ID)
	}
	if err != nil {
		return fmt.Errorf("storing event: %w", err)
	}

	return nil
}

// Get retrieves an event by ID from its hash
func (r *Repository) Get(ctx context.Context, id string) (event.OutboundEvent, error) {
	data, err := r.client.HGetAll(ctx, eventKey(id)).Result()
	if err != nil {
		return event.OutboundEvent{}, fmt.Errorf("getting event: %w", err)
	}
	if len(data) == 0 {
		return event.OutboundEvent{}, event.ErrNotFound
	}

	return fromHash(data)
}

// ListPending walks the pending index oldest first, skipping events still in backoff
func (r *Repository) ListPending(ctx context.Context, now time.Time, limit int) ([]event.OutboundEvent, error) {
	out := []event.OutboundEvent{}

	for start := int64(0); len(out) < limit; start += scanChunk {
		ids, err := r.client.ZRange(ctx, pendingKey, start, start+scanChunk-1).Result()
		if err != nil {
			return nil, fmt.Errorf("reading pending index: %w", err)
		}
		if len(ids) == 0 {
			break
		}

		for _, id := range ids {
			ev, err := r.Get(ctx, id)
			if errors.Is(err, event.ErrNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			if !ev.Due(now) {
				continue
			}
			out = append(out, ev)
			if len(out) >= limit {
				break
			}
		}
	}

	return out, nil
}

// ListByTenant walks the tenant index newest first
func (r *Repository) ListByTenant(ctx context.Context, tenantID string, status event.Status, limit int) ([]event.OutboundEvent, error) {
	out := []event.OutboundEvent{}
	key := tenantKey(tenantID)

	for start := int64(0); len(out) < limit; start += scanChunk {
		ids, err := r.client.ZRevRange(ctx, key, start, start+scanChunk-1).Result()
		if err != nil {
			return nil, fmt.Errorf("reading tenant index: %w", err)
		}
		if len(ids) == 0 {
			break
		}

		for _, id := range ids {
			ev, err := r.Get(ctx, id)
			if errors.Is(err, event.ErrNotFound) {
				// expired by retention
				continue
			}
			if err != nil {
				return nil, err
			}
			if status != 0 && ev.Status != status {
				continue
			}
			out = append(out, ev)
			if len(out) >= limit {
				break
			}
		}
	}

	return out, nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[event.Status]int64, error) {
	data, err := r.client.HGetAll(ctx, countsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("reading status counts: %w", err)
	}

	counts := map[event.Status]int64{
		event.Pending:   0,
		event.Delivered: 0,
		event.Failed:    0,
	}
	for name, value := range data {
		status := event.NewStatus(name)
		if status == 0 {
			continue
		}
		counts[status] = parseInt64(value)
	}
	return counts, nil
}

// CompareAndSwap updates the hash only if status and retry count still match prev
func (r *Repository) CompareAndSwap(ctx context.Context, prev, next event.OutboundEvent) error {
	key := eventKey(prev.ID)

	txf := func(tx *redis.Tx) error {
		values, err := tx.HMGet(ctx, key, "status", "retry_count").Result()
		if err != nil {
			return fmt.Errorf("reading event: %w", err)
		}
		if values[0] == nil {
			return event.ErrNotFound
		}

		storedStatus := event.NewStatus(fmt.Sprint(values[0]))
		storedRetries := int(parseInt64(fmt.Sprint(values[1])))
		if storedStatus != prev.Status || storedRetries != prev.RetryCount {
			return event.ErrConflict
		}

		fields, err := toHash(next)
		if err != nil {
			return err
		}
		// identity and creation fields are immutable
		delete(fields, "id")
		delete(fields, "tenant_id")
		delete(fields, "created_at")

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, fields)
			if storedStatus != next.Status {
				pipe.HIncrBy(ctx, countsKey, storedStatus.String(), -1)
				pipe.HIncrBy(ctx, countsKey, next.Status.String(), 1)
			}
			if next.Status.IsFinal() {
				pipe.ZRem(ctx, pendingKey, prev.ID)
				if r.retention > 0 {
					pipe.Expire(ctx, key, r.retention)
				}
			}
			return nil
		})
		return err
	}

	err := r.client.Watch(ctx, txf, key)
	if errors.Is(err, redis.TxFailedErr) {
		return event.ErrConflict
	}
	if errors.Is(err, event.ErrNotFound) || errors.Is(err, event.ErrConflict) {
		return err
	}
	if err != nil {
		return fmt.Errorf("updating event: %w", err)
	}

	return nil
}

// Close closes the Redis connection
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Close()
}

// GetClient returns the underlying Redis client for advanced operations
func (r *Repository) GetClient() *redis.Client {
	return r.client
}

// Helper functions

func eventKey(id string) string {
	return fmt.Sprintf("%s:%s", hashPrefix, id)
}

func tenantKey(tenantID string) string {
	return fmt.Sprintf("%s:%s", tenantPrefix, tenantID)
}

func toHash(ev event.OutboundEvent) (map[string]interface{}, error) {
	payloadJSON, err := ev.Payload.Bytes()
	if err != nil {
		return nil, fmt.Errorf("marshaling payload: %w", err)
	}

	var nextAttempt int64
	if !ev.NextAttemptAt.IsZero() {
		nextAttempt = ev.NextAttemptAt.UnixMicro()
	}

	return map[string]interface{}{
		"id":              ev.ID,
		"tenant_id":       ev.TenantID,
		"event_type":      ev.EventType,
		"payload":         string(payloadJSON),
		"status":          ev.Status.String(),
		"retry_count":     ev.RetryCount,
		"last_error":      ev.LastError,
		"next_attempt_at": nextAttempt,
		"created_at":      ev.CreatedAt.UnixMicro(),
		"updated_at":      ev.UpdatedAt.UnixMicro(),
	}, nil
}

func fromHash(data map[string]string) (event.OutboundEvent, error) {
	p, err := document.Parse([]byte(data["payload"]))
	if err != nil {
		return event.OutboundEvent{}, fmt.Errorf("unmarshaling payload: %w", err)
	}

	ev := event.OutboundEvent{
		ID:         data["id"],
		TenantID:   data["tenant_id"],
		EventType:  data["event_type"],
		Payload:    p,
		Status:     event.NewStatus(data["status"]),
		RetryCount: int(parseInt64(data["retry_count"])),
		LastError:  data["last_error"],
		CreatedAt:  time.UnixMicro(parseInt64(data["created_at"])).UTC(),
		UpdatedAt:  time.UnixMicro(parseInt64(data["updated_at"])).UTC(),
	}
	if micros := parseInt64(data["next_attempt_at"]); micros > 0 {
		ev.NextAttemptAt = time.UnixMicro(micros).UTC()
	}

	return ev, nil
}

func parseInt64(s string) int64 {
	result, _ := strconv.ParseInt(s, 10, 64)
	return result
}
