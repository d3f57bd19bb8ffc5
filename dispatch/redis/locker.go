package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/dispatch"
)

/* Locker is a dispatch.Locker shared by every replica using the same Redis
 * The key expires after ttl so a crashed holder cannot block dispatch forever
 */

const lockKey = "dispatch:lock"

// releaseScript deletes the key only if it still holds our token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type Locker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLocker creates a lock; ttl should exceed the longest expected pass
func NewLocker(client *redis.Client, ttl time.Duration) *Locker {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Locker{client: client, ttl: ttl}
}

func (l *Locker) TryLock(ctx context.Context) (func(), error) {
	token := uuid.New().String()

	ok, err := l.client.SetNX(ctx, lockKey, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquiring dispatch lock: %w", err)
	}
	if !ok {
		return nil, dispatch.ErrPassInProgress
	}

	unlock := func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		// the key expires on its own if this fails
		_ = releaseScript.Run(releaseCtx, l.client, []string{lockKey}, token).Err()
	}
	return unlock, nil
}
