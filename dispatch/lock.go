package dispatch

import (
	"context"
	"errors"
	"sync"
)

var ErrPassInProgress = errors.New("dispatch pass already in progress")

/* Locker guards DispatchPending so overlapping passes never run concurrently
 * TryLock returns ErrPassInProgress when another pass holds the lock
 */
type Locker interface {
	TryLock(ctx context.Context) (unlock func(), err error)
}

// LocalLocker is a single-process Locker
type LocalLocker struct {
	mu sync.Mutex
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{}
}

func (l *LocalLocker) TryLock(ctx context.Context) (func(), error) {
	if !l.mu.TryLock() {
		return nil, ErrPassInProgress
	}
	return l.mu.Unlock, nil
}
