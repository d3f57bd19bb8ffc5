package event

import (
	"time"

	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/document"
)

/* OutboundEvent is a queued notification awaiting webhook delivery
 * Uses value semantics as it represents data, not behavior
 */
type OutboundEvent struct {
	ID         string
	TenantID   string
	EventType  string
	Payload    document.Document
	Status     Status
	RetryCount int
	LastError  string
	// NextAttemptAt holds a retried event back until the backoff elapsed; zero means due
	NextAttemptAt time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Due reports whether a pending event may be attempted at now
func (e OutboundEvent) Due(now time.Time) bool {
	return e.Status == Pending && (e.NextAttemptAt.IsZero() || !e.NextAttemptAt.After(now))
}
