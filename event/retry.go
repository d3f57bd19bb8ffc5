package event

import (
	"math"
	"time"
)

const DefaultMaxRetries = 3

/* RetryPolicy decides when a failing event becomes terminal.
 * It is injected into the Queue, one policy for every event it manages.
 * A zero InitialBackoff retries on the very next dispatch pass.
 */
type RetryPolicy struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// DefaultRetryPolicy gives up after three failed attempts with no backoff
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: DefaultMaxRetries,
	}
}

// Exhausted reports whether retryCount reached the threshold
func (p RetryPolicy) Exhausted(retryCount int) bool {
	return retryCount >= p.MaxRetries
}

// NextDelay returns the backoff before the attempt following retryCount failures
func (p RetryPolicy) NextDelay(retryCount int) time.Duration {
	if p.InitialBackoff <= 0 {
		return 0
	}
	if retryCount < 1 {
		retryCount = 1
	}

	next := time.Duration(float64(p.InitialBackoff) * math.Pow(2, float64(retryCount-1)))
	if p.MaxBackoff > 0 && (next <= 0 || next > p.MaxBackoff) {
		return p.MaxBackoff
	}
	return next
}
