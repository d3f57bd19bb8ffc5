package event

import (
	"fmt"
	"strings"
)

/* Status represents the delivery state of an outbound event
 * Follows the lifecycle: Pending -> Delivered | Pending (retry) | Failed
 * Delivered and Failed are terminal
 */
type Status int

const (
	Pending Status = iota + 1
	Delivered
	Failed
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Delivered:
		return "delivered"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// NewStatus creates a Status from a string, zero when unrecognized
func NewStatus(str string) Status {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "pending":
		return Pending
	case "delivered":
		return Delivered
	case "failed":
		return Failed
	default:
		return 0
	}
}

// Validate checks if the status is valid
func (s Status) Validate() error {
	if s < Pending || s > Failed {
		return fmt.Errorf("invalid status: %d", s)
	}
	return nil
}

// IsFinal returns true if the status is a terminal state
func (s Status) IsFinal() bool {
	return s == Delivered || s == Failed
}
