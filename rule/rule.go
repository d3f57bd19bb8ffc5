package rule

import (
	"errors"
	"time"

	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/document"
)

// DefaultEventType is used when a rule's action does not declare one
const DefaultEventType = "workflow.triggered"

var (
	ErrNotFound       = errors.New("rule not found")
	ErrTenantRequired = errors.New("tenant id is required")
	ErrInvalidTrigger = errors.New("invalid trigger type")
)

// TriggerType names the kind of domain occurrence a rule reacts to
type TriggerType string

const (
	StatusChange  TriggerType = "STATUS_CHANGE"
	EntityCreated TriggerType = "ENTITY_CREATED"
)

func (t TriggerType) String() string {
	return string(t)
}

/* Rule maps a trigger type and condition to an action template
 * Condition and Action are opaque documents defined by rule authors
 * Rules are soft-disabled through Active, never deleted
 */
type Rule struct {
	ID          string
	TenantID    string
	TriggerType TriggerType
	Condition   document.Document
	Action      document.Document
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EventType returns the event type declared by the action, or DefaultEventType
func (r Rule) EventType() string {
	if eventType, ok := r.Action.String("eventType"); ok && eventType != "" {
		return eventType
	}
	return DefaultEventType
}

// EnqueueRequest is what a matched rule asks the event queue to store
type EnqueueRequest struct {
	TenantID  string
	EventType string
	Payload   document.Document
}

// Request builds the enqueue request for a match against ctx
func (r Rule) Request(ctx document.Document) EnqueueRequest {
	if ctx == nil {
		ctx = document.Document{}
	}
	action := r.Action.Clone()
	if action == nil {
		action = document.Document{}
	}

	return EnqueueRequest{
		TenantID:  r.TenantID,
		EventType: r.EventType(),
		Payload: document.Document{
			"ruleId":  r.ID,
			"trigger": r.TriggerType.String(),
			"context": ctx.Clone(),
			"action":  action,
		},
	}
}
