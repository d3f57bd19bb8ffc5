package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/document"
)

// ErrInvalidEventType is wrapped by every event type validation failure
var ErrInvalidEventType = errors.New("invalid event type")

// eventTypePattern validates event types: hierarchical, full-stop delimited, [a-zA-Z0-9_.]
var eventTypePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+(\.[a-zA-Z0-9_]+)*$`)

// Envelope is the JSON body every subscriber receives
type Envelope struct {
	// EventType is a full-stop delimited type, e.g. "loan.status_changed"
	EventType string `json:"eventType"`
	// Payload is the event document; for rule triggered events it holds
	// ruleId, trigger, context and action
	Payload document.Document `json:"payload"`
}

// Validate validates the envelope structure
func (e Envelope) Validate() error {
	if err := ValidateEventType(e.EventType); err != nil {
		return err
	}
	return nil
}

// New creates an envelope for the given event type and payload
func New(eventType string, p document.Document) (Envelope, error) {
	if p == nil {
		p = document.Document{}
	}

	env := Envelope{
		EventType: eventType,
		Payload:   p,
	}

	if err := env.Validate(); err != nil {
		return Envelope{}, fmt.Errorf("validating envelope: %w", err)
	}

	return env, nil
}

// Parse parses a delivered body back into an Envelope
func Parse(data []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("unmarshaling envelope: %w", err)
	}

	if err := env.Validate(); err != nil {
		return Envelope{}, fmt.Errorf("validating envelope: %w", err)
	}

	return env, nil
}

/* Bytes returns the minified JSON encoding of the envelope.
 * These exact bytes are what gets signed and sent, so callers must
 * serialize once and reuse the slice for every subscriber.
 */
func (e Envelope) Bytes() ([]byte, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshaling envelope: %w", err)
	}
	return b, nil
}

// ValidateEventType validates an event type format
func ValidateEventType(eventType string) error {
	if eventType == "" {
		return fmt.Errorf("%w: event type cannot be empty", ErrInvalidEventType)
	}

	if !eventTypePattern.MatchString(eventType) {
		return fmt.Errorf("%w: event type must be hierarchical and contain only [a-zA-Z0-9_.]: %s", ErrInvalidEventType, eventType)
	}

	return nil
}
