package subscription

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

var (
	ErrNotFound       = errors.New("subscription not found")
	ErrTenantRequired = errors.New("tenant id is required")
	ErrInvalidURL     = errors.New("invalid target url")
)

/* Subscription is a tenant-registered webhook endpoint for one event type
 * Deactivation is a soft flag, the record is kept
 */
type Subscription struct {
	ID        string
	TenantID  string
	EventType string
	TargetURL string
	Secret    string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateURL accepts absolute http and https URLs only
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: must use http or https: %q", ErrInvalidURL, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: must be absolute: %q", ErrInvalidURL, raw)
	}
	return nil
}
