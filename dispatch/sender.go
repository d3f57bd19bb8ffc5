package dispatch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/signature"
)

// DefaultDeliveryTimeout bounds a single webhook POST
const DefaultDeliveryTimeout = 5 * time.Second

// Delivery is one signed POST of an event body to a subscriber
type Delivery struct {
	EventID   string
	EventType string
	URL       string
	Secret    string
	Body      []byte
}

// Sender performs the HTTP call; a non-nil error means the request never produced a response
type Sender interface {
	Send(ctx context.Context, d Delivery) (int, error)
}

// HTTPSender posts deliveries with an HMAC signature header
type HTTPSender struct {
	Client *http.Client
}

func NewHTTPSender(timeout time.Duration) *HTTPSender {
	if timeout <= 0 {
		timeout = DefaultDeliveryTimeout
	}
	return &HTTPSender{
		Client: &http.Client{Timeout: timeout},
	}
}

// Send returns the response status code, whatever it is
func (s *HTTPSender) Send(ctx context.Context, d Delivery) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.URL, bytes.NewReader(d.Body))
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("content-type", "application/json")
	req.Header.Set(signature.HeaderName, signature.Sign(d.Secret, d.Body))
	req.Header.Set("x-event-id", d.EventID)
	req.Header.Set("x-event-type", d.EventType)

	resp, err := s.Client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	return resp.StatusCode, nil
}
