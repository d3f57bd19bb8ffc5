package signature

import (
	"bytes"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	// HeaderName carries the hex encoded HMAC of the request body
	HeaderName = "x-signature"
	// MinSecretBytes is the minimum generated secret size (192 bits)
	MinSecretBytes = 24
	// MaxSecretBytes is the maximum generated secret size (512 bits)
	MaxSecretBytes = 64
	// DefaultSecretBytes is used when a subscription is created without a secret
	DefaultSecretBytes = 32
)

var ErrInvalidSignature = errors.New("invalid signature")

// GenerateSecret creates a random shared secret, hex encoded
func GenerateSecret(size int) (string, error) {
	if size < MinSecretBytes || size > MaxSecretBytes {
		return "", fmt.Errorf("secret size must be between %d and %d bytes", MinSecretBytes, MaxSecretBytes)
	}

	raw := make([]byte, size)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generating random bytes: %w", err)
	}

	return hex.EncodeToString(raw), nil
}

/* Sign computes HMAC-SHA256 over the exact body bytes keyed by the shared secret.
 * The result is always lowercase hex; receivers must hash the raw body they got,
 * never a re-serialized copy.
 */
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks a hex signature (either case) in constant time
func Verify(secret string, body []byte, provided string) (bool, error) {
	if provided == "" {
		return false, fmt.Errorf("signature is empty")
	}

	decoded, err := hex.DecodeString(strings.TrimSpace(provided))
	if err != nil {
		return false, fmt.Errorf("decoding signature: %w", err)
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)

	return hmac.Equal(mac.Sum(nil), decoded), nil
}

// VerifyAny verifies against several secrets, used while a secret is being rotated
func VerifyAny(secrets []string, body []byte, provided string) (bool, error) {
	if len(secrets) == 0 {
		return false, fmt.Errorf("must provide at least one secret")
	}

	for _, secret := range secrets {
		valid, err := Verify(secret, body, provided)
		if err != nil {
			return false, err
		}
		if valid {
			return true, nil
		}
	}

	return false, nil
}

/* VerifyRequest is the receiving side of a delivery: it reads the body,
 * checks the x-signature header and returns the body for decoding.
 * The request body is replaced so handlers can read it again.
 */
func VerifyRequest(r *http.Request, secret string) ([]byte, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	valid, err := Verify(secret, body, r.Header.Get(HeaderName))
	if err != nil {
		return nil, fmt.Errorf("verifying signature: %w", err)
	}
	if !valid {
		return nil, ErrInvalidSignature
	}

	return body, nil
}
