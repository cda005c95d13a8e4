package webhook

import (
	"encoding/json"
	"fmt"
	"time"
)

// Event is a parsed webhook delivery. It is read-only after parsing; Data
// stays opaque JSON until the caller decodes it into a concrete type.
type Event struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
}

// DataAs decodes the event payload into v, keeping the raw JSON untouched
// so the same event can be decoded into different shapes.
func (e *Event) DataAs(v any) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("%w: event has no data payload", ErrInvalidPayload)
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return nil
}

// ParseEvent decodes a webhook payload without verifying it. Use
// VerifyAndParse unless the payload was already authenticated upstream.
func ParseEvent(payload []byte) (*Event, error) {
	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if event.Type == "" {
		return nil, fmt.Errorf("%w: missing event type", ErrInvalidPayload)
	}
	return &event, nil
}

// VerifyAndParse authenticates payload against header and secret, then
// decodes it. Verification runs on the raw bytes before any JSON handling.
func VerifyAndParse(secret string, payload []byte, header string) (*Event, error) {
	if !Verify(secret, payload, header) {
		return nil, ErrInvalidSignature
	}
	return ParseEvent(payload)
}
