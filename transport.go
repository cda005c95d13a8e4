package paykit

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/paykit/pkg/apierror"
	"github.com/dmitrymomot/paykit/pkg/retry"
)

// maxResponseBytes caps how much of a response body is read into memory.
const maxResponseBytes = 10 << 20

// apiRequest describes one logical API call. It is built by a resource
// service, consumed by exactly one do invocation, and discarded.
type apiRequest struct {
	method string
	path   string
	query  url.Values
	body   any
}

// do runs the resilient request pipeline: serialize, dispatch with auth
// and default headers, classify failures, retry transient ones with
// backoff, and decode the final success payload into out.
//
// Timeouts apply per attempt. Cancellation is honored before every
// dispatch and during every backoff wait. Retryable failures never escape
// this method; the caller sees only the final outcome.
func (c *Client) do(ctx context.Context, req apiRequest, out any) error {
	var payload []byte
	if req.body != nil {
		encoded, err := c.codec.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("paykit: failed to encode request body: %w", err)
		}
		payload = encoded
	}

	endpoint := c.baseURL + req.path
	if len(req.query) > 0 {
		endpoint += "?" + req.query.Encode()
	}

	// One idempotency key per logical call, stable across retries, so the
	// server can deduplicate a mutation whose response was lost.
	var idempotencyKey string
	switch req.method {
	case http.MethodPost, http.MethodPatch, http.MethodPut:
		idempotencyKey = uuid.NewString()
	}

	attempts := c.maxRetries + 1
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if budget := c.tracker.Record(); !budget.Allowed {
			// Advisory only: log and proceed, relying on the server's 429
			// handling below if the budget estimate was right.
			c.logger.DebugContext(ctx, "client-side request budget exhausted",
				slog.Int("limit", budget.Limit),
				slog.Time("reset_at", budget.ResetAt),
			)
		}

		resp, body, err := c.send(ctx, req.method, endpoint, payload, idempotencyKey)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if attempt >= attempts {
				return fmt.Errorf("%w after %d attempts: %w", ErrNetwork, attempts, err)
			}
			delay := retry.Backoff(attempt, c.initialRetryDelay, c.maxRetryDelay, c.jitterFactor)
			c.logger.DebugContext(ctx, "retrying after transport error",
				slog.String("endpoint", req.path),
				slog.Any("error", err),
				slog.Duration("delay", delay),
				slog.Int("attempt", attempt),
			)
			if err := c.wait(ctx, delay); err != nil {
				return err
			}
			continue
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			if out == nil || len(body) == 0 {
				return nil
			}
			if err := c.codec.Unmarshal(body, out); err != nil {
				return fmt.Errorf("%w: %w", ErrDecode, err)
			}
			return nil
		}

		apiErr := apierror.Classify(resp.StatusCode, body)
		if !retry.Retryable(resp.StatusCode) || attempt >= attempts {
			return apiErr
		}

		var delay time.Duration
		var fromServer bool
		if c.respectRetryAfter {
			delay, fromServer = retry.RetryAfter(resp.Header.Get("Retry-After"), c.maxRetryDelay)
		}
		if !fromServer {
			delay = retry.Backoff(attempt, c.initialRetryDelay, c.maxRetryDelay, c.jitterFactor)
		}
		c.logger.DebugContext(ctx, "retrying request",
			slog.String("endpoint", req.path),
			slog.String("reason", retry.Reason(resp.StatusCode)),
			slog.Int("status", resp.StatusCode),
			slog.Bool("server_hint", fromServer),
			slog.Duration("delay", delay),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", attempts),
		)
		if err := c.wait(ctx, delay); err != nil {
			return err
		}
	}
}

// send performs a single HTTP attempt and drains the response body. The
// per-attempt timeout is layered on top of the caller's context.
func (c *Client) send(ctx context.Context, method, endpoint string, payload []byte, idempotencyKey string) (*http.Response, []byte, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(reqCtx, method, endpoint, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if idempotencyKey != "" {
		httpReq.Header.Set("Idempotency-Key", idempotencyKey)
	}
	for key, value := range c.headers {
		httpReq.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, nil, err
	}
	return resp, body, nil
}

// wait sleeps for the given delay unless the context is cancelled first.
// Only the waiting call suspends; concurrent calls are unaffected.
func (c *Client) wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}
