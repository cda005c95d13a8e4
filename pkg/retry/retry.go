package retry

import (
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Retryable reports whether a request that failed with the given HTTP
// status code may succeed on a later attempt. Everything outside this set,
// including all other 4xx codes, is a permanent failure.
func Retryable(status int) bool {
	switch status {
	case http.StatusRequestTimeout,
		http.StatusConflict,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// Reason returns a human-readable label for a retryable status code,
// suitable for log lines.
func Reason(status int) string {
	switch status {
	case http.StatusRequestTimeout:
		return "Request timeout"
	case http.StatusConflict:
		return "Conflict"
	case http.StatusTooManyRequests:
		return "Rate limit exceeded"
	case http.StatusInternalServerError:
		return "Internal server error"
	case http.StatusBadGateway:
		return "Bad gateway"
	case http.StatusServiceUnavailable:
		return "Service unavailable"
	case http.StatusGatewayTimeout:
		return "Gateway timeout"
	}
	return fmt.Sprintf("HTTP %d error", status)
}

// Backoff returns the delay before the given retry attempt. Attempt
// numbering starts at 1. The base grows as initial * 2^(attempt-1), capped
// at max, and a random jitter in [0, base*jitter) is added on top to spread
// retry storms across clients. The result never exceeds max * (1+jitter).
func Backoff(attempt int, initial, max time.Duration, jitter float64) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	if initial <= 0 {
		initial = time.Second
	}
	if max <= 0 {
		max = 30 * time.Second
	}
	jitter = math.Min(math.Max(jitter, 0), 1)

	base := float64(initial) * math.Pow(2, float64(attempt-1))
	if base > float64(max) {
		base = float64(max)
	}

	delay := base
	if jitter > 0 {
		delay += rand.Float64() * base * jitter
	}
	return time.Duration(delay)
}

// RetryAfter extracts a delay from a Retry-After header value, which may be
// either delta-seconds or an HTTP-date. Delta values are capped at max; an
// absolute timestamp already in the past, or a value that does not parse,
// yields no delay.
func RetryAfter(header string, max time.Duration) (time.Duration, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return 0, false
	}

	if secs, err := strconv.Atoi(header); err == nil {
		if secs < 0 {
			return 0, false
		}
		d := time.Duration(secs) * time.Second
		if d > max {
			d = max
		}
		return d, true
	}

	if at, err := http.ParseTime(header); err == nil {
		d := time.Until(at)
		if d <= 0 {
			return 0, false
		}
		if d > max {
			d = max
		}
		return d, true
	}

	return 0, false
}
