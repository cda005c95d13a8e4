package ratelimit

import (
	"sync"
	"time"
)

// DefaultLimit is the requests-per-minute ceiling applied when none is
// configured.
const DefaultLimit = 600

// window is fixed at one minute; the API expresses its ceiling per minute.
const window = time.Minute

// Result is a point-in-time snapshot of the request budget.
type Result struct {
	// Allowed reports whether the observed request stayed within budget.
	Allowed bool

	// Limit is the configured requests-per-minute ceiling.
	Limit int

	// Remaining is the number of requests left in the current window.
	Remaining int

	// ResetAt is when the current window rolls over to a fresh budget.
	ResetAt time.Time
}

// RetryAfter returns how long to wait until the window resets. Zero when
// the budget still has room.
func (r Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return time.Until(r.ResetAt)
}

// Tracker counts requests issued within the current window. Safe for
// concurrent use; all bookkeeping happens under the mutex and no lock is
// held across anything that blocks.
type Tracker struct {
	mu      sync.Mutex
	limit   int
	used    int
	resetAt time.Time

	// now is swappable for tests.
	now func() time.Time
}

// NewTracker creates a tracker with the given requests-per-minute ceiling.
// Non-positive limits fall back to DefaultLimit.
func NewTracker(limit int) *Tracker {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Tracker{
		limit: limit,
		now:   time.Now,
	}
}

// Record counts one dispatched request and returns the resulting snapshot.
// It never blocks: a request over budget is still counted, with
// Allowed=false in the result.
func (t *Tracker) Record() Result {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.roll()
	t.used++
	return t.snapshot()
}

// Status returns the current snapshot without consuming budget.
func (t *Tracker) Status() Result {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.roll()
	res := t.snapshot()
	// Status is a read; Allowed reflects whether a request issued right
	// now would stay within budget.
	res.Allowed = t.used < t.limit
	return res
}

// Reset clears the current window, restoring the full budget.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.used = 0
	t.resetAt = t.now().Add(window)
}

// roll starts a fresh window when the previous one has expired. Callers
// must hold the mutex.
func (t *Tracker) roll() {
	now := t.now()
	if t.resetAt.IsZero() || !now.Before(t.resetAt) {
		t.used = 0
		t.resetAt = now.Add(window)
	}
}

func (t *Tracker) snapshot() Result {
	remaining := t.limit - t.used
	return Result{
		Allowed:   remaining >= 0,
		Limit:     t.limit,
		Remaining: max(0, remaining),
		ResetAt:   t.resetAt,
	}
}
