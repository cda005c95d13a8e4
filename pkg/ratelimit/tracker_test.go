package ratelimit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/paykit/pkg/ratelimit"
)

func TestTrackerRecord(t *testing.T) {
	t.Parallel()

	t.Run("counts down from the configured limit", func(t *testing.T) {
		t.Parallel()
		tracker := ratelimit.NewTracker(3)

		res := tracker.Record()
		assert.True(t, res.Allowed)
		assert.Equal(t, 3, res.Limit)
		assert.Equal(t, 2, res.Remaining)
		assert.False(t, res.ResetAt.IsZero())

		tracker.Record()
		res = tracker.Record()
		assert.True(t, res.Allowed, "the last in-budget request is still allowed")
		assert.Equal(t, 0, res.Remaining)
	})

	t.Run("over budget reports not allowed but still counts", func(t *testing.T) {
		t.Parallel()
		tracker := ratelimit.NewTracker(1)

		tracker.Record()
		res := tracker.Record()
		assert.False(t, res.Allowed)
		assert.Equal(t, 0, res.Remaining)
		assert.Greater(t, res.RetryAfter(), time.Duration(0))
	})

	t.Run("non-positive limit falls back to default", func(t *testing.T) {
		t.Parallel()
		tracker := ratelimit.NewTracker(0)
		res := tracker.Record()
		assert.Equal(t, ratelimit.DefaultLimit, res.Limit)
		assert.Equal(t, ratelimit.DefaultLimit-1, res.Remaining)
	})
}

func TestTrackerStatus(t *testing.T) {
	t.Parallel()

	tracker := ratelimit.NewTracker(2)

	res := tracker.Status()
	assert.True(t, res.Allowed)
	assert.Equal(t, 2, res.Remaining)

	// Status must not consume budget.
	res = tracker.Status()
	assert.Equal(t, 2, res.Remaining)

	tracker.Record()
	tracker.Record()
	res = tracker.Status()
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)

	assert.Equal(t, time.Duration(0), ratelimit.Result{Allowed: true}.RetryAfter())
}

func TestTrackerReset(t *testing.T) {
	t.Parallel()

	tracker := ratelimit.NewTracker(2)
	tracker.Record()
	tracker.Record()
	require.False(t, tracker.Status().Allowed)

	tracker.Reset()
	res := tracker.Status()
	assert.True(t, res.Allowed)
	assert.Equal(t, 2, res.Remaining)
}

func TestTrackerConcurrentRecording(t *testing.T) {
	t.Parallel()

	const (
		workers = 8
		each    = 250
	)
	tracker := ratelimit.NewTracker(workers * each)

	var g errgroup.Group
	for range workers {
		g.Go(func() error {
			for range each {
				tracker.Record()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	// Every recorded request must be counted exactly once; lost updates
	// would leave remaining above zero.
	res := tracker.Status()
	assert.Equal(t, 0, res.Remaining)
	assert.False(t, res.Allowed)
}
