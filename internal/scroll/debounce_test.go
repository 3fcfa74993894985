package scroll

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDebouncerCoalesces(t *testing.T) {
	t.Parallel()

	d := NewDebouncer(20 * time.Millisecond)
	var calls atomic.Int32

	for i := 0; i < 10; i++ {
		d.Trigger(func() { calls.Add(1) })
	}
	require.True(t, d.Pending())

	require.Eventually(t, func() bool {
		return calls.Load() == 1
	}, time.Second, 5*time.Millisecond)

	// Quiet period elapsed with no new triggers: still exactly one call.
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, int32(1), calls.Load())
	require.False(t, d.Pending())
}

func TestDebouncerRearms(t *testing.T) {
	t.Parallel()

	d := NewDebouncer(10 * time.Millisecond)
	var calls atomic.Int32

	d.Trigger(func() { calls.Add(1) })
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 2*time.Millisecond)

	d.Trigger(func() { calls.Add(1) })
	require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 2*time.Millisecond)
}

func TestDebouncerStop(t *testing.T) {
	t.Parallel()

	d := NewDebouncer(10 * time.Millisecond)
	var calls atomic.Int32

	d.Trigger(func() { calls.Add(1) })
	d.Stop()
	require.False(t, d.Pending())

	time.Sleep(30 * time.Millisecond)
	require.Equal(t, int32(0), calls.Load())
}

func TestDebouncerDefaultDelay(t *testing.T) {
	t.Parallel()

	d := NewDebouncer(0)
	require.Equal(t, DefaultResizeDelay, d.delay)
}
