package mind

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestSchedulerStartIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)
	s := NewScheduler()

	var cycles atomic.Int32
	cycle := func(ctx context.Context) { cycles.Add(1) }

	require.True(t, s.Start("pulse", StaticInterval(10*time.Millisecond), cycle))
	require.False(t, s.Start("pulse", StaticInterval(time.Millisecond), cycle), "second start of the same name is ignored")
	assert.True(t, s.IsRunning("pulse"))

	time.Sleep(100 * time.Millisecond)
	s.StopAll()

	got := cycles.Load()
	assert.Greater(t, got, int32(0))
	assert.Less(t, got, int32(15), "only one instance may be cycling")
}

func TestSchedulerStopAllIsBounded(t *testing.T) {
	defer goleak.VerifyNone(t)
	s := NewScheduler()

	s.Start("slow", StaticInterval(time.Hour), func(ctx context.Context) {})
	s.Start("fast", StaticInterval(5*time.Millisecond), func(ctx context.Context) {})
	require.True(t, s.IsRunning("slow"))
	require.True(t, s.IsRunning("fast"))

	done := make(chan struct{})
	go func() {
		s.StopAll()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("StopAll did not return; workers must observe cancellation at sleep boundaries")
	}
	assert.False(t, s.IsRunning("slow"))
	assert.False(t, s.IsRunning("fast"))
}

func TestSchedulerIsolatesPanickingWorker(t *testing.T) {
	defer goleak.VerifyNone(t)
	s := NewScheduler()

	var panics, healthy atomic.Int32
	s.Start("broken", StaticInterval(5*time.Millisecond), func(ctx context.Context) {
		panics.Add(1)
		panic("cycle gone wrong")
	})
	s.Start("steady", StaticInterval(5*time.Millisecond), func(ctx context.Context) {
		healthy.Add(1)
	})

	time.Sleep(60 * time.Millisecond)
	s.StopAll()

	assert.Greater(t, panics.Load(), int32(1), "a panicking worker keeps cycling")
	assert.Greater(t, healthy.Load(), int32(1), "other workers are unaffected")
}

func TestSchedulerRecomputesIntervalEachCycle(t *testing.T) {
	defer goleak.VerifyNone(t)
	s := NewScheduler()

	var slow atomic.Bool
	interval := func() time.Duration {
		if slow.Load() {
			return time.Hour
		}
		return 5 * time.Millisecond
	}

	var cycles atomic.Int32
	s.Start("adaptive", interval, func(ctx context.Context) {
		if cycles.Add(1) >= 3 {
			slow.Store(true)
		}
	})

	time.Sleep(100 * time.Millisecond)
	got := cycles.Load()
	s.StopAll()

	assert.GreaterOrEqual(t, got, int32(3))
	assert.LessOrEqual(t, got, int32(4), "once the interval stretches, cycling stops")
}

func TestDreamIntervalHalvesWhenLow(t *testing.T) {
	cfg := testConfig(t)
	m := newTestMind(t, cfg, &fakeProvider{reply: "ok"})

	assert.Equal(t, cfg.DreamInterval, m.dreamInterval(), "a fresh mind dreams at the base cadence")

	m.State.Self.SetMood("sad")
	assert.Equal(t, cfg.DreamInterval/2, m.dreamInterval())

	m.State.Self.SetMood("curious")
	m.State.Self.AdjustEnergy(-90)
	assert.Equal(t, cfg.DreamInterval/2, m.dreamInterval(), "exhaustion halves the cadence too")
}
