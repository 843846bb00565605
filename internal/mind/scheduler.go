package mind

import (
	"context"
	"log"
	"sync"
	"time"
)

// CycleFunc is one unit of background work. It must honor ctx and
// return promptly once ctx is done.
type CycleFunc func(ctx context.Context)

// IntervalFunc yields the delay before the next cycle. It is called at
// the top of every cycle, so intervals can depend on current state.
type IntervalFunc func() time.Duration

// StaticInterval wraps a fixed duration as an IntervalFunc.
func StaticInterval(d time.Duration) IntervalFunc {
	return func() time.Duration { return d }
}

// Scheduler runs named background workers, one goroutine each.
type Scheduler struct {
	mu      sync.Mutex
	workers map[string]*worker
}

type worker struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func NewScheduler() *Scheduler {
	return &Scheduler{workers: make(map[string]*worker)}
}

// Start launches a worker under the given name. Starting a name that
// is already running is a no-op; the return value reports whether a
// new worker was launched.
func (s *Scheduler) Start(name string, interval IntervalFunc, cycle CycleFunc) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.workers[name]; exists {
		log.Printf("[MIND] worker=%s already running, start ignored", name)
		return false
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &worker{cancel: cancel, done: make(chan struct{})}
	s.workers[name] = w

	go s.run(ctx, name, interval, cycle, w.done)
	log.Printf("[MIND] action=start worker=%s", name)
	return true
}

func (s *Scheduler) run(ctx context.Context, name string, interval IntervalFunc, cycle CycleFunc, done chan struct{}) {
	defer close(done)
	timer := time.NewTimer(interval())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		runCycle(ctx, name, cycle)

		if ctx.Err() != nil {
			return
		}
		timer.Reset(interval())
	}
}

// runCycle isolates one cycle: a panic or misbehavior in one worker
// never takes down the others.
func runCycle(ctx context.Context, name string, cycle CycleFunc) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERR] worker=%s cycle panic: %v", name, r)
		}
	}()
	cycle(ctx)
}

// IsRunning reports whether the named worker is active.
func (s *Scheduler) IsRunning(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.workers[name]
	return ok
}

// Names returns the names of all running workers.
func (s *Scheduler) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.workers))
	for name := range s.workers {
		out = append(out, name)
	}
	return out
}

// StopAll cancels every worker and waits for each to observe the
// cancellation at its next sleep boundary.
func (s *Scheduler) StopAll() {
	s.mu.Lock()
	stopped := make(map[string]*worker, len(s.workers))
	for name, w := range s.workers {
		w.cancel()
		stopped[name] = w
	}
	s.workers = make(map[string]*worker)
	s.mu.Unlock()

	for name, w := range stopped {
		<-w.done
		log.Printf("[MIND] action=stop worker=%s", name)
	}
}
