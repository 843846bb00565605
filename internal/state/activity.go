package state

import "sync"

// Reporter is a single-slot status register: workers set what the mind
// is doing right now, pollers read it. Neither side ever blocks on the
// other beyond the mutex itself.
type Reporter struct {
	mu      sync.RWMutex
	current string
}

func NewReporter() *Reporter {
	return &Reporter{current: "Idle"}
}

// Set overwrites the current activity.
func (r *Reporter) Set(activity string) {
	r.mu.Lock()
	r.current = activity
	r.mu.Unlock()
}

// Current returns the last reported activity.
func (r *Reporter) Current() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}
