package knowledge

import (
	"math"
	"sort"
	"sync"
	"time"
)

// Topics tracks what the mind is curious about and how rewarding each
// topic has been to explore.
type Topics struct {
	mu        sync.RWMutex
	topics    map[string]*CuriosityTopic
	decay     bool
	decayHalf time.Duration
}

// NewTopics creates the curiosity registry. When decay is enabled,
// interest levels halve every decayHalf of inactivity.
func NewTopics(decay bool, decayHalf time.Duration) *Topics {
	if decayHalf <= 0 {
		decayHalf = 7 * 24 * time.Hour
	}
	return &Topics{
		topics:    make(map[string]*CuriosityTopic),
		decay:     decay,
		decayHalf: decayHalf,
	}
}

// Touch registers a topic if it is new, starting at a neutral
// interest level.
func (t *Topics) Touch(name string) {
	if name == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.topics[name]; !ok {
		t.topics[name] = &CuriosityTopic{Name: name, InterestLevel: 0.5}
	}
}

// RecordExploration updates a topic after an exploration cycle. Each
// retained fragment nudges interest up; finding nothing nudges it
// down slightly.
func (t *Topics) RecordExploration(name string, fragments int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	ct, ok := t.topics[name]
	if !ok {
		ct = &CuriosityTopic{Name: name, InterestLevel: 0.5}
		t.topics[name] = ct
	}
	ct.LastExplored = time.Now()
	ct.ExplorationCount++
	ct.FragmentCount += fragments
	if fragments > 0 {
		ct.InterestLevel = math.Min(1.0, ct.InterestLevel+0.1*float64(fragments))
	} else {
		ct.InterestLevel = math.Max(0.0, ct.InterestLevel-0.05)
	}
}

// Stale returns topics not explored within the given window, most
// interesting first.
func (t *Topics) Stale(window time.Duration, limit int) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	cutoff := time.Now().Add(-window)
	var stale []*CuriosityTopic
	for _, ct := range t.topics {
		if ct.LastExplored.Before(cutoff) {
			stale = append(stale, ct)
		}
	}
	sort.Slice(stale, func(i, j int) bool {
		if stale[i].InterestLevel != stale[j].InterestLevel {
			return stale[i].InterestLevel > stale[j].InterestLevel
		}
		return stale[i].Name < stale[j].Name
	})
	if limit > 0 && len(stale) > limit {
		stale = stale[:limit]
	}
	out := make([]string, len(stale))
	for i, ct := range stale {
		out[i] = ct.Name
	}
	return out
}

// Snapshot returns a copy of every tracked topic. When the decay knob
// is on, reported interest fades with inactivity; the stored level is
// left untouched so a fresh exploration restores it.
func (t *Topics) Snapshot() []CuriosityTopic {
	t.mu.RLock()
	defer t.mu.RUnlock()
	now := time.Now()
	out := make([]CuriosityTopic, 0, len(t.topics))
	for _, ct := range t.topics {
		cp := *ct
		if t.decay && !cp.LastExplored.IsZero() {
			if idle := now.Sub(cp.LastExplored); idle > 0 {
				cp.InterestLevel *= math.Pow(0.5, idle.Hours()/t.decayHalf.Hours())
			}
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].InterestLevel != out[j].InterestLevel {
			return out[i].InterestLevel > out[j].InterestLevel
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Len reports the number of tracked topics.
func (t *Topics) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.topics)
}
