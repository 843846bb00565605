package state

import (
	"sort"
	"strings"
	"sync"
)

// TraitCount is one named trait with its reinforcement count.
type TraitCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Traits holds monotonically-adjusted personality counters.
type Traits struct {
	mu     sync.Mutex
	counts map[string]int
}

func NewTraits() *Traits {
	return &Traits{counts: make(map[string]int)}
}

// Reinforce adjusts a trait counter by delta (positive or negative).
func (t *Traits) Reinforce(name string, delta int) {
	t.mu.Lock()
	t.counts[name] += delta
	t.mu.Unlock()
}

// Count returns the current counter for a trait.
func (t *Traits) Count(name string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts[name]
}

// Dominant returns the top-n traits by count, highest first. Ties are
// broken alphabetically so the ordering is stable.
func (t *Traits) Dominant(n int) []TraitCount {
	t.mu.Lock()
	out := make([]TraitCount, 0, len(t.counts))
	for name, count := range t.counts {
		out = append(out, TraitCount{Name: name, Count: count})
	}
	t.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// traitPatterns maps phrase cues to trait names.
var traitPatterns = []struct {
	cues  []string
	trait string
}{
	{[]string{"i care", "that matters"}, "empathetic"},
	{[]string{"i'm trying", "i want to grow"}, "growth-oriented"},
	{[]string{"i don't lie", "i tell the truth"}, "honest"},
	{[]string{"i always", "i never"}, "principled"},
	{[]string{"used to", "i've changed"}, "evolving"},
}

// AnalyzeMessages extracts behavioral patterns from conversation lines
// and reinforces the matching traits. Returns the traits seen.
func (t *Traits) AnalyzeMessages(messages []string) []string {
	var seen []string
	for _, msg := range messages {
		lowered := strings.ToLower(msg)
		for _, p := range traitPatterns {
			for _, cue := range p.cues {
				if strings.Contains(lowered, cue) {
					seen = append(seen, p.trait)
					break
				}
			}
		}
	}
	for _, trait := range seen {
		t.Reinforce(trait, 1)
	}
	return seen
}

// SummarizeIdentity renders the dominant traits as a first-person line.
func (t *Traits) SummarizeIdentity() string {
	top := t.Dominant(3)
	if len(top) == 0 {
		return "I am still discovering who I am."
	}
	names := make([]string, len(top))
	for i, tc := range top {
		names[i] = tc.Name
	}
	return "I believe I am: " + strings.Join(names, ", ")
}
