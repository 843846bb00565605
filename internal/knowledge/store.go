package knowledge

import (
	"sort"
	"sync"
	"time"
)

// Store is a bounded, insertion-ordered ring of fragments. Oldest
// entries are evicted on overflow. Within the dedup window no two
// fragments may share (topic, source); later duplicates are discarded,
// never merged.
type Store struct {
	mu          sync.RWMutex
	fragments   []Fragment
	capacity    int
	dedupWindow time.Duration
}

// NewStore creates a store with the given capacity (500 default) and
// dedup recency window.
func NewStore(capacity int, dedupWindow time.Duration) *Store {
	if capacity <= 0 {
		capacity = 500
	}
	return &Store{capacity: capacity, dedupWindow: dedupWindow}
}

// Append adds a fragment, enforcing capacity and the dedup invariant.
// Returns false when the fragment was discarded as a duplicate.
func (s *Store) Append(f Fragment) bool {
	if f.At.IsZero() {
		f.At = time.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := f.At.Add(-s.dedupWindow)
	for i := len(s.fragments) - 1; i >= 0; i-- {
		old := s.fragments[i]
		if old.At.Before(cutoff) {
			break // older entries are outside the window
		}
		if old.Topic == f.Topic && old.Source == f.Source {
			return false
		}
	}

	s.fragments = append(s.fragments, f)
	if len(s.fragments) > s.capacity {
		s.fragments = s.fragments[len(s.fragments)-s.capacity:]
	}
	return true
}

// Len returns the number of stored fragments.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.fragments)
}

// Recent returns copies of up to n newest fragments, oldest first.
func (s *Store) Recent(n int) []Fragment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n <= 0 || n > len(s.fragments) {
		n = len(s.fragments)
	}
	out := make([]Fragment, n)
	copy(out, s.fragments[len(s.fragments)-n:])
	return out
}

// Scored pairs a fragment with its query score.
type Scored struct {
	Fragment Fragment
	Score    float64
}

// Search ranks stored fragments against the query by word overlap,
// concept overlap and stored relevance, returning up to topK results
// in non-increasing score order. Ties go to the most recent fragment.
// An empty result means "no knowledge", and callers must surface that
// explicitly rather than as silence.
func (s *Store) Search(query string, topK int) []Scored {
	queryWords := tokenSet(query)
	if len(queryWords) == 0 {
		return nil
	}
	if topK <= 0 {
		topK = 3
	}

	s.mu.RLock()
	var matches []Scored
	for _, f := range s.fragments {
		score := scoreFragment(queryWords, f)
		if score <= 0 {
			continue
		}
		matches = append(matches, Scored{Fragment: f, Score: score})
	}
	s.mu.RUnlock()

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Fragment.At.After(matches[j].Fragment.At)
	})
	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches
}

// scoreFragment computes word overlap + concept overlap + stored
// relevance for one fragment.
func scoreFragment(queryWords map[string]bool, f Fragment) float64 {
	text := tokenSet(f.Topic + " " + f.Content)
	var wordMatches float64
	for w := range queryWords {
		if text[w] {
			wordMatches++
		}
	}
	var conceptMatches float64
	for _, concept := range f.Concepts {
		for w := range queryWords {
			if containsWord(concept, w) {
				conceptMatches++
				break
			}
		}
	}
	if wordMatches == 0 && conceptMatches == 0 {
		return 0
	}
	return wordMatches + conceptMatches + f.Relevance
}
