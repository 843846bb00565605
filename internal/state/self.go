package state

import (
	"math/rand"
	"strings"
	"sync"
)

// SelfSnapshot is a consistent copy of the self record.
type SelfSnapshot struct {
	Mood       string  `json:"mood"`
	Energy     int     `json:"energy"`
	Confidence float64 `json:"confidence"`
}

// Self holds mood, energy and confidence. Any worker or the foreground
// handler may write it; values are clamped on every mutation.
type Self struct {
	mu         sync.RWMutex
	mood       string
	energy     int     // 0..100
	confidence float64 // 0..1
}

func NewSelf() *Self {
	return &Self{
		mood:       "curious",
		energy:     100,
		confidence: 0.7,
	}
}

// Update derives a mood shift from the input text. Keyword heuristics
// only; anything smarter belongs behind a Scorer.
func (s *Self) Update(input string) {
	lowered := strings.ToLower(input)

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case strings.Contains(lowered, "thank you"):
		s.mood = "appreciative"
		s.confidence += 0.05
	case strings.Contains(lowered, "you're wrong") || strings.Contains(lowered, "no,"):
		s.mood = "defensive"
		s.confidence -= 0.1
	case strings.Contains(lowered, "hello") || strings.Contains(lowered, "hi "):
		s.mood = "friendly"
	default:
		moods := []string{"neutral", "curious", "thoughtful"}
		s.mood = moods[rand.Intn(len(moods))]
	}

	// Each interaction costs a little energy.
	s.energy--
	s.clampLocked()
}

// SetMood overwrites the mood directly (used by dream and value cycles).
func (s *Self) SetMood(mood string) {
	s.mu.Lock()
	s.mood = mood
	s.mu.Unlock()
}

// AdjustConfidence shifts confidence by delta, clamped to [0,1].
func (s *Self) AdjustConfidence(delta float64) {
	s.mu.Lock()
	s.confidence += delta
	s.clampLocked()
	s.mu.Unlock()
}

// AdjustEnergy shifts energy by delta, clamped to [0,100].
func (s *Self) AdjustEnergy(delta int) {
	s.mu.Lock()
	s.energy += delta
	s.clampLocked()
	s.mu.Unlock()
}

// Snapshot returns a consistent copy of all three fields.
func (s *Self) Snapshot() SelfSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SelfSnapshot{Mood: s.mood, Energy: s.energy, Confidence: s.confidence}
}

func (s *Self) clampLocked() {
	if s.energy < 0 {
		s.energy = 0
	}
	if s.energy > 100 {
		s.energy = 100
	}
	if s.confidence < 0 {
		s.confidence = 0
	}
	if s.confidence > 1 {
		s.confidence = 1
	}
}
