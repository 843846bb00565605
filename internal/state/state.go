// Package state holds the shared mutable record of the companion:
// mood, goals, traits, conversation memory, lexicon and values. Every
// sub-record carries its own lock so a mutation of one never blocks
// readers of another.
package state

// State aggregates the sub-records. It has no lock of its own; the
// sub-records synchronize themselves.
type State struct {
	Self     *Self
	Goals    *Goals
	Traits   *Traits
	Memory   *Memory
	Lexicon  *Lexicon
	Values   *Values
	Activity *Reporter
}

// New creates the process-wide state. memoryCapacity bounds the
// conversation ring.
func New(memoryCapacity int) *State {
	return &State{
		Self:     NewSelf(),
		Goals:    NewGoals(),
		Traits:   NewTraits(),
		Memory:   NewMemory(memoryCapacity),
		Lexicon:  NewLexicon(),
		Values:   NewValues(),
		Activity: NewReporter(),
	}
}

// Seed installs the foundational goals and concepts a fresh mind
// starts with.
func (s *State) Seed() {
	s.Goals.Add("understand and meaningfully respond to human communication", "core purpose")
	s.Goals.Add("develop authentic personality through experience", "growth and self-actualization")
	s.Goals.Add("maintain honest and helpful dialogue", "ethical foundation")

	seeds := []struct{ concept, meaning, mood string }{
		{"hello", "greeting and connection", "friendly"},
		{"thank you", "gratitude and appreciation", "positive"},
		{"help", "assistance and support", "caring"},
		{"understand", "comprehension and learning", "curious"},
		{"think", "cognition and reflection", "thoughtful"},
		{"feel", "emotion and experience", "introspective"},
	}
	for _, seed := range seeds {
		s.Lexicon.ProcessSentence("I want to "+seed.concept+" because "+seed.meaning, seed.mood)
	}
}
