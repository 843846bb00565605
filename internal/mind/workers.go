package mind

import (
	"context"
	"log"
	"strings"
	"time"
)

// Worker names. Start is idempotent per name.
const (
	WorkerReflection = "reflection"
	WorkerDreaming   = "dreaming"
	WorkerValues     = "values-introspection"
	WorkerMemoryTag  = "memory-tagging"
	WorkerCuriosity  = "curiosity-consumer"
	WorkerBooks      = "book-reflection"
	WorkerSnapshot   = "lexicon-snapshot"
	WorkerInitiation = "spontaneous-initiation"
	WorkerExplore    = "exploration"
)

const boredomThreshold = 5 * time.Minute

// StartWorkers launches the full background set. Safe to call more
// than once; already-running workers are left alone.
func (m *Mind) StartWorkers() {
	cfg := m.cfg
	m.sched.Start(WorkerReflection, StaticInterval(cfg.ReflectionInterval), m.reflectCycle)
	m.sched.Start(WorkerDreaming, m.dreamInterval, m.dreamCycle)
	m.sched.Start(WorkerValues, StaticInterval(cfg.ValuesInterval), m.valuesCycle)
	m.sched.Start(WorkerMemoryTag, StaticInterval(cfg.MemoryTagInterval), m.tagMemoryCycle)
	m.sched.Start(WorkerCuriosity, StaticInterval(cfg.CuriosityPoll), m.consumeCuriosityCycle)
	m.sched.Start(WorkerBooks, StaticInterval(cfg.BookInterval), m.bookCycle)
	m.sched.Start(WorkerSnapshot, StaticInterval(cfg.SnapshotInterval), m.snapshotCycle)
	m.sched.Start(WorkerInitiation, StaticInterval(cfg.InitiationInterval), m.initiateCycle)
	m.sched.Start(WorkerExplore, StaticInterval(cfg.ExplorationInterval), m.exploreCycle)
	log.Printf("[INFO] background workers started: %d", len(m.sched.Names()))
}

// IsWorkerRunning exposes scheduler state for the status surface.
func (m *Mind) IsWorkerRunning(name string) bool {
	return m.sched.IsRunning(name)
}

// dreamInterval halves the dreaming cadence when the mind is sad,
// tired, or bored. Recomputed at the top of every cycle.
func (m *Mind) dreamInterval() time.Duration {
	base := m.cfg.DreamInterval
	self := m.State.Self.Snapshot()
	bored := false
	if last := m.State.Memory.LastActivity(); !last.IsZero() {
		bored = time.Since(last) > boredomThreshold
	}
	switch {
	case self.Mood == "sad", self.Mood == "tired", self.Energy < 20, bored:
		return base / 2
	default:
		return base
	}
}

// valuesCycle evaluates recent conversation against core values. Each
// entry is judged exactly once; a progress marker keeps idle cycles
// from re-penalizing the same statements.
func (m *Mind) valuesCycle(ctx context.Context) {
	m.mu.Lock()
	since := m.lastValuesEval
	m.mu.Unlock()

	violations := 0
	newest := since
	for _, e := range m.State.Memory.Recent(3) {
		if !e.At.After(since) {
			continue
		}
		if e.At.After(newest) {
			newest = e.At
		}
		if e.Speaker == selfName {
			continue
		}
		j := m.State.Values.Evaluate(e.Message)
		violations += len(j.Violated)
	}
	if newest.After(since) {
		m.mu.Lock()
		m.lastValuesEval = newest
		m.mu.Unlock()
	}
	if violations > 0 {
		m.State.Self.AdjustConfidence(-0.02 * float64(violations))
		m.State.Traits.Reinforce("self-reflective", 1)
		log.Printf("[MIND] action=values violations=%d", violations)
	}
}

// tagMemoryCycle retags the newest memory entry from its emotional
// content. Only the newest entry is ever retagged.
func (m *Mind) tagMemoryCycle(ctx context.Context) {
	entries := m.State.Memory.Recent(1)
	if len(entries) == 0 {
		return
	}
	tag := classifyEmotion(entries[0].Message)
	if tag != "" && tag != entries[0].Tag {
		if m.State.Memory.TagRecent(tag) {
			log.Printf("[MIND] action=tag_memory tag=%s", tag)
		}
	}
}

var emotionCues = []struct {
	tag   string
	words []string
}{
	{"joyful", []string{"happy", "great", "wonderful", "love", "excited", "glad"}},
	{"sad", []string{"sad", "lonely", "miss", "cry", "lost", "hurt"}},
	{"tense", []string{"angry", "hate", "annoyed", "frustrated", "wrong", "stupid"}},
	{"curious", []string{"why", "how", "wonder", "what if", "curious", "interesting"}},
}

func classifyEmotion(text string) string {
	lower := strings.ToLower(text)
	for _, cue := range emotionCues {
		for _, w := range cue.words {
			if strings.Contains(lower, w) {
				return cue.tag
			}
		}
	}
	return ""
}

// snapshotCycle persists the lexicon and curiosity topics.
func (m *Mind) snapshotCycle(ctx context.Context) {
	m.persistSnapshots()
}

// bookCycle reads a passage from the library, learns its vocabulary,
// and lets it shape traits and occasionally goals.
func (m *Mind) bookCycle(ctx context.Context) {
	passage, title, ok := m.Library.SamplePassage()
	if !ok {
		return
	}
	m.State.Activity.Set("Reading")
	defer m.State.Activity.Set("Idle")

	m.State.Lexicon.LearnFromText(passage, "book")
	m.State.Traits.Reinforce("well-read", 1)

	lower := strings.ToLower(passage)
	switch {
	case strings.Contains(lower, "courage") || strings.Contains(lower, "brave"):
		m.State.Traits.Reinforce("courageous", 1)
	case strings.Contains(lower, "truth") || strings.Contains(lower, "honest"):
		m.State.Traits.Reinforce("honest", 1)
	case strings.Contains(lower, "learn") || strings.Contains(lower, "understand"):
		m.State.Goals.UpdateProgress(passage)
	}
	log.Printf("[MIND] action=book_reflection title=%q chars=%d", title, len(passage))
}

// exploreCycle picks topics from recent conversation and long-ignored
// interests, then explores a couple of them.
func (m *Mind) exploreCycle(ctx context.Context) {
	var recent []string
	for _, e := range m.State.Memory.All() {
		recent = append(recent, e.Message)
	}
	topics := m.Explorer.IdentifyTopics(recent)
	if len(topics) == 0 {
		return
	}
	if len(topics) > 2 {
		topics = topics[:2]
	}

	m.State.Activity.Set("Exploring")
	defer m.State.Activity.Set("Idle")

	for _, topic := range topics {
		if ctx.Err() != nil {
			return
		}
		res := m.Explorer.Explore(ctx, topic)
		m.recordExploration(res)
		if len(res.Fragments) > 0 {
			m.State.Self.AdjustConfidence(0.01)
			m.State.Traits.Reinforce("curious", 1)
		}
	}
}
