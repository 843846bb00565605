// Package mind is the cognitive core: the foreground input pipeline,
// the background worker scheduler, and the query surfaces that let the
// outside world peek at what the mind is doing.
package mind

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/keshon/echomind/internal/ai"
	"github.com/keshon/echomind/internal/books"
	"github.com/keshon/echomind/internal/config"
	"github.com/keshon/echomind/internal/journal"
	"github.com/keshon/echomind/internal/knowledge"
	"github.com/keshon/echomind/internal/state"
	"github.com/keshon/echomind/internal/storage"
)

const selfName = "echomind"

// Stats counts what the mind has done since start.
type Stats struct {
	Interactions int `json:"interactions"`
	Reflections  int `json:"reflections"`
	Dreams       int `json:"dreams"`
	Explorations int `json:"explorations"`
	Enrichments  int `json:"enrichments"`
	Initiations  int `json:"initiations"`
}

// Mind owns the shared state and everything that works on it.
type Mind struct {
	cfg      *config.Config
	provider ai.Provider

	State    *state.State
	Store    *knowledge.Store
	Topics   *knowledge.Topics
	Queue    *knowledge.Queue
	Explorer *knowledge.Explorer
	Library  *books.Library

	sched     *Scheduler
	snapshots *storage.Storage

	dreamJournal *journal.Journal
	voiceJournal *journal.Journal

	mu             sync.Mutex
	stats          Stats
	lastInsights   []string
	lastReport     string
	lastValuesEval time.Time
}

// New assembles the mind from config: state, knowledge machinery, book
// library, journals, and the snapshot store.
func New(cfg *config.Config, provider ai.Provider) (*Mind, error) {
	st := state.New(cfg.MemoryCapacity)
	st.Seed()

	store := knowledge.NewStore(cfg.KnowledgeCapacity, cfg.DedupWindow)
	topics := knowledge.NewTopics(cfg.InterestDecay, cfg.InterestDecayHalf)
	scorer := knowledge.DefaultInterestScorer()
	fetcher := knowledge.NewFeedFetcher(cfg.FetchTimeout)
	explorer := knowledge.NewExplorer(store, topics, fetcher, scorer)

	library, err := books.New(filepath.Join(cfg.DataRoot, "books"))
	if err != nil {
		return nil, err
	}

	snapshots, err := storage.New(context.Background(), cfg.StoragePath)
	if err != nil {
		return nil, err
	}

	m := &Mind{
		cfg:          cfg,
		provider:     provider,
		State:        st,
		Store:        store,
		Topics:       topics,
		Queue:        knowledge.NewQueue(),
		Explorer:     explorer,
		Library:      library,
		sched:        NewScheduler(),
		snapshots:    snapshots,
		dreamJournal: journal.New(filepath.Join(cfg.DataRoot, "journals"), "dreams"),
		voiceJournal: journal.New(filepath.Join(cfg.DataRoot, "journals"), "voice"),
	}
	m.restoreLexicon()
	return m, nil
}

// restoreLexicon folds a previous run's enriched words back in.
func (m *Mind) restoreLexicon() {
	records, err := m.snapshots.LoadLexicon()
	if err != nil {
		log.Printf("[ERR] lexicon restore: %v", err)
		return
	}
	for _, r := range records {
		if r.LLMContext != "" {
			m.State.Lexicon.Enrich(r.Word, r.LLMContext)
		}
	}
	if len(records) > 0 {
		log.Printf("[INFO] restored %d lexicon words", len(records))
	}
}

// ProcessInput runs one full foreground interaction: absorb the input
// into every state sub-record, build context, generate a reply, and
// learn from the reply as well.
func (m *Mind) ProcessInput(ctx context.Context, speaker, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("empty input")
	}
	m.State.Activity.Set("Thinking")
	defer m.State.Activity.Set("Idle")

	m.State.Memory.Add(speaker, input)
	m.State.Self.Update(input)
	mood := m.State.Self.Snapshot().Mood
	m.State.Lexicon.ProcessSentence(input, mood)
	m.State.Goals.UpdateProgress(input)

	judgment := m.State.Values.Evaluate(input)
	if len(judgment.Violated) > 0 {
		m.State.Self.AdjustConfidence(-0.05)
		m.State.Traits.Reinforce("self-reflective", 1)
	}
	// The input was judged here; the values worker picks up from this
	// point so no statement is judged twice.
	m.mu.Lock()
	m.lastValuesEval = time.Now()
	m.mu.Unlock()

	var recent []string
	for _, e := range m.State.Memory.Recent(m.cfg.MemoryCapacity) {
		recent = append(recent, e.Message)
	}
	m.State.Traits.AnalyzeMessages(recent)

	m.queueCuriosities(input)

	reply, err := m.provider.Generate(ctx, ai.Request{
		Prompt:    input,
		Context:   m.BuildContext(),
		MaxTokens: 400,
		Kind:      ai.KindDefault,
	})
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	if reply == "" {
		reply = "I'm here, but words fail me right now."
	}

	m.State.Memory.Add(selfName, reply)
	m.State.Lexicon.LearnFromText(reply, "self")

	m.mu.Lock()
	m.stats.Interactions++
	m.mu.Unlock()
	return reply, nil
}

// queueCuriosities pushes substantial words the lexicon has no deeper
// context for. Duplicates are fine; the consumer re-checks at pop time.
func (m *Mind) queueCuriosities(input string) {
	for _, w := range strings.Fields(strings.ToLower(input)) {
		w = strings.Trim(w, ".,!?;:\"'()")
		if len(w) < 5 {
			continue
		}
		if m.State.Lexicon.HasContext(w) {
			continue
		}
		m.Queue.Push(w)
	}
}

// BuildContext assembles the generation context: who the mind is right
// now, what it wants, what it believes, what was just said, and what
// it knows about the world.
func (m *Mind) BuildContext() string {
	self := m.State.Self.Snapshot()
	var b strings.Builder

	fmt.Fprintf(&b, "Current state: mood=%s energy=%d confidence=%.2f\n", self.Mood, self.Energy, self.Confidence)
	b.WriteString("Identity: " + m.State.Traits.SummarizeIdentity() + "\n")
	b.WriteString("Goals: " + m.State.Goals.Summary() + "\n")

	if beliefs := m.State.Values.Beliefs(); len(beliefs) > 0 {
		b.WriteString("Values: " + strings.Join(beliefs, "; ") + "\n")
	}

	if entries := m.State.Memory.Recent(5); len(entries) > 0 {
		b.WriteString("Recent conversation:\n")
		for _, e := range entries {
			fmt.Fprintf(&b, "  %s: %s\n", e.Speaker, e.Message)
		}
	}

	if top := m.State.Lexicon.TopWords(5); len(top) > 0 {
		b.WriteString("Words on my mind: " + strings.Join(top, ", ") + "\n")
	}

	if wc := m.GetWorldContext(); wc != "" {
		b.WriteString("World context:\n" + wc)
	}
	return b.String()
}

// CuriosityStatus is a snapshot of the exploration machinery.
type CuriosityStatus struct {
	ActiveTopics     int                        `json:"active_topics"`
	FragmentsStored  int                        `json:"fragments_stored"`
	ExplorationsRun  int                        `json:"explorations_run"`
	QueueLen         int                        `json:"queue_len"`
	BackgroundActive bool                       `json:"background_active"`
	LastUpdate       time.Time                  `json:"last_update"`
	Topics           []knowledge.CuriosityTopic `json:"topics"`
}

// GetCuriosityStatus reports what the mind is curious about. Snapshot
// read; never blocks workers.
func (m *Mind) GetCuriosityStatus() CuriosityStatus {
	topics := m.Topics.Snapshot()

	var lastUpdate time.Time
	for _, t := range topics {
		if t.LastExplored.After(lastUpdate) {
			lastUpdate = t.LastExplored
		}
	}

	m.mu.Lock()
	explorations := m.stats.Explorations
	m.mu.Unlock()

	return CuriosityStatus{
		ActiveTopics:     len(topics),
		FragmentsStored:  m.Store.Len(),
		ExplorationsRun:  explorations,
		QueueLen:         m.Queue.Len(),
		BackgroundActive: len(m.sched.Names()) > 0,
		LastUpdate:       lastUpdate,
		Topics:           topics,
	}
}

// SearchKnowledge renders a ranked answer from stored fragments. An
// empty result is an explicit "I don't know" sentence, not silence.
func (m *Mind) SearchKnowledge(query string) string {
	results := m.Store.Search(query, m.cfg.SearchTopK)
	if len(results) == 0 {
		return fmt.Sprintf("I don't know anything about %q yet, but now I'm curious.", query)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Here's what I know about %q:\n", query)
	for i, r := range results {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, r.Fragment.Topic, r.Fragment.Source)
		if r.Fragment.Content != "" {
			fmt.Fprintf(&b, "   %s\n", truncateText(r.Fragment.Content, 200))
		}
	}
	return b.String()
}

// GetWorldContext summarizes the freshest knowledge for prompt
// building.
func (m *Mind) GetWorldContext() string {
	fragments := m.Store.Recent(3)
	if len(fragments) == 0 {
		return ""
	}
	var b strings.Builder
	for _, f := range fragments {
		fmt.Fprintf(&b, "  [%s] %s\n", f.Source, truncateText(f.Topic, 100))
	}
	return b.String()
}

// GetInsights returns what the latest exploration concluded.
func (m *Mind) GetInsights() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.lastInsights))
	copy(out, m.lastInsights)
	return out
}

// Snapshot returns current stats and activity for the status surface.
func (m *Mind) Snapshot() (Stats, string) {
	m.mu.Lock()
	stats := m.stats
	m.mu.Unlock()
	return stats, m.State.Activity.Current()
}

// LastReport returns the most recent exploration's emotional response.
func (m *Mind) LastReport() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastReport
}

// Stop shuts down workers and flushes persistence.
func (m *Mind) Stop() {
	m.sched.StopAll()
	m.persistSnapshots()
	if err := m.snapshots.Close(); err != nil {
		log.Printf("[ERR] snapshot store close: %v", err)
	}
	m.dreamJournal.Close()
	m.voiceJournal.Close()
	log.Printf("[INFO] mind stopped")
}

func (m *Mind) recordExploration(res knowledge.ExplorationResult) {
	m.mu.Lock()
	m.stats.Explorations++
	if len(res.Insights) > 0 {
		m.lastInsights = res.Insights
	}
	m.lastReport = res.EmotionalResponse
	m.mu.Unlock()

	for _, f := range res.Fragments {
		if err := m.snapshots.AppendKnowledge(f.Topic, f.Source, f.At); err != nil {
			log.Printf("[ERR] knowledge history: %v", err)
		}
	}
}

func (m *Mind) persistSnapshots() {
	words := m.State.Lexicon.EnrichedWords()
	records := make([]storage.LexiconRecord, 0, len(words))
	now := time.Now()
	for word, llmContext := range words {
		rec := storage.LexiconRecord{Word: word, LLMContext: llmContext, LastSeen: now}
		if p := m.State.Lexicon.WordSummary(word); p != nil {
			rec.Count = p.Count
			rec.Emotion = p.AverageEmotion()
			rec.LastSeen = p.LastSeen
		}
		records = append(records, rec)
	}
	if err := m.snapshots.SaveLexicon(records); err != nil {
		log.Printf("[ERR] lexicon snapshot: %v", err)
	}

	topicSnaps := m.Topics.Snapshot()
	topicRecords := make([]storage.TopicRecord, 0, len(topicSnaps))
	for _, t := range topicSnaps {
		topicRecords = append(topicRecords, storage.TopicRecord{
			Name:             t.Name,
			InterestLevel:    t.InterestLevel,
			LastExplored:     t.LastExplored,
			ExplorationCount: t.ExplorationCount,
			FragmentCount:    t.FragmentCount,
		})
	}
	if err := m.snapshots.SaveCuriosity(topicRecords); err != nil {
		log.Printf("[ERR] curiosity snapshot: %v", err)
	}
}
