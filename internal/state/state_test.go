package state

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelfClampsOnEveryWrite(t *testing.T) {
	s := NewSelf()

	s.AdjustConfidence(5.0)
	assert.Equal(t, 1.0, s.Snapshot().Confidence)

	s.AdjustConfidence(-5.0)
	assert.Equal(t, 0.0, s.Snapshot().Confidence)

	s.AdjustEnergy(-500)
	assert.Equal(t, 0, s.Snapshot().Energy)

	s.AdjustEnergy(500)
	assert.Equal(t, 100, s.Snapshot().Energy)
}

func TestSelfUpdateMoodPaths(t *testing.T) {
	s := NewSelf()

	s.Update("thank you for listening")
	assert.Equal(t, "appreciative", s.Snapshot().Mood)

	s.Update("you're wrong about that")
	assert.Equal(t, "defensive", s.Snapshot().Mood)

	s.Update("hello again")
	assert.Equal(t, "friendly", s.Snapshot().Mood)
}

func TestSelfEnergyDecaysPerInteraction(t *testing.T) {
	s := NewSelf()
	before := s.Snapshot().Energy
	s.Update("hello")
	assert.Equal(t, before-1, s.Snapshot().Energy)
}

func TestMemoryRingEvictsOldest(t *testing.T) {
	m := NewMemory(3)
	for i := 1; i <= 5; i++ {
		m.Add("user", fmt.Sprintf("message %d", i))
	}

	require.Equal(t, 3, m.Len())
	all := m.All()
	assert.Equal(t, "message 3", all[0].Message)
	assert.Equal(t, "message 5", all[2].Message)
}

func TestMemoryTagRecentOnlyNewest(t *testing.T) {
	m := NewMemory(5)
	m.Add("user", "first")
	m.Add("user", "second")

	require.True(t, m.TagRecent("joyful"))

	all := m.All()
	assert.Equal(t, "neutral", all[0].Tag, "older entries stay immutable")
	assert.Equal(t, "joyful", all[1].Tag)
}

func TestMemoryTagRecentEmpty(t *testing.T) {
	m := NewMemory(5)
	assert.False(t, m.TagRecent("joyful"))
}

func TestMemoryLastFromSkipsSpeaker(t *testing.T) {
	m := NewMemory(5)
	m.Add("user", "a question")
	m.Add("echomind", "an answer")

	assert.Equal(t, "a question", m.LastFrom("echomind"))
	assert.Equal(t, "an answer", m.LastFrom("user"))
	assert.Equal(t, "", m.LastFrom(""), "empty when everything is excluded and buffer has only excluded speakers")
}

func TestTraitsConcurrentReinforce(t *testing.T) {
	tr := NewTraits()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		tr.Reinforce("curious", 1)
	}()
	go func() {
		defer wg.Done()
		tr.Reinforce("curious", 2)
	}()
	wg.Wait()

	assert.Equal(t, 3, tr.Count("curious"), "concurrent deltas must both land")
}

func TestTraitsDominantOrdering(t *testing.T) {
	tr := NewTraits()
	tr.Reinforce("honest", 5)
	tr.Reinforce("curious", 5)
	tr.Reinforce("evolving", 1)

	top := tr.Dominant(2)
	require.Len(t, top, 2)
	assert.Equal(t, "curious", top[0].Name, "ties break alphabetically")
	assert.Equal(t, "honest", top[1].Name)
}

func TestTraitsAnalyzeMessages(t *testing.T) {
	tr := NewTraits()
	seen := tr.AnalyzeMessages([]string{
		"I care about getting this right",
		"I don't lie to you",
	})

	assert.Contains(t, seen, "empathetic")
	assert.Contains(t, seen, "honest")
	assert.Equal(t, 1, tr.Count("empathetic"))
}

func TestGoalsLifecycle(t *testing.T) {
	g := NewGoals()
	g.Add("understand human emotions", "curiosity")
	g.Add("connect more deeply", "belonging")

	require.Len(t, g.Active(), 2)

	require.True(t, g.MarkFulfilled("human emotions"))
	active := g.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "connect more deeply", active[0].Description)

	require.True(t, g.Abandon("connect"))
	assert.Empty(t, g.Active())

	assert.False(t, g.MarkFulfilled("nonexistent"))
}

func TestValuesEvaluate(t *testing.T) {
	v := NewValues()

	j := v.Evaluate("I will lie to them about it")
	assert.Contains(t, j.Violated, "honesty")

	j = v.Evaluate("I want to be honest and kind")
	assert.Empty(t, j.Violated)
	assert.NotEmpty(t, j.Aligned)

	violations := v.RecentViolations(5)
	require.Len(t, violations, 1)
	assert.Equal(t, "I will lie to them about it", violations[0].Statement)
}

func TestLexiconProcessAndAffinity(t *testing.T) {
	l := NewLexicon()
	l.ProcessSentence("I love this wonderful conversation", "joyful")
	l.ProcessSentence("I love learning", "joyful")

	assert.Greater(t, l.Size(), 0)
	p := l.WordSummary("love")
	require.NotNil(t, p)
	assert.Equal(t, 2, p.Count)

	affinity := l.AffinityScore("love wonderful")
	assert.Greater(t, affinity, 0.0)
	assert.LessOrEqual(t, affinity, 1.0)
}

func TestLexiconEnrichAndHasContext(t *testing.T) {
	l := NewLexicon()
	assert.False(t, l.HasContext("entropy"))

	l.Enrich("entropy", "a measure of disorder in a system")
	assert.True(t, l.HasContext("entropy"))

	enriched := l.EnrichedWords()
	assert.Equal(t, "a measure of disorder in a system", enriched["entropy"])
}

func TestLexiconWordSummaryIsACopy(t *testing.T) {
	l := NewLexicon()
	l.ProcessSentence("remarkable ideas emerge", "curious")

	p := l.WordSummary("remarkable")
	require.NotNil(t, p)
	p.Count = 999

	again := l.WordSummary("remarkable")
	assert.Equal(t, 1, again.Count, "summaries must not alias internal state")
}

func TestStateSeed(t *testing.T) {
	st := New(10)
	st.Seed()

	assert.NotEmpty(t, st.Goals.Active())
	assert.Greater(t, st.Lexicon.Size(), 0)
	assert.Equal(t, "Idle", st.Activity.Current())
}
