package knowledge

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	items map[string][]Item // keyed by source URL
	err   error
}

func (f *fakeFetcher) FetchItems(_ context.Context, sourceURL string, maxItems int) ([]Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	items := f.items[sourceURL]
	if maxItems > 0 && len(items) > maxItems {
		items = items[:maxItems]
	}
	return items, nil
}

func TestCategorize(t *testing.T) {
	assert.Equal(t, "technology", Categorize("artificial intelligence"))
	assert.Equal(t, "science", Categorize("neuroscience research"))
	assert.Equal(t, "philosophy", Categorize("the meaning of existence"))
	assert.Equal(t, "general", Categorize("cooking recipes"))
	// Priority order: a topic matching several categories resolves to
	// the first in technology, science, philosophy order.
	assert.Equal(t, "technology", Categorize("ai consciousness research"))
}

func TestIdentifyTopicsFromConversation(t *testing.T) {
	e := NewExplorer(NewStore(10, time.Hour), NewTopics(false, 0), &fakeFetcher{}, DefaultInterestScorer())

	messages := []string{
		"I keep thinking about entropy and entropy again",
		"entropy fascinates me, as does language",
		"language shapes thought",
	}
	topics := e.IdentifyTopics(messages)
	require.NotEmpty(t, topics)
	assert.LessOrEqual(t, len(topics), maxTopicsPerScan)
	assert.Contains(t, topics, "entropy", "repeated substantial words become topics")
	assert.Contains(t, topics, "language")
}

func TestIdentifyTopicsFallsBackToInterests(t *testing.T) {
	e := NewExplorer(NewStore(10, time.Hour), NewTopics(false, 0), &fakeFetcher{}, DefaultInterestScorer())

	topics := e.IdentifyTopics(nil)
	require.NotEmpty(t, topics, "a quiet conversation still yields topics from the interest pool")
	assert.LessOrEqual(t, len(topics), maxTopicsPerScan)
}

func TestExploreFilesRelevantFragments(t *testing.T) {
	store := NewStore(10, time.Hour)
	topics := NewTopics(false, 0)
	fetcher := &fakeFetcher{items: map[string][]Item{
		// "quantum" resolves to the science category.
		CategoryFeeds["science"][0]: {
			{Title: "Quantum computing breakthrough", Summary: "researchers improve quantum error correction", Link: "https://example.com/1"},
			{Title: "Celebrity gossip roundup", Summary: "nothing of substance", Link: "https://example.com/2"},
		},
	}}
	e := NewExplorer(store, topics, fetcher, DefaultInterestScorer())

	res := e.Explore(context.Background(), "quantum computing")

	require.NotEmpty(t, res.Fragments)
	assert.Equal(t, "quantum computing", res.Topic)
	assert.NotEmpty(t, res.Insights)
	assert.LessOrEqual(t, len(res.Insights), 3)
	assert.NotEmpty(t, res.EmotionalResponse)

	for _, f := range res.Fragments {
		assert.NotContains(t, f.Topic, "Celebrity", "unrelated items are filtered out")
	}
	assert.Equal(t, len(res.Fragments), store.Len(), "survivors land in the store")

	snap := topics.Snapshot()
	require.NotEmpty(t, snap)
	found := false
	for _, ct := range snap {
		if ct.Name == "quantum computing" {
			found = true
			assert.Equal(t, 1, ct.ExplorationCount)
			assert.Greater(t, ct.InterestLevel, 0.5, "fruitful exploration raises interest")
		}
	}
	assert.True(t, found)
}

func TestExploreEmptyFeedLowersInterest(t *testing.T) {
	topics := NewTopics(false, 0)
	topics.Touch("obscurity")
	e := NewExplorer(NewStore(10, time.Hour), topics, &fakeFetcher{}, DefaultInterestScorer())

	res := e.Explore(context.Background(), "obscurity")
	assert.Empty(t, res.Fragments)
	assert.Empty(t, res.Insights)

	for _, ct := range topics.Snapshot() {
		if ct.Name == "obscurity" {
			assert.Less(t, ct.InterestLevel, 0.5, "a dry run cools interest slightly")
		}
	}
}
