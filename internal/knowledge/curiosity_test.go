package knowledge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicsInterestRisesWithFragments(t *testing.T) {
	topics := NewTopics(false, 0)

	topics.RecordExploration("entropy", 3)
	snap := topics.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "entropy", snap[0].Name)
	assert.InDelta(t, 0.8, snap[0].InterestLevel, 0.001, "0.5 base + 0.1 per fragment")
	assert.Equal(t, 1, snap[0].ExplorationCount)
	assert.Equal(t, 3, snap[0].FragmentCount)
}

func TestTopicsInterestCapsAtOne(t *testing.T) {
	topics := NewTopics(false, 0)
	for i := 0; i < 10; i++ {
		topics.RecordExploration("entropy", 5)
	}
	snap := topics.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, 1.0, snap[0].InterestLevel)
}

func TestTopicsNoDecayByDefault(t *testing.T) {
	topics := NewTopics(false, 0)
	topics.RecordExploration("entropy", 2)

	first := topics.Snapshot()[0].InterestLevel
	second := topics.Snapshot()[0].InterestLevel
	assert.Equal(t, first, second, "interest never auto-decays unless the knob is on")
}

func TestTopicsStaleOrdering(t *testing.T) {
	topics := NewTopics(false, 0)
	topics.Touch("alpha")
	topics.Touch("beta")
	topics.RecordExploration("beta", 4) // explored now, high interest

	stale := topics.Stale(time.Hour, 10)
	assert.Contains(t, stale, "alpha", "never-explored topics are stale")
	assert.NotContains(t, stale, "beta", "freshly explored topics are not")
}

func TestTopicsTouchIsIdempotent(t *testing.T) {
	topics := NewTopics(false, 0)
	topics.Touch("entropy")
	topics.RecordExploration("entropy", 2)
	topics.Touch("entropy")

	snap := topics.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, 1, snap[0].ExplorationCount, "touching an existing topic never resets it")
}
