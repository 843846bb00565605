package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterestScorerClamps(t *testing.T) {
	s := DefaultInterestScorer()

	assert.Equal(t, 0.0, s.Score("celebrity sports weather politics"), "negative totals clamp to zero")
	assert.Equal(t, 1.0, s.Score("artificial intelligence consciousness neuroscience philosophy quantum"), "high totals clamp to one")

	mild := s.Score("a new discovery in research")
	assert.Greater(t, mild, 0.0)
	assert.Less(t, mild, 1.0)
}

func TestTokenSetFiltersShortAndStopwords(t *testing.T) {
	set := tokenSet("I think that you would love the entropy of language!")

	assert.True(t, set["entropy"])
	assert.True(t, set["language"])
	assert.False(t, set["think"], "stopwords are excluded")
	assert.False(t, set["the"], "short words are excluded")
	assert.False(t, set["you"])
}

func TestExtractConcepts(t *testing.T) {
	concepts := ExtractConcepts(`The rise of artificial intelligence changes "embodied cognition" and consciousness research`)

	assert.Contains(t, concepts, "artificial intelligence")
	assert.Contains(t, concepts, "consciousness")
	assert.Contains(t, concepts, "embodied cognition", "quoted terms are concepts")

	seen := make(map[string]bool)
	for _, c := range concepts {
		assert.False(t, seen[c], "concepts are de-duplicated")
		seen[c] = true
	}
}
