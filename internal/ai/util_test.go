package ai

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanReply(t *testing.T) {
	assert.Equal(t, "hello", cleanReply("  hello  ", 0))
	assert.Equal(t, "hello", cleanReply(`"hello"`, 0))
	assert.Equal(t, "after", cleanReply("<think>internal reasoning</think>after", 0))
}

func TestCleanReplyTrimsToTokenBudget(t *testing.T) {
	text := "This is the first sentence, quite long. Then more words follow here."

	// 10 tokens = 40 chars; the trim lands on the sentence boundary.
	assert.Equal(t, "This is the first sentence, quite long.", cleanReply(text, 10))

	// No boundary late enough: hard cut with an ellipsis.
	run := strings.Repeat("a", 100)
	got := cleanReply(run, 10)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len(got), 43)

	// Zero budget leaves the reply alone.
	assert.Equal(t, run, cleanReply(run, 0))
}

func TestIsGarbageResponse(t *testing.T) {
	assert.True(t, isGarbageResponse("<html><body>error</body></html>"))
	assert.True(t, isGarbageResponse("As an AI language model, I cannot reflect on that."))
	assert.True(t, isGarbageResponse("    "))
	assert.True(t, isGarbageResponse("nope"))
	assert.False(t, isGarbageResponse("a perfectly reasonable sentence"))
}

func TestTemplateProviderNeverEmpty(t *testing.T) {
	p := NewTemplateProvider()
	for _, kind := range []Kind{KindDefault, KindDream, KindReflection} {
		out, err := p.Generate(context.Background(), Request{Prompt: "what is entropy", Kind: kind})
		require.NoError(t, err)
		assert.NotEmpty(t, out)
	}
}

func TestNewFallsBackToTemplate(t *testing.T) {
	_, ok := New("no-such-provider").(*TemplateProvider)
	assert.True(t, ok)

	_, ok = New("pollinations").(*PollinationsProvider)
	assert.True(t, ok)
}
