package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	q.Push("alpha")
	q.Push("beta")
	q.Push("gamma")

	for _, want := range []string{"alpha", "beta", "gamma"} {
		got, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := q.Pop()
	assert.False(t, ok, "empty queue pops nothing")
}

func TestQueueAllowsDuplicatePushes(t *testing.T) {
	q := NewQueue()
	q.Push("entropy")
	q.Push("entropy")

	assert.Equal(t, 2, q.Len(), "duplicates are allowed at push time; dedup happens at pop")
}

func TestQueueIgnoresEmptyTopic(t *testing.T) {
	q := NewQueue()
	q.Push("")
	assert.Equal(t, 0, q.Len())
}
