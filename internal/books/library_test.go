package books

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = `It was the best of times, it was the worst of times. ` +
	`It was the age of wisdom, it was the age of foolishness. ` +
	`It was the epoch of belief, it was the epoch of incredulity. ` +
	`It was the season of light, it was the season of darkness. ` +
	`It was the spring of hope, it was the winter of despair.`

func TestLibraryAddAndRecent(t *testing.T) {
	lib, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, lib.Add("A Tale of Two Cities", sampleText))
	require.NoError(t, lib.Add("Meditations", sampleText))

	recent := lib.Recent()
	require.Len(t, recent, 2)
	for _, b := range recent {
		assert.Greater(t, b.Size, int64(0))
	}
}

func TestSamplePassageFromLibrary(t *testing.T) {
	lib, err := New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, lib.Add("sample", sampleText))

	passage, title, ok := lib.SamplePassage()
	require.True(t, ok)
	assert.Equal(t, "sample", title)
	assert.NotEmpty(t, passage)
	assert.LessOrEqual(t, len(passage), len(sampleText))
}

func TestSamplePassageEmptyLibrary(t *testing.T) {
	lib, err := New(t.TempDir())
	require.NoError(t, err)

	_, _, ok := lib.SamplePassage()
	assert.False(t, ok)
}

func TestSanitizeTitle(t *testing.T) {
	assert.Equal(t, "a_tale_of_two_cities", sanitizeTitle("A Tale of Two Cities"))
	assert.Equal(t, "untitled", sanitizeTitle("!!!"))
}

func TestAlignToSentences(t *testing.T) {
	raw := "ws the middle. A complete sentence here. And another one! trailing fragm"
	aligned := alignToSentences(raw)
	assert.True(t, strings.HasPrefix(aligned, "A complete sentence"))
	assert.True(t, strings.HasSuffix(aligned, "!"))
}
