package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, 10, cfg.MemoryCapacity)
	assert.Equal(t, 500, cfg.KnowledgeCapacity)
	assert.Equal(t, time.Hour, cfg.DedupWindow)
	assert.Equal(t, 3, cfg.SearchTopK)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 90*time.Second, cfg.DreamInterval)
	assert.False(t, cfg.InterestDecay)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MEMORY_CAPACITY", "25")
	t.Setenv("DREAM_INTERVAL", "30s")
	t.Setenv("INTEREST_DECAY", "true")

	cfg := New()
	assert.Equal(t, 25, cfg.MemoryCapacity)
	assert.Equal(t, 30*time.Second, cfg.DreamInterval)
	assert.True(t, cfg.InterestDecay)
}
