package state

import (
	"sync"
	"time"
)

// MemoryEntry is one line of rolling conversation memory.
type MemoryEntry struct {
	Speaker string    `json:"speaker"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
	Tag     string    `json:"tag"`
}

// Memory is a bounded ring of conversation entries. Oldest entries are
// evicted on overflow. Only the most recent entry may be retagged.
type Memory struct {
	mu       sync.Mutex
	buffer   []MemoryEntry
	capacity int
}

func NewMemory(capacity int) *Memory {
	if capacity <= 0 {
		capacity = 10
	}
	return &Memory{capacity: capacity}
}

// Add appends an entry, evicting the oldest when full.
func (m *Memory) Add(speaker, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buffer = append(m.buffer, MemoryEntry{
		Speaker: speaker,
		Message: message,
		At:      time.Now(),
		Tag:     "neutral",
	})
	if len(m.buffer) > m.capacity {
		m.buffer = m.buffer[len(m.buffer)-m.capacity:]
	}
}

// TagRecent retags the newest entry. Older entries are immutable.
func (m *Memory) TagRecent(tag string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.buffer) == 0 {
		return false
	}
	m.buffer[len(m.buffer)-1].Tag = tag
	return true
}

// Recent returns copies of up to n newest entries, oldest first.
func (m *Memory) Recent(n int) []MemoryEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n <= 0 || n > len(m.buffer) {
		n = len(m.buffer)
	}
	out := make([]MemoryEntry, n)
	copy(out, m.buffer[len(m.buffer)-n:])
	return out
}

// All returns a copy of the whole buffer, oldest first.
func (m *Memory) All() []MemoryEntry {
	return m.Recent(0)
}

// LastFrom returns the newest message from any speaker other than
// exclude, or "" when none exists.
func (m *Memory) LastFrom(exclude string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.buffer) - 1; i >= 0; i-- {
		if m.buffer[i].Speaker != exclude {
			return m.buffer[i].Message
		}
	}
	return ""
}

// Len returns the number of stored entries.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.buffer)
}

// LastActivity returns the timestamp of the newest entry, zero when empty.
func (m *Memory) LastActivity() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.buffer) == 0 {
		return time.Time{}
	}
	return m.buffer[len(m.buffer)-1].At
}
