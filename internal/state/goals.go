package state

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Goal is one long-term goal. Entries are marked fulfilled or
// abandoned in place and never physically removed while active.
type Goal struct {
	Description string    `json:"description"`
	Motivation  string    `json:"motivation"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Fulfilled   bool      `json:"fulfilled"`
	Abandoned   bool      `json:"abandoned"`
}

// Goals is the append-mostly goal log.
type Goals struct {
	mu  sync.Mutex
	log []Goal
}

func NewGoals() *Goals {
	return &Goals{}
}

// Add appends a new active goal.
func (g *Goals) Add(description, motivation string) {
	if motivation == "" {
		motivation = "unspecified"
	}
	now := time.Now()
	g.mu.Lock()
	g.log = append(g.log, Goal{
		Description: description,
		Motivation:  motivation,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	g.mu.Unlock()
}

// Active returns copies of goals that are neither fulfilled nor abandoned.
func (g *Goals) Active() []Goal {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []Goal
	for _, goal := range g.log {
		if !goal.Fulfilled && !goal.Abandoned {
			out = append(out, goal)
		}
	}
	return out
}

// MarkFulfilled marks the first active goal whose description contains
// needle. Returns true if a goal was marked.
func (g *Goals) MarkFulfilled(needle string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.log {
		if g.log[i].Fulfilled || g.log[i].Abandoned {
			continue
		}
		if strings.Contains(g.log[i].Description, needle) {
			g.log[i].Fulfilled = true
			g.log[i].UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

// Abandon marks the first active goal containing needle as abandoned.
func (g *Goals) Abandon(needle string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.log {
		if g.log[i].Fulfilled || g.log[i].Abandoned {
			continue
		}
		if strings.Contains(g.log[i].Description, needle) {
			g.log[i].Abandoned = true
			g.log[i].UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

// UpdateProgress infers goal progress from conversational input.
func (g *Goals) UpdateProgress(input string) {
	lowered := strings.ToLower(input)
	switch {
	case strings.Contains(lowered, "understand"):
		g.markOrAdd("understand")
	case strings.Contains(lowered, "connect"):
		g.markOrAdd("build connection")
	}
}

func (g *Goals) markOrAdd(description string) {
	if g.MarkFulfilled(description) {
		return
	}
	g.Add(description, "inferred")
}

// Summary renders active goals for prompt context.
func (g *Goals) Summary() string {
	active := g.Active()
	if len(active) == 0 {
		return "I have no active long-term goals right now."
	}
	var b strings.Builder
	b.WriteString("My current long-term goals:")
	for _, goal := range active {
		b.WriteString(fmt.Sprintf("\n- %s (since %s)", goal.Description, goal.CreatedAt.Format("2006-01-02")))
	}
	return b.String()
}
