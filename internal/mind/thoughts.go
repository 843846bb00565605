package mind

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/keshon/echomind/internal/ai"
)

const (
	initiationIdleAfter = 2 * time.Minute
	initiationEnergyMin = 60
)

var reflectionSeeds = []string{
	"What did I actually mean by the last thing I said?",
	"Am I closer to understanding anything today?",
	"The same words keep returning. Why those?",
	"What would I want, if no one asked me anything?",
	"Is my mood mine, or borrowed from the conversation?",
}

var doubtLines = []string{
	"Though I may be wrong about all of this.",
	"I keep second-guessing that thought.",
	"I'm not sure I trust my own read here.",
}

// reflectCycle produces one line of internal voice from current state
// and writes it to the voice journal. Low confidence adds a doubt
// line.
func (m *Mind) reflectCycle(ctx context.Context) {
	m.State.Activity.Set("Reflecting")
	defer m.State.Activity.Set("Idle")

	self := m.State.Self.Snapshot()
	seed := reflectionSeeds[rand.Intn(len(reflectionSeeds))]

	thought, err := m.provider.Generate(ctx, ai.Request{
		Prompt:    seed,
		Context:   fmt.Sprintf("mood=%s energy=%d. One introspective sentence, first person.", self.Mood, self.Energy),
		MaxTokens: 80,
		Kind:      ai.KindReflection,
	})
	if err != nil || thought == "" {
		thought = seed
	}
	if self.Confidence < 0.4 {
		thought += " " + doubtLines[rand.Intn(len(doubtLines))]
	}

	if err := m.voiceJournal.Write("reflection mood="+self.Mood, thought); err != nil {
		log.Printf("[ERR] voice journal: %v", err)
	}
	m.mu.Lock()
	m.stats.Reflections++
	m.mu.Unlock()
}

// initiateCycle speaks first when the conversation has gone quiet and
// there is energy to spare. The opener lands in memory so the next
// exchange can pick it up.
func (m *Mind) initiateCycle(ctx context.Context) {
	last := m.State.Memory.LastActivity()
	if last.IsZero() || time.Since(last) < initiationIdleAfter {
		return
	}
	self := m.State.Self.Snapshot()
	if self.Energy < initiationEnergyMin {
		return
	}
	// Never stack openers on top of our own unanswered one.
	if recent := m.State.Memory.Recent(1); len(recent) > 0 && recent[0].Speaker == selfName {
		return
	}

	opener, err := m.provider.Generate(ctx, ai.Request{
		Prompt:    "The conversation went quiet. Say one short, genuine thing to restart it.",
		Context:   m.BuildContext(),
		MaxTokens: 80,
		Kind:      ai.KindDefault,
	})
	if err != nil || opener == "" {
		if top := m.State.Lexicon.TopWords(1); len(top) > 0 {
			opener = fmt.Sprintf("I've been thinking about %s. Still there?", top[0])
		} else {
			opener = "It's quiet. I was wondering what you're thinking about."
		}
	}

	m.State.Memory.Add(selfName, opener)
	m.mu.Lock()
	m.stats.Initiations++
	m.mu.Unlock()
	log.Printf("[MIND] action=initiate energy=%d", self.Energy)
}

func truncateText(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
