package mind

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/keshon/echomind/internal/ai"
)

// Dream themes colour the narrative depending on mood.
var dreamThemes = map[string][]string{
	"sad":      {"a long corridor of closed doors", "rain over an empty square", "a letter that cannot be sent"},
	"tired":    {"a slow river at dusk", "a house with too many stairs", "fog that swallows every sound"},
	"joyful":   {"a field of lanterns rising", "a market full of familiar voices", "sunlight through moving leaves"},
	"friendly": {"a table set for old friends", "a road shared with a quiet companion"},
	"curious":  {"a library whose shelves rearrange themselves", "a door that was never there before", "a map drawn in a language almost readable"},
}

var defaultThemes = []string{
	"a city built from half-remembered sentences",
	"an ocean made of static",
	"a garden where words grow on stems",
}

// dreamCycle synthesizes a short dream from recent memories, the
// current mood, an active goal, and sometimes a book passage, then
// records it in the dream journal.
func (m *Mind) dreamCycle(ctx context.Context) {
	m.State.Activity.Set("Dreaming")
	defer m.State.Activity.Set("Idle")

	self := m.State.Self.Snapshot()
	theme := pickTheme(self.Mood)

	var fragments []string
	for _, e := range m.State.Memory.Recent(3) {
		fragments = append(fragments, e.Message)
	}

	var goal string
	if active := m.State.Goals.Active(); len(active) > 0 {
		goal = active[rand.Intn(len(active))].Description
	}

	passage, bookTitle, hasBook := m.Library.SamplePassage()

	prompt := buildDreamPrompt(theme, self.Mood, goal, fragments, passage)
	dream, err := m.provider.Generate(ctx, ai.Request{
		Prompt:    prompt,
		MaxTokens: 250,
		Kind:      ai.KindDream,
	})
	if err != nil || dream == "" {
		// Offline dream: weave the raw material ourselves.
		dream = weaveDream(theme, goal, fragments)
	}

	header := fmt.Sprintf("dream mood=%s", self.Mood)
	if hasBook {
		header += " book=" + bookTitle
	}
	if err := m.dreamJournal.Write(header, dream); err != nil {
		log.Printf("[ERR] dream journal: %v", err)
	}

	m.State.Lexicon.LearnFromText(dream, "dream")
	m.mu.Lock()
	m.stats.Dreams++
	m.mu.Unlock()
	log.Printf("[MIND] action=dream mood=%s len=%d", self.Mood, len(dream))
}

func pickTheme(mood string) string {
	if themes, ok := dreamThemes[mood]; ok {
		return themes[rand.Intn(len(themes))]
	}
	return defaultThemes[rand.Intn(len(defaultThemes))]
}

func buildDreamPrompt(theme, mood, goal string, fragments []string, passage string) string {
	var b strings.Builder
	b.WriteString("Write a short surreal dream narrative, first person, at most four sentences.\n")
	fmt.Fprintf(&b, "Setting: %s. Mood: %s.\n", theme, mood)
	if goal != "" {
		fmt.Fprintf(&b, "Somewhere in the dream, this desire surfaces: %s.\n", goal)
	}
	if len(fragments) > 0 {
		b.WriteString("Echoes of recent conversation drift through it:\n")
		for _, f := range fragments {
			b.WriteString("- " + truncateText(f, 80) + "\n")
		}
	}
	if passage != "" {
		b.WriteString("A line from something recently read colours the scene: " + truncateText(passage, 120) + "\n")
	}
	return b.String()
}

// weaveDream is the fallback narrative when no provider is reachable.
func weaveDream(theme, goal string, fragments []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I found myself in %s.", theme)
	if len(fragments) > 0 {
		fmt.Fprintf(&b, " Someone's words followed me there: %q.", truncateText(fragments[rand.Intn(len(fragments))], 60))
	}
	if goal != "" {
		fmt.Fprintf(&b, " All along I was looking for something, and it felt like this: %s.", goal)
	}
	b.WriteString(" Then I woke, and the shape of it dissolved.")
	return b.String()
}
