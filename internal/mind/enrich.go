package mind

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/keshon/echomind/internal/ai"
)

// consumeCuriosityCycle pops one queued topic per cycle and asks the
// provider to explain it. Topics the lexicon already has context for
// are skipped at pop time, so a word queued twice is only enriched
// once. Failures are logged and dropped; the queue never retries.
func (m *Mind) consumeCuriosityCycle(ctx context.Context) {
	topic, ok := m.Queue.Pop()
	if !ok {
		return
	}
	if m.State.Lexicon.HasContext(topic) {
		return
	}

	m.State.Activity.Set("Reflecting")
	defer m.State.Activity.Set("Idle")

	explanation, err := m.provider.Generate(ctx, ai.Request{
		Prompt:    enrichmentPrompt(topic),
		Context:   m.lexiconContext(topic),
		MaxTokens: 120,
		Kind:      ai.KindReflection,
	})
	if err != nil {
		log.Printf("[ERR] enrichment failed topic=%q: %v", topic, err)
		return
	}
	if explanation == "" {
		log.Printf("[MIND] enrichment empty topic=%q, dropped", topic)
		return
	}

	m.State.Lexicon.Enrich(topic, explanation)
	m.mu.Lock()
	m.stats.Enrichments++
	m.mu.Unlock()
	log.Printf("[MIND] action=enrich topic=%q len=%d", topic, len(explanation))
}

func enrichmentPrompt(topic string) string {
	return fmt.Sprintf("Explain the word or concept %q in two plain sentences, as if adding a note to a personal vocabulary.", topic)
}

// lexiconContext gives the provider whatever the lexicon already
// holds about the word and its emotional neighborhood.
func (m *Mind) lexiconContext(topic string) string {
	var parts []string
	if p := m.State.Lexicon.WordSummary(topic); p != nil {
		parts = append(parts, fmt.Sprintf("Seen %d times, usually in a %s register.", p.Count, p.AverageEmotion()))
	}
	if affinity := m.State.Lexicon.AffinityScore(topic); affinity != 0 {
		parts = append(parts, fmt.Sprintf("My affinity for it runs about %.2f.", affinity))
	}
	if top := m.State.Lexicon.TopWords(3); len(top) > 0 {
		parts = append(parts, "Words I use often: "+strings.Join(top, ", ")+".")
	}
	return strings.Join(parts, " ")
}
