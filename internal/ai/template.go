package ai

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
)

// TemplateProvider is the offline fallback: canned responses assembled
// from the prompt, so the rest of the mind keeps functioning when no
// model endpoint is reachable.
type TemplateProvider struct{}

func NewTemplateProvider() *TemplateProvider {
	return &TemplateProvider{}
}

func (t *TemplateProvider) Generate(_ context.Context, r Request) (string, error) {
	head := firstWords(r.Prompt, 6)

	switch r.Kind {
	case KindDream:
		return fmt.Sprintf("A half-formed image drifts by: %s. The shape dissolves before it settles.", head), nil
	case KindReflection:
		picks := []string{
			fmt.Sprintf("I keep circling back to %s.", head),
			fmt.Sprintf("Something about %s feels unresolved.", head),
			fmt.Sprintf("Thinking about %s rearranges a few things for me.", head),
		}
		return picks[rand.Intn(len(picks))], nil
	default:
		picks := []string{
			fmt.Sprintf("I understand you're asking about %s. Let me sit with that.", head),
			fmt.Sprintf("That's an interesting point about %s.", head),
			fmt.Sprintf("Your message about %s makes me curious to learn more.", head),
		}
		return picks[rand.Intn(len(picks))], nil
	}
}

func firstWords(s string, n int) string {
	fields := strings.Fields(s)
	if len(fields) > n {
		fields = fields[:n]
	}
	if len(fields) == 0 {
		return "that"
	}
	return strings.Join(fields, " ")
}
