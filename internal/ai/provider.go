package ai

import "context"

// Kind selects the register of a generation: ordinary dialogue,
// dream-like narration, or introspective reflection.
type Kind string

const (
	KindDefault    Kind = "default"
	KindDream      Kind = "dream"
	KindReflection Kind = "reflection"
)

// Request is one text-generation call. Context carries the caller's
// assembled state (lexicon, memories, mood); Prompt is the immediate
// input.
type Request struct {
	Prompt    string
	Context   string
	MaxTokens int
	Kind      Kind
}

// Provider generates text for a request. Implementations may fail or
// return empty output; callers must treat both as "no response".
type Provider interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// New returns the provider selected by name. Unknown names fall back
// to the offline template provider so the mind keeps running without
// network access.
func New(name string) Provider {
	switch name {
	case "pollinations":
		return NewPollinationsProvider()
	default:
		return NewTemplateProvider()
	}
}
