package knowledge

import (
	"regexp"
	"strings"
	"unicode"
)

// Scorer rates how relevant a piece of text is to the companion's
// interests, 0..1. Keyword heuristics by default; kept behind an
// interface so the algorithm can be swapped without touching store or
// scheduler mechanics.
type Scorer interface {
	Score(text string) float64
}

// InterestScorer weights text by tiers of interest keywords.
type InterestScorer struct {
	High   []string
	Medium []string
	Low    []string
}

// DefaultInterestScorer mirrors the companion's standing interests:
// cognition and AI high, general science medium, ephemera negative.
func DefaultInterestScorer() *InterestScorer {
	return &InterestScorer{
		High: []string{
			"consciousness", "artificial intelligence", "philosophy", "cognition",
			"learning", "memory", "ethics", "self-awareness", "reasoning", "understanding",
		},
		Medium: []string{
			"technology", "science", "discovery", "research", "breakthrough",
			"innovation", "psychology", "neuroscience", "language", "communication",
		},
		Low: []string{"politics", "sports", "celebrity", "weather", "traffic"},
	}
}

func (s *InterestScorer) Score(text string) float64 {
	lowered := strings.ToLower(text)
	var score float64
	for _, kw := range s.High {
		if strings.Contains(lowered, kw) {
			score += 0.3
		}
	}
	for _, kw := range s.Medium {
		if strings.Contains(lowered, kw) {
			score += 0.1
		}
	}
	for _, kw := range s.Low {
		if strings.Contains(lowered, kw) {
			score -= 0.1
		}
	}
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// stopwords excluded from topic extraction and query matching.
var stopwords = map[string]bool{
	"that": true, "this": true, "what": true, "where": true, "when": true,
	"have": true, "been": true, "will": true, "they": true, "them": true,
	"with": true, "from": true, "about": true, "your": true, "would": true,
	"could": true, "should": true, "there": true, "their": true, "which": true,
	"because": true, "really": true, "something": true, "think": true,
}

// tokenSet splits text into lowercase non-stopword tokens of length >= 4.
func tokenSet(text string) map[string]bool {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	set := make(map[string]bool)
	for _, w := range words {
		if len(w) < 4 || stopwords[w] {
			continue
		}
		set[w] = true
	}
	return set
}

func containsWord(haystack, word string) bool {
	return strings.Contains(strings.ToLower(haystack), word)
}

var quotedTerm = regexp.MustCompile(`"([^"]{4,})"`)

var conceptPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(artificial intelligence|AI)\b`),
	regexp.MustCompile(`(?i)\b(machine learning|ML)\b`),
	regexp.MustCompile(`(?i)\b(consciousness|awareness)\b`),
	regexp.MustCompile(`(?i)\b(philosophy|ethics)\b`),
	regexp.MustCompile(`(?i)\b(neuroscience|psychology)\b`),
	regexp.MustCompile(`(?i)\b(technology|innovation)\b`),
}

// ExtractConcepts pulls key concepts from text: quoted terms plus a
// fixed set of recognized domain patterns, de-duplicated.
func ExtractConcepts(text string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(c string) {
		c = strings.TrimSpace(strings.ToLower(c))
		if c == "" || seen[c] {
			return
		}
		seen[c] = true
		out = append(out, c)
	}

	for _, m := range quotedTerm.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}
	for _, re := range conceptPatterns {
		for _, m := range re.FindAllString(text, -1) {
			add(m)
		}
	}
	return out
}
