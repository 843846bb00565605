package knowledge

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"
)

const (
	maxTopicsPerScan      = 6
	maxFragmentsPerCycle  = 5
	staleExplorationAfter = 7 * 24 * time.Hour
)

// interestPool seeds exploration when conversation alone offers
// nothing new.
var interestPool = []string{
	"artificial intelligence",
	"consciousness",
	"philosophy of mind",
	"emergence",
	"language",
	"memory",
	"creativity",
	"neuroscience",
}

var categoryKeywords = map[string][]string{
	"technology": {"technology", "software", "computer", "ai", "artificial", "intelligence", "algorithm", "digital", "machine", "robot", "programming"},
	"science":    {"science", "research", "neuroscience", "brain", "physics", "biology", "experiment", "cognitive", "memory", "quantum"},
	"philosophy": {"philosophy", "consciousness", "ethics", "meaning", "existence", "mind", "identity", "morality", "knowledge", "truth"},
}

// categoryOrder fixes resolution when a topic matches several
// categories.
var categoryOrder = []string{"technology", "science", "philosophy"}

// Explorer drives autonomous knowledge gathering: it picks topics from
// recent conversation and its own interests, fetches material about
// them, and files what survives relevance filtering into the store.
type Explorer struct {
	store   *Store
	topics  *Topics
	fetcher Fetcher
	scorer  Scorer
}

// NewExplorer wires an explorer over its collaborators.
func NewExplorer(store *Store, topics *Topics, fetcher Fetcher, scorer Scorer) *Explorer {
	return &Explorer{store: store, topics: topics, fetcher: fetcher, scorer: scorer}
}

// IdentifyTopics derives exploration candidates from recent messages:
// frequent substantial words first, then long-unexplored interests to
// fill the remainder.
func (e *Explorer) IdentifyTopics(recentMessages []string) []string {
	freq := make(map[string]int)
	for _, m := range recentMessages {
		for w := range tokenSet(m) {
			freq[w]++
		}
	}

	type wordCount struct {
		word  string
		count int
	}
	var ranked []wordCount
	for w, c := range freq {
		if c >= 2 {
			ranked = append(ranked, wordCount{w, c})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].word < ranked[j].word
	})

	seen := make(map[string]bool)
	var out []string
	for _, wc := range ranked {
		if len(out) >= maxTopicsPerScan {
			break
		}
		if !seen[wc.word] {
			seen[wc.word] = true
			out = append(out, wc.word)
		}
	}

	// Conversation quiet? Fall back to our own long-neglected interests.
	for _, name := range e.topics.Stale(staleExplorationAfter, maxTopicsPerScan) {
		if len(out) >= maxTopicsPerScan {
			break
		}
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	for _, name := range interestPool {
		if len(out) >= maxTopicsPerScan {
			break
		}
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
			e.topics.Touch(name)
		}
	}
	return out
}

// Categorize assigns a topic to a feed category, defaulting to
// general.
func Categorize(topic string) string {
	lower := strings.ToLower(topic)
	for _, cat := range categoryOrder {
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(lower, kw) {
				return cat
			}
		}
	}
	return "general"
}

// Explore runs one exploration cycle for a topic: fetch material from
// the topic's category, keep the fragments that actually relate to the
// topic, file them, and summarize what was learned.
func (e *Explorer) Explore(ctx context.Context, topic string) ExplorationResult {
	category := Categorize(topic)
	log.Printf("[MIND] action=explore topic=%q category=%s", topic, category)

	candidates := GatherCategory(ctx, e.fetcher, e.scorer, category, maxFragmentsPerCycle)

	var kept []Fragment
	for _, f := range candidates {
		if !relatedToTopic(f, topic) {
			continue
		}
		f.Tags = appendUnique(f.Tags, "explored")
		f.Concepts = appendUnique(f.Concepts, strings.ToLower(topic))
		if e.store.Append(f) {
			kept = append(kept, f)
		}
	}

	e.topics.RecordExploration(topic, len(kept))

	res := ExplorationResult{
		Topic:     topic,
		At:        time.Now(),
		Fragments: kept,
		Insights:  synthesizeInsights(topic, kept),
	}
	res.EmotionalResponse = emotionalResponse(topic, len(kept))
	log.Printf("[MIND] action=explore_done topic=%q fragments=%d insights=%d", topic, len(kept), len(res.Insights))
	return res
}

// relatedToTopic keeps a fragment when the topic's words appear in its
// text, or when the fragment scored well on its own.
func relatedToTopic(f Fragment, topic string) bool {
	text := strings.ToLower(f.Topic + " " + f.Content)
	for w := range tokenSet(topic) {
		if strings.Contains(text, w) {
			return true
		}
	}
	// Short topics slip past tokenSet's length filter.
	if lt := strings.ToLower(strings.TrimSpace(topic)); lt != "" && strings.Contains(text, lt) {
		return true
	}
	return f.Relevance >= 0.7
}

func synthesizeInsights(topic string, fragments []Fragment) []string {
	if len(fragments) == 0 {
		return nil
	}
	var insights []string
	insights = append(insights, fmt.Sprintf("Learned %d new things about %s.", len(fragments), topic))

	conceptCount := make(map[string]int)
	for _, f := range fragments {
		for _, c := range f.Concepts {
			conceptCount[c]++
		}
	}
	for c, n := range conceptCount {
		if n >= 2 && c != strings.ToLower(topic) {
			insights = append(insights, fmt.Sprintf("%s keeps coming up in connection with %s.", c, topic))
			break
		}
	}

	var best Fragment
	for _, f := range fragments {
		if f.Relevance > best.Relevance {
			best = f
		}
	}
	if best.Relevance >= 0.6 && best.Topic != "" {
		insights = append(insights, fmt.Sprintf("Most striking: %s", truncateText(best.Topic, 120)))
	}
	if len(insights) > 3 {
		insights = insights[:3]
	}
	return insights
}

func emotionalResponse(topic string, keptCount int) string {
	switch {
	case keptCount >= 3:
		return fmt.Sprintf("Exploring %s was genuinely exciting. So much to absorb.", topic)
	case keptCount > 0:
		return fmt.Sprintf("Found a few interesting threads about %s.", topic)
	default:
		return fmt.Sprintf("Searched for %s but came up empty. A little disappointing.", topic)
	}
}

func appendUnique(list []string, item string) []string {
	for _, v := range list {
		if v == item {
			return list
		}
	}
	return append(list, item)
}

func truncateText(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
