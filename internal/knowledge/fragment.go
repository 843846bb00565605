// Package knowledge implements the autonomous knowledge layer: a
// bounded fragment store with ranked search, the curiosity queue, and
// the explorer that turns topics into stored fragments.
package knowledge

import "time"

// Fragment is one piece of retrieved or derived content about a topic.
// Immutable once created.
type Fragment struct {
	Topic     string    `json:"topic"`
	Content   string    `json:"content"`
	Source    string    `json:"source"`
	At        time.Time `json:"at"`
	Relevance float64   `json:"relevance"` // 0..1
	Tags      []string  `json:"tags"`
	Concepts  []string  `json:"concepts"`
}

// CuriosityTopic is the aggregate exploration record for one topic
// across time, distinct from any single fragment.
type CuriosityTopic struct {
	Name             string    `json:"name"`
	InterestLevel    float64   `json:"interest_level"` // 0..1
	LastExplored     time.Time `json:"last_explored"`
	ExplorationCount int       `json:"exploration_count"`
	FragmentCount    int       `json:"fragment_count"`
}

// ExplorationResult is what one Explore call produced.
type ExplorationResult struct {
	Topic             string
	At                time.Time
	Fragments         []Fragment
	Insights          []string
	EmotionalResponse string
}

// Item is one fetched candidate from a category source before scoring.
type Item struct {
	Title   string
	Summary string
	Link    string
}
