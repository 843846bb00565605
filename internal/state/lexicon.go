package state

import (
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"
)

const emotionLogSize = 10

// WordProfile aggregates everything learned about one word.
type WordProfile struct {
	Count      int            `json:"count"`
	Tags       map[string]int `json:"tags"`
	Emotions   map[string]int `json:"emotions"`
	LLMContext string         `json:"llm_context,omitempty"`
	LastSeen   time.Time      `json:"last_seen"`

	emotionLog []string // rolling recent moods, newest last
}

// AverageEmotion returns the most frequent mood in the recent rolling
// window, "neutral" when nothing is recorded.
func (w *WordProfile) AverageEmotion() string {
	if len(w.emotionLog) == 0 {
		return "neutral"
	}
	counts := make(map[string]int)
	for _, e := range w.emotionLog {
		counts[e]++
	}
	best, bestN := "neutral", 0
	for e, n := range counts {
		if n > bestN {
			best, bestN = e, n
		}
	}
	return best
}

// conceptLinks tags sentences by the related words they contain.
var conceptLinks = map[string][]string{
	"positive":     {"joy", "smile", "hope", "excited", "love"},
	"negative":     {"sad", "angry", "hate", "regret"},
	"goal-related": {"goal", "want", "will", "plan", "intend"},
}

// Lexicon is the word/concept vocabulary, updated by every
// text-processing path, foreground and background.
type Lexicon struct {
	mu    sync.RWMutex
	vocab map[string]*WordProfile
}

func NewLexicon() *Lexicon {
	return &Lexicon{vocab: make(map[string]*WordProfile)}
}

func splitWords(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}

// ProcessSentence updates profiles for each word in the sentence,
// tagging by concept links and recording the current mood.
func (l *Lexicon) ProcessSentence(sentence, mood string) {
	lowered := strings.ToLower(sentence)
	var tags []string
	for concept, related := range conceptLinks {
		for _, w := range related {
			if strings.Contains(lowered, w) {
				tags = append(tags, concept)
				break
			}
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, word := range splitWords(sentence) {
		p := l.profileLocked(word)
		p.Count++
		p.LastSeen = time.Now()
		for _, tag := range tags {
			p.Tags[tag]++
		}
		if mood != "" {
			p.Emotions[mood]++
			p.emotionLog = append(p.emotionLog, mood)
			if len(p.emotionLog) > emotionLogSize {
				p.emotionLog = p.emotionLog[len(p.emotionLog)-emotionLogSize:]
			}
		}
	}
}

// LearnFromText incorporates externally generated text (explorations,
// book reflections) into the lexicon, tagging by source.
func (l *Lexicon) LearnFromText(text, source string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, word := range splitWords(text) {
		p := l.profileLocked(word)
		p.Count++
		p.LastSeen = time.Now()
		if source == "book" {
			p.Tags["literary"]++
		}
	}
}

// HasContext reports whether a word already carries an LLM-derived
// explanation. The curiosity consumer uses this as its dedup rule.
func (l *Lexicon) HasContext(word string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, ok := l.vocab[strings.ToLower(word)]
	return ok && p.LLMContext != ""
}

// Enrich merges an explanation into the word's profile, creating the
// entry if it has never been seen.
func (l *Lexicon) Enrich(word, explanation string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	p := l.profileLocked(strings.ToLower(word))
	if p.Count == 0 {
		p.Count = 1
	}
	p.LLMContext = explanation
	p.LastSeen = time.Now()
}

// WordSummary returns a copy of the profile, nil when unknown.
func (l *Lexicon) WordSummary(word string) *WordProfile {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, ok := l.vocab[strings.ToLower(word)]
	if !ok {
		return nil
	}
	cp := *p
	cp.Tags = copyCounts(p.Tags)
	cp.Emotions = copyCounts(p.Emotions)
	cp.emotionLog = append([]string(nil), p.emotionLog...)
	return &cp
}

// AffinityScore is a [-1,1] heuristic over emotional and value-aligned
// content of the text.
func (l *Lexicon) AffinityScore(text string) float64 {
	words := splitWords(text)
	if len(words) == 0 {
		return 0
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	var score float64
	for _, word := range words {
		p, ok := l.vocab[word]
		if !ok {
			continue
		}
		if p.Tags["positive"] > 0 {
			score++
		}
		if p.Tags["negative"] > 0 {
			score--
		}
		if p.Tags["goal-related"] > 0 {
			score += 0.5
		}
	}
	score /= float64(len(words))
	if score > 1 {
		score = 1
	}
	if score < -1 {
		score = -1
	}
	return score
}

// Size returns the number of known words.
func (l *Lexicon) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.vocab)
}

// TopWords returns up to n words by count, highest first, for
// snapshotting and prompt context.
func (l *Lexicon) TopWords(n int) []string {
	type wc struct {
		word  string
		count int
	}
	l.mu.RLock()
	all := make([]wc, 0, len(l.vocab))
	for w, p := range l.vocab {
		all = append(all, wc{w, p.Count})
	}
	l.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].count != all[j].count {
			return all[i].count > all[j].count
		}
		return all[i].word < all[j].word
	})
	if n > 0 && len(all) > n {
		all = all[:n]
	}
	out := make([]string, len(all))
	for i, e := range all {
		out[i] = e.word
	}
	return out
}

// EnrichedWords returns all words carrying an LLM context, with their
// explanations, for snapshot persistence.
func (l *Lexicon) EnrichedWords() map[string]string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make(map[string]string)
	for w, p := range l.vocab {
		if p.LLMContext != "" {
			out[w] = p.LLMContext
		}
	}
	return out
}

func (l *Lexicon) profileLocked(word string) *WordProfile {
	p, ok := l.vocab[word]
	if !ok {
		p = &WordProfile{
			Tags:     make(map[string]int),
			Emotions: make(map[string]int),
		}
		l.vocab[word] = p
	}
	return p
}

func copyCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
