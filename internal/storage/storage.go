// Package storage persists mind snapshots: the enriched lexicon,
// curiosity topics, and knowledge summaries survive restarts.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/keshon/datastore"
)

const (
	lexiconKey   = "lexicon"
	curiosityKey = "curiosity"
	knowledgeKey = "knowledge"

	knowledgeHistoryLimit int = 200
)

type Storage struct {
	ds *datastore.DataStore
}

// LexiconRecord is one enriched word as persisted.
type LexiconRecord struct {
	Word       string    `json:"word"`
	Count      int       `json:"count"`
	Emotion    string    `json:"emotion"`
	LLMContext string    `json:"llm_context,omitempty"`
	LastSeen   time.Time `json:"last_seen"`
}

// TopicRecord is one curiosity topic as persisted.
type TopicRecord struct {
	Name             string    `json:"name"`
	InterestLevel    float64   `json:"interest_level"`
	LastExplored     time.Time `json:"last_explored"`
	ExplorationCount int       `json:"exploration_count"`
	FragmentCount    int       `json:"fragment_count"`
}

// KnowledgeRecord summarizes one stored fragment.
type KnowledgeRecord struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
}

type lexiconBucket struct {
	Words   []LexiconRecord `json:"words"`
	SavedAt time.Time       `json:"saved_at"`
}

type curiosityBucket struct {
	Topics  []TopicRecord `json:"topics"`
	SavedAt time.Time     `json:"saved_at"`
}

type knowledgeBucket struct {
	Records []KnowledgeRecord `json:"records"`
	SavedAt time.Time         `json:"saved_at"`
}

// New opens the snapshot store. The context bounds the datastore's
// autosave loop; Close stops it as well.
func New(ctx context.Context, filePath string) (*Storage, error) {
	ds, err := datastore.New(ctx, filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

// SaveLexicon replaces the persisted lexicon snapshot.
func (s *Storage) SaveLexicon(words []LexiconRecord) error {
	return s.ds.Set(lexiconKey, lexiconBucket{Words: words, SavedAt: time.Now()})
}

// LoadLexicon returns the last persisted lexicon snapshot, empty when
// none was saved.
func (s *Storage) LoadLexicon() ([]LexiconRecord, error) {
	var bucket lexiconBucket
	if err := s.load(lexiconKey, &bucket); err != nil {
		return nil, err
	}
	return bucket.Words, nil
}

// SaveCuriosity replaces the persisted curiosity topics.
func (s *Storage) SaveCuriosity(topics []TopicRecord) error {
	return s.ds.Set(curiosityKey, curiosityBucket{Topics: topics, SavedAt: time.Now()})
}

func (s *Storage) LoadCuriosity() ([]TopicRecord, error) {
	var bucket curiosityBucket
	if err := s.load(curiosityKey, &bucket); err != nil {
		return nil, err
	}
	return bucket.Topics, nil
}

// AppendKnowledge records summaries of newly stored fragments, keeping
// only the most recent knowledgeHistoryLimit entries.
func (s *Storage) AppendKnowledge(title, source string, at time.Time) error {
	var bucket knowledgeBucket
	if err := s.load(knowledgeKey, &bucket); err != nil {
		bucket = knowledgeBucket{}
	}
	bucket.Records = append(bucket.Records, KnowledgeRecord{
		ID:        uuid.NewString(),
		Title:     title,
		Source:    source,
		Timestamp: at,
	})
	if len(bucket.Records) > knowledgeHistoryLimit {
		bucket.Records = bucket.Records[len(bucket.Records)-knowledgeHistoryLimit:]
	}
	bucket.SavedAt = time.Now()
	return s.ds.Set(knowledgeKey, bucket)
}

func (s *Storage) KnowledgeHistory() ([]KnowledgeRecord, error) {
	var bucket knowledgeBucket
	if err := s.load(knowledgeKey, &bucket); err != nil {
		return nil, err
	}
	return bucket.Records, nil
}

// load fills out from the stored value. A missing key leaves out
// zeroed, which callers treat as an empty bucket.
func (s *Storage) load(key string, out any) error {
	if _, err := s.ds.Get(key, out); err != nil {
		return fmt.Errorf("error loading %s: %w", key, err)
	}
	return nil
}
