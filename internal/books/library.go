// Package books keeps a plain-text book library under the data root.
// Passages sampled from it feed dreams and the book-reflection cycle.
package books

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	maxRecentBooks   = 5
	passageChars     = 400
	minPassageSource = 200
)

// Book describes one stored text.
type Book struct {
	Title   string
	Path    string
	AddedAt time.Time
	Size    int64
}

// Library is a directory of .txt books.
type Library struct {
	dir string
}

// New opens (creating if needed) a library rooted at dir.
func New(dir string) (*Library, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("books: %w", err)
	}
	return &Library{dir: dir}, nil
}

// Add stores a book under a filename derived from its title.
func (l *Library) Add(title, text string) error {
	name := sanitizeTitle(title) + ".txt"
	if err := os.WriteFile(filepath.Join(l.dir, name), []byte(text), 0o644); err != nil {
		return fmt.Errorf("books: add %q: %w", title, err)
	}
	return nil
}

// Recent lists up to maxRecentBooks books, newest first.
func (l *Library) Recent() []Book {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil
	}
	var out []Book
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, Book{
			Title:   strings.TrimSuffix(e.Name(), ".txt"),
			Path:    filepath.Join(l.dir, e.Name()),
			AddedAt: info.ModTime(),
			Size:    info.Size(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AddedAt.After(out[j].AddedAt) })
	if len(out) > maxRecentBooks {
		out = out[:maxRecentBooks]
	}
	return out
}

// SamplePassage picks a random passage from one of the recent books.
// Returns the passage and its book title, or ok=false when the library
// is empty or unreadable.
func (l *Library) SamplePassage() (passage, title string, ok bool) {
	recent := l.Recent()
	if len(recent) == 0 {
		return "", "", false
	}
	book := recent[rand.Intn(len(recent))]
	data, err := os.ReadFile(book.Path)
	if err != nil || len(data) < minPassageSource {
		return "", "", false
	}
	text := string(data)
	if len(text) <= passageChars {
		return alignToSentences(text), book.Title, true
	}
	start := rand.Intn(len(text) - passageChars)
	end := start + passageChars
	if end > len(text) {
		end = len(text)
	}
	return alignToSentences(text[start:end]), book.Title, true
}

// alignToSentences trims a raw slice so it begins after the first
// sentence break and ends at the last one, keeping the passage
// readable.
func alignToSentences(s string) string {
	if i := strings.IndexAny(s, ".!?"); i >= 0 && i+1 < len(s) {
		s = s[i+1:]
	}
	if i := strings.LastIndexAny(s, ".!?"); i > 0 {
		s = s[:i+1]
	}
	return strings.TrimSpace(s)
}

func sanitizeTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "untitled"
	}
	return b.String()
}
