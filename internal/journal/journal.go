package journal

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Journal is an append-only, size-rotated log of timestamped entries
// (dreams, introspection, internal voice). A mutex serializes writers
// so concurrent workers never interleave partial lines.
type Journal struct {
	mu  sync.Mutex
	out *lumberjack.Logger
}

// New opens a journal file under dir. Rotation keeps a few small
// backups; the journal is a diary, not an audit trail.
func New(dir, name string) *Journal {
	return &Journal{
		out: &lumberjack.Logger{
			Filename:   filepath.Join(dir, name+".log"),
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			Compress:   false,
		},
	}
}

// Write appends one entry with a timestamp header. Errors are returned
// but callers normally just log and continue; a failed diary write is
// never fatal to a worker cycle.
func (j *Journal) Write(header, text string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	ts := time.Now().Format("2006-01-02 15:04:05")
	_, err := fmt.Fprintf(j.out, "\n=== %s: %s ===\n%s\n", header, ts, text)
	return err
}

// Close flushes and closes the underlying file.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.out.Close()
}
