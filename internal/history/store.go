// Package history is the shell's only long-lived piece of core state: the
// in-memory command history and the file operations that load, overwrite or
// append it on disk.
package history

import (
	"bufio"
	"os"
	"strings"
)

// Store holds the session's in-memory history plus the "last-saved" marker
// used by append-only persistence. It is not safe for concurrent use. The
// REPL goroutine calls it, and so does the history builtin from the
// goroutine of the pipeline stage it runs in.
type Store struct {
	entries   []string
	lastSaved int
}

// NewStore returns an empty history store.
func NewStore() *Store {
	return &Store{}
}

// Add records a new entry at the end of history.
func (s *Store) Add(entry string) {
	s.entries = append(s.entries, entry)
}

// Len returns the number of entries recorded so far.
func (s *Store) Len() int {
	return len(s.entries)
}

// All returns every entry, oldest first. The slice is owned by the caller.
func (s *Store) All() []string {
	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out
}

// Last returns the last n entries, oldest first. If n >= Len(), it returns
// every entry.
func (s *Store) Last(n int) []string {
	if n <= 0 {
		return nil
	}
	if n >= len(s.entries) {
		return s.All()
	}
	start := len(s.entries) - n
	out := make([]string, n)
	copy(out, s.entries[start:])
	return out
}

// LoadFile replaces the in-memory history with the non-empty lines of path,
// and resets the last-saved marker to the new length so a subsequent
// AppendFile does not re-emit the entries just loaded.
func (s *Store) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var entries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	s.entries = entries
	s.lastSaved = len(s.entries)
	return nil
}

// WriteFile overwrites path with the full history, one entry per line, and
// advances the last-saved marker to the current length.
func (s *Store) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(joinEntries(s.entries)), 0o644); err != nil {
		return err
	}
	s.lastSaved = len(s.entries)
	return nil
}

// AppendFile appends entries recorded after the last-saved marker to path,
// and advances the marker. It is a no-op when there is nothing new to write.
func (s *Store) AppendFile(path string) error {
	pending := s.entries[s.lastSaved:]
	if len(pending) == 0 {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(joinEntries(pending)); err != nil {
		return err
	}
	s.lastSaved = len(s.entries)
	return nil
}

func joinEntries(entries []string) string {
	if len(entries) == 0 {
		return ""
	}
	return strings.Join(entries, "\n") + "\n"
}
