package linestore

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Line-backed storage. One file per list, one entry per line, rewritten in
// full on every mutation. No locking here; see the lock package.

// Position decides where Insert puts new entries.
type Position int

const (
	Front Position = iota
	Back
)

var (
	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = errors.New("not found")
	// ErrEmpty is returned by PickRandom on a store with no entries.
	ErrEmpty = errors.New("store is empty")
	// ErrInvalidEntry is returned for entries that would break the
	// one-entry-per-line format.
	ErrInvalidEntry = errors.New("entry must not contain a line break")
)

// NotFoundError carries the value Remove could not find.
type NotFoundError struct {
	Value string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%q not found", e.Value)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// Store is an ordered list of strings mirrored to a text file.
type Store struct {
	path     string
	entries  []string
	position Position
	intn     func(n int) int
}

// Option configures a Store at load time.
type Option func(*Store)

// WithPosition sets the insertion policy. The default is Front.
func WithPosition(p Position) Option {
	return func(s *Store) { s.position = p }
}

// WithRand replaces the random source used by PickRandom.
// intn must return a value in [0, n).
func WithRand(intn func(n int) int) Option {
	return func(s *Store) { s.intn = intn }
}

// Load reads the file at path, creating it (and its directory) when absent.
func Load(path string, opts ...Option) (*Store, error) {
	s := &Store{path: path, position: Front, intn: rand.IntN}
	for _, opt := range opts {
		opt(s)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close %s: %w", path, err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	s.entries = splitLines(string(b))
	return s, nil
}

func splitLines(content string) []string {
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return []string{}
	}
	lines := strings.Split(content, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	return lines
}

// Path returns the backing file location.
func (s *Store) Path() string { return s.path }

// Len returns the number of entries.
func (s *Store) Len() int { return len(s.entries) }

// Entries returns a copy of the entries in stored order.
func (s *Store) Entries() []string { return slices.Clone(s.entries) }

// Insert adds item at the store's insertion position and rewrites the file.
// A failed write is not rolled back.
func (s *Store) Insert(item string) error {
	if strings.ContainsAny(item, "\r\n") {
		return ErrInvalidEntry
	}
	if s.position == Back {
		s.entries = append(s.entries, item)
	} else {
		s.entries = slices.Insert(s.entries, 0, item)
	}
	return s.save()
}

// Remove deletes the first entry equal to item.
func (s *Store) Remove(item string) error {
	i := slices.Index(s.entries, item)
	if i < 0 {
		return &NotFoundError{Value: item}
	}
	return s.RemoveAt(i)
}

// RemoveAt deletes the entry at index i.
func (s *Store) RemoveAt(i int) error {
	if i < 0 || i >= len(s.entries) {
		return fmt.Errorf("index out of range: have %d, got %d", len(s.entries), i)
	}
	s.entries = slices.Delete(s.entries, i, i+1)
	return s.save()
}

// PickRandom removes and returns an entry chosen uniformly at random.
func (s *Store) PickRandom() (string, error) {
	if len(s.entries) == 0 {
		return "", ErrEmpty
	}
	i := s.intn(len(s.entries))
	v := s.entries[i]
	if err := s.RemoveAt(i); err != nil {
		return "", err
	}
	return v, nil
}

func (s *Store) save() error {
	var b strings.Builder
	for _, e := range s.entries {
		b.WriteString(e)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(s.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
