// Package history keeps the log of mutating actions used by undo.
// The most recent record is always the first line of the file.
package history

import (
	"errors"
	"fmt"

	"github.com/Makepad-fr/ihft/internal/model"
	"github.com/Makepad-fr/ihft/internal/store/linestore"
)

// ErrEmpty is returned by Peek and Pop when there is no record.
var ErrEmpty = errors.New("history is empty")

// ErrCorrupt is matched by every *CorruptError.
var ErrCorrupt = errors.New("corrupt history")

// CorruptError reports a history line that is not a valid record.
type CorruptError struct {
	Line string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt history record %q", e.Line)
}

func (e *CorruptError) Is(target error) bool { return target == ErrCorrupt }
func (e *CorruptError) Unwrap() error        { return e.Err }

// Store is the history log.
type Store struct {
	lines *linestore.Store
}

// Open loads the history file at path, creating it if needed.
func Open(path string) (*Store, error) {
	ls, err := linestore.Load(path, linestore.WithPosition(linestore.Front))
	if err != nil {
		return nil, err
	}
	return &Store{lines: ls}, nil
}

// Len returns the number of records.
func (s *Store) Len() int { return s.lines.Len() }

// Path returns the backing file location.
func (s *Store) Path() string { return s.lines.Path() }

// Push logs r as the most recent action.
func (s *Store) Push(r model.Record) error {
	return s.lines.Insert(r.String())
}

// Peek parses the most recent record without removing it.
func (s *Store) Peek() (model.Record, error) {
	if s.lines.Len() == 0 {
		return model.Record{}, ErrEmpty
	}
	line := s.lines.Entries()[0]
	r, err := model.ParseRecord(line)
	if err != nil {
		return model.Record{}, &CorruptError{Line: line, Err: err}
	}
	return r, nil
}

// Pop drops the most recent record.
func (s *Store) Pop() error {
	if s.lines.Len() == 0 {
		return ErrEmpty
	}
	return s.lines.RemoveAt(0)
}

// Records parses every record, most recent first.
func (s *Store) Records() ([]model.Record, error) {
	lines := s.lines.Entries()
	out := make([]model.Record, 0, len(lines))
	for _, line := range lines {
		r, err := model.ParseRecord(line)
		if err != nil {
			return nil, &CorruptError{Line: line, Err: err}
		}
		out = append(out, r)
	}
	return out, nil
}
