package dispatch

import (
	"errors"

	"github.com/Makepad-fr/ihft/internal/history"
	"github.com/Makepad-fr/ihft/internal/store/linestore"
)

// Dispatcher errors. They alias the store errors so callers can match with
// errors.Is without importing the storage packages.
var (
	ErrNotFound       = linestore.ErrNotFound
	ErrEmptyStore     = linestore.ErrEmpty
	ErrInvalidThing   = linestore.ErrInvalidEntry
	ErrNothingToUndo  = history.ErrEmpty
	ErrCorruptHistory = history.ErrCorrupt
)

// ErrHistoryWrite means the things list was changed but the action could not
// be logged, so it cannot be undone.
var ErrHistoryWrite = errors.New("history write failed")
