// Package dispatch runs one user operation against the things list and
// the history log.
package dispatch

import (
	"fmt"
	"log/slog"

	"github.com/Makepad-fr/ihft/internal/history"
	"github.com/Makepad-fr/ihft/internal/model"
	"github.com/Makepad-fr/ihft/internal/store/linestore"
)

// Dispatcher owns both stores for the duration of one invocation.
// History is written only after the things list has been saved.
type Dispatcher struct {
	things *linestore.Store
	hist   *history.Store
}

// New wires a dispatcher over already loaded stores.
func New(things *linestore.Store, hist *history.Store) *Dispatcher {
	return &Dispatcher{things: things, hist: hist}
}

// Open loads the things list and the history log from disk.
// opts apply to the things list only.
func Open(thingsPath, histPath string, opts ...linestore.Option) (*Dispatcher, error) {
	things, err := linestore.Load(thingsPath, opts...)
	if err != nil {
		return nil, fmt.Errorf("load things: %w", err)
	}
	hist, err := history.Open(histPath)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return New(things, hist), nil
}

// Add puts item on the list. An empty item is a no-op.
func (d *Dispatcher) Add(item string) error {
	if item == "" {
		slog.Debug("add skipped, empty item")
		return nil
	}
	if err := d.things.Insert(item); err != nil {
		return fmt.Errorf("add: %w", err)
	}
	slog.Info("thing added", "item", item)
	return d.log(model.AddedRecord(item))
}

// List returns the things in stored order.
func (d *Dispatcher) List() []string {
	return d.things.Entries()
}

// Remove takes the first occurrence of item off the list.
func (d *Dispatcher) Remove(item string) error {
	if err := d.things.Remove(item); err != nil {
		return fmt.Errorf("remove: %w", err)
	}
	slog.Info("thing removed", "item", item)
	return d.log(model.RemovedRecord(item))
}

// Pick removes a random thing and returns it.
// Undoing a pick puts the thing back. When only the history write fails the
// thing is still returned, together with an error matching ErrHistoryWrite.
func (d *Dispatcher) Pick() (string, error) {
	item, err := d.things.PickRandom()
	if err != nil {
		return "", fmt.Errorf("pick: %w", err)
	}
	slog.Info("thing picked", "item", item, "remaining", d.things.Len())
	if err := d.log(model.RemovedRecord(item)); err != nil {
		return item, err
	}
	return item, nil
}

// Undo reverts the most recent logged action and drops its record.
// Undo is not itself logged.
func (d *Dispatcher) Undo() (model.Record, error) {
	r, err := d.hist.Peek()
	if err != nil {
		return model.Record{}, err
	}

	switch r.Kind {
	case model.Added:
		err = d.things.Remove(r.Value)
	case model.Removed:
		err = d.things.Insert(r.Value)
	default:
		err = fmt.Errorf("%w: unknown kind %v", ErrCorruptHistory, r.Kind)
	}
	if err != nil {
		return model.Record{}, fmt.Errorf("undo %s: %w", r, err)
	}

	if err := d.hist.Pop(); err != nil {
		return r, fmt.Errorf("history: %w", err)
	}
	slog.Info("action undone", "record", r.String())
	return r, nil
}

// History returns the logged actions, most recent first.
func (d *Dispatcher) History() ([]model.Record, error) {
	return d.hist.Records()
}

func (d *Dispatcher) log(r model.Record) error {
	if err := d.hist.Push(r); err != nil {
		slog.Error("history write failed", "record", r.String(), "error", err)
		return fmt.Errorf("%w: %w", ErrHistoryWrite, err)
	}
	return nil
}
