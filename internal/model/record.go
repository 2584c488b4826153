package model

import (
	"errors"
	"fmt"
	"strings"
)

// Kind tags a history record with the action it describes.
type Kind int

const (
	// Added records that a thing was put on the list.
	Added Kind = iota + 1
	// Removed records that a thing was taken off the list (rm or pick).
	Removed
)

const (
	verbAdd    = "add"
	verbRemove = "remove"
)

// ErrMalformedRecord is returned by ParseRecord for lines that do not
// describe a known action.
var ErrMalformedRecord = errors.New("malformed history record")

func (k Kind) String() string {
	switch k {
	case Added:
		return verbAdd
	case Removed:
		return verbRemove
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Record is one logged mutation of the things list.
type Record struct {
	Kind  Kind
	Value string
}

// AddedRecord and RemovedRecord build the two record variants.
func AddedRecord(v string) Record   { return Record{Kind: Added, Value: v} }
func RemovedRecord(v string) Record { return Record{Kind: Removed, Value: v} }

// String renders the on-disk form: "<verb> <value>".
func (r Record) String() string {
	return r.Kind.String() + " " + r.Value
}

// ParseRecord splits a history line on its first space.
// Everything after the verb is the value, spaces included. The value may be
// empty since a blank line is a valid thing.
func ParseRecord(line string) (Record, error) {
	verb, value, ok := strings.Cut(line, " ")
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
	}
	switch verb {
	case verbAdd:
		return AddedRecord(value), nil
	case verbRemove:
		return RemovedRecord(value), nil
	}
	return Record{}, fmt.Errorf("%w: unknown verb %q", ErrMalformedRecord, verb)
}
