package cli

import (
	"errors"

	"github.com/Makepad-fr/ihft/internal/dispatch"
)

// Exit codes for CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError covers IO failures, an empty list and an empty history.
	ExitError = 1

	// ExitUsage indicates bad arguments, unknown commands or flags, or a
	// thing that cannot be stored (line breaks).
	ExitUsage = 2

	// ExitNotFound indicates the thing to remove is not on the list.
	ExitNotFound = 3

	// ExitDataErr indicates a malformed history record.
	ExitDataErr = 4
)

// usageError marks errors caused by how the command was invoked.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	var ue *usageError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &ue), errors.Is(err, dispatch.ErrInvalidThing):
		return ExitUsage
	case errors.Is(err, dispatch.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, dispatch.ErrCorruptHistory):
		return ExitDataErr
	}
	return ExitError
}
