package cli

import (
	"errors"

	"github.com/thenoetrevino/boards/internal/database"
	"github.com/thenoetrevino/boards/internal/models"
	"github.com/thenoetrevino/boards/internal/seed"
	"github.com/thenoetrevino/boards/internal/types"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage errors, server failures, or anything not listed below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or unknown move types.
	ExitUsage = 2

	// ExitNotFound indicates a requested board or column was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Seed files that cannot be parsed or hold no boards.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Bad IDs, empty or overlong names, duplicate IDs.
	ExitValidation = 5
)

// ErrNotFound is returned when a command names a board or column the
// repository does not hold
var ErrNotFound = errors.New("not found")

// ExitCode maps an error returned by a command to its exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, database.ErrInvalidMoveType),
		errors.Is(err, database.ErrMissingTargetTask):
		return ExitUsage
	case errors.Is(err, seed.ErrNoBoards):
		return ExitDataErr
	case errors.Is(err, types.ErrInvalidID),
		errors.Is(err, models.ErrEmptyName),
		errors.Is(err, models.ErrNameTooLong),
		errors.Is(err, database.ErrDuplicateID):
		return ExitValidation
	}
	return ExitError
}

// Suggestion returns a hint for errors the user can fix, or ""
func Suggestion(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "run 'boards board list' to see board and column IDs"
	case errors.Is(err, database.ErrInvalidMoveType):
		return "use --type=move-to-column or --type=move-task-on-task"
	case errors.Is(err, database.ErrMissingTargetTask):
		return "pass --to-task with the task to drop next to"
	case errors.Is(err, types.ErrInvalidID):
		return "IDs start with b-, bc- or bt-"
	}
	return ""
}
