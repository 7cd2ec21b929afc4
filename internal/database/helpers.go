package database

import (
	"fmt"

	"github.com/thenoetrevino/boards/internal/models"
	"github.com/thenoetrevino/boards/internal/types"
)

// ============================================================================
// ID bookkeeping shared by the backends
// ============================================================================

func findBoard(boards []*models.Board, id types.BoardID) *models.Board {
	for _, b := range boards {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// boardIDs lists the board's ID and every ID nested under it
func boardIDs(b *models.Board) []string {
	ids := []string{string(b.ID)}
	for _, c := range b.Columns {
		ids = append(ids, columnIDs(c)...)
	}
	return ids
}

// columnIDs lists the column's ID and the IDs of its tasks
func columnIDs(c *models.Column) []string {
	ids := []string{string(c.ID)}
	for _, t := range c.Tasks {
		ids = append(ids, string(t.ID))
	}
	return ids
}

// checkUnused returns ErrDuplicateID if any of ids is already stored, or
// repeats within ids itself
func checkUnused(boards []*models.Board, ids []string) error {
	used := make(map[string]bool)
	for _, b := range boards {
		for _, id := range boardIDs(b) {
			used[id] = true
		}
	}
	for _, id := range ids {
		if used[id] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, id)
		}
		used[id] = true
	}
	return nil
}
