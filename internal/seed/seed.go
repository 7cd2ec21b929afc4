// Package seed loads boards from a YAML document into a repository and
// exports repository snapshots back to YAML.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/thenoetrevino/boards/internal/database"
	"github.com/thenoetrevino/boards/internal/models"
	"github.com/thenoetrevino/boards/internal/types"
	"gopkg.in/yaml.v3"
)

// ErrNoBoards is returned when a seed document has no boards key or an empty list
var ErrNoBoards = errors.New("seed document has no boards")

// Document is the on-disk seed format:
//
//	boards:
//	  - name: Sprint
//	    columns:
//	      - name: Todo
//	        tasks:
//	          - name: Fix auth bug
//	            description: "**urgent**"
//
// IDs are optional; missing ones are generated.
type Document struct {
	Boards []*models.Board `yaml:"boards"`
}

// Parse decodes a seed document and fills in missing IDs
func Parse(r io.Reader) ([]*models.Board, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoBoards
		}
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	if len(doc.Boards) == 0 {
		return nil, ErrNoBoards
	}

	for _, b := range doc.Boards {
		if err := assignIDs(b); err != nil {
			return nil, fmt.Errorf("failed to parse seed: %w", err)
		}
	}
	return doc.Boards, nil
}

// assignIDs generates IDs for entries that omit them. Null entries, which
// YAML produces for a bare "-", are rejected.
func assignIDs(b *models.Board) error {
	if b == nil {
		return errors.New("empty board entry")
	}
	if b.ID == "" {
		b.ID = types.NewBoardID()
	}
	if b.Columns == nil {
		b.Columns = []*models.Column{}
	}
	for _, c := range b.Columns {
		if c == nil {
			return fmt.Errorf("empty column entry in board %q", b.Name)
		}
		if c.ID == "" {
			c.ID = types.NewColumnID()
		}
		if c.Tasks == nil {
			c.Tasks = []*models.Task{}
		}
		for _, t := range c.Tasks {
			if t == nil {
				return fmt.Errorf("empty task entry in column %q", c.Name)
			}
			if t.ID == "" {
				t.ID = types.NewTaskID()
			}
		}
	}
	return nil
}

// Apply creates every board in repo, in document order.
// It stops at the first failure; boards created before it are kept.
func Apply(ctx context.Context, repo database.BoardsRepository, boards []*models.Board) error {
	for _, b := range boards {
		if err := repo.CreateBoard(ctx, b); err != nil {
			return fmt.Errorf("failed to seed board %q: %w", b.Name, err)
		}
		slog.Info("seeded board", "board_id", b.ID, "name", b.Name, "columns", len(b.Columns))
	}
	return nil
}

// Load reads the seed file at path and applies it to repo
func Load(ctx context.Context, repo database.BoardsRepository, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer func() { _ = file.Close() }()

	boards, err := Parse(file)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return Apply(ctx, repo, boards)
}

// Default is the board created on first run when no seed file is
// configured: the three classic kanban columns with one starter task.
func Default() []*models.Board {
	board := models.NewBoard("My Board")
	todo := models.NewColumn("Todo")
	todo.Tasks = append(todo.Tasks, models.NewTask("Try moving me",
		"Use **H** / **L** to move a task between columns and **K** / **J** to reorder it."))
	board.Columns = []*models.Column{
		todo,
		models.NewColumn("In Progress"),
		models.NewColumn("Done"),
	}
	return []*models.Board{board}
}

// Export writes boards as a seed document. The output loads back with
// Parse, IDs included.
func Export(w io.Writer, boards []*models.Board) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Document{Boards: boards}); err != nil {
		return fmt.Errorf("failed to export boards: %w", err)
	}
	return enc.Close()
}
