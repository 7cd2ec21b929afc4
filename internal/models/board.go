package models

import "github.com/thenoetrevino/boards/internal/types"

// Board is the top-level container of columns.
// Boards are the top-level organizational unit; there is no project above them.
type Board struct {
	ID      types.BoardID `json:"id" yaml:"id"`
	Name    string        `json:"name" yaml:"name"`
	Columns []*Column     `json:"columns" yaml:"columns"`
}

// NewBoard creates an empty board with a fresh ID
func NewBoard(name string) *Board {
	return &Board{
		ID:      types.NewBoardID(),
		Name:    name,
		Columns: []*Column{},
	}
}

// Column returns the board's column with the given ID, or nil
func (b *Board) Column(id types.ColumnID) *Column {
	for _, c := range b.Columns {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	columns := make([]*Column, len(b.Columns))
	for i, c := range b.Columns {
		columns[i] = c.Clone()
	}
	return &Board{ID: b.ID, Name: b.Name, Columns: columns}
}

// Validate checks the board, its columns and their tasks against the schema
func (b *Board) Validate() error {
	if err := b.ID.Validate(); err != nil {
		return err
	}
	if err := validateName(b.Name, MaxNameLength); err != nil {
		return err
	}
	for _, c := range b.Columns {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// CloneBoards deep-copies a board collection
func CloneBoards(boards []*Board) []*Board {
	out := make([]*Board, len(boards))
	for i, b := range boards {
		out[i] = b.Clone()
	}
	return out
}

// FindColumn scans every board for the column
func FindColumn(boards []*Board, id types.ColumnID) *Column {
	for _, b := range boards {
		if c := b.Column(id); c != nil {
			return c
		}
	}
	return nil
}

// FindTask scans every board for the task and returns it with the column holding it
func FindTask(boards []*Board, id types.TaskID) (*Task, *Column) {
	for _, b := range boards {
		for _, c := range b.Columns {
			if i := c.TaskIndex(id); i >= 0 {
				return c.Tasks[i], c
			}
		}
	}
	return nil, nil
}
