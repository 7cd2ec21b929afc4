package models

import "github.com/thenoetrevino/boards/internal/types"

// Column represents a kanban board column (e.g., "Todo", "In Progress", "Done").
// Tasks are kept in display order.
type Column struct {
	ID    types.ColumnID `json:"id" yaml:"id"`
	Name  string         `json:"name" yaml:"name"`
	Tasks []*Task        `json:"tasks" yaml:"tasks"`
}

// NewColumn creates an empty column with a fresh ID
func NewColumn(name string) *Column {
	return &Column{
		ID:    types.NewColumnID(),
		Name:  name,
		Tasks: []*Task{},
	}
}

// TaskIndex returns the position of the task in the column, or -1
func (c *Column) TaskIndex(id types.TaskID) int {
	for i, t := range c.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the column
func (c *Column) Clone() *Column {
	if c == nil {
		return nil
	}
	tasks := make([]*Task, len(c.Tasks))
	for i, t := range c.Tasks {
		tasks[i] = t.Clone()
	}
	return &Column{ID: c.ID, Name: c.Name, Tasks: tasks}
}

// Validate checks the column, and every task in it, against the schema
func (c *Column) Validate() error {
	if err := c.ID.Validate(); err != nil {
		return err
	}
	if err := validateName(c.Name, MaxColumnNameLength); err != nil {
		return err
	}
	for _, t := range c.Tasks {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}
