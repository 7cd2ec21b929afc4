package models

import "github.com/thenoetrevino/boards/internal/types"

// Task represents a single card on the kanban board
type Task struct {
	ID          types.TaskID `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description" yaml:"description"`
}

// NewTask creates a task with a fresh ID
func NewTask(name, description string) *Task {
	return &Task{
		ID:          types.NewTaskID(),
		Name:        name,
		Description: description,
	}
}

// Clone returns a copy of the task
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// Validate checks the task against the schema
func (t *Task) Validate() error {
	if err := t.ID.Validate(); err != nil {
		return err
	}
	return validateName(t.Name, MaxNameLength)
}
