package database

import "errors"

// Repository errors
var (
	// ErrInvalidMoveType indicates MoveTaskParams with an unknown Type
	ErrInvalidMoveType = errors.New("invalid move type")

	// ErrMissingTargetTask indicates a task-on-task move without a target task
	ErrMissingTargetTask = errors.New("move-task-on-task requires a target task")

	// ErrDuplicateID indicates an entity whose ID is already in use
	ErrDuplicateID = errors.New("id already exists")

	// ErrUnknownBackend indicates a storage backend name that is not supported
	ErrUnknownBackend = errors.New("unknown storage backend")
)
