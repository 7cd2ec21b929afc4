package models

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Name limits
const (
	MaxNameLength       = 255
	MaxColumnNameLength = 50
)

// Validation errors
var (
	// ErrEmptyName indicates a board, column or task without a name
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrNameTooLong indicates a name over its length limit
	ErrNameTooLong = errors.New("name is too long")
)

func validateName(name string, limit int) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > limit {
		return fmt.Errorf("%w: %d characters max", ErrNameTooLong, limit)
	}
	return nil
}
