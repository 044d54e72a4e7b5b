package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound      = errors.New("resource not found")
	ErrSheetNotFound = fmt.Errorf("%w: sheet", ErrNotFound)

	// Input errors
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// Error constructors with context
func NewSheetNotFoundError(sheet string, location string) error {
	return fmt.Errorf("%w: %s (%s)", ErrSheetNotFound, sheet, location)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
