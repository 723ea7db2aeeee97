package core

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when the source has no non-blank line.
var ErrEmptyInput = errors.New("empty file: no rows found")

// ErrFileTooLarge is returned when the source exceeds the configured limit.
var ErrFileTooLarge = errors.New("file too large")

// ErrNoShape is returned by Classify when no shape definition is registered.
var ErrNoShape = errors.New("no shape definitions registered")

// ReadError wraps a failure to read the source. It is fatal for the parse.
type ReadError struct {
	Name string
	Err  error
}

func (e *ReadError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("read source: %v", e.Err)
	}
	return fmt.Sprintf("read source %s: %v", e.Name, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
