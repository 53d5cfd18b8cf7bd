// Package errors provides sentinel errors and error types for pgn2anki.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrReadInput indicates the PGN source could not be read.
	ErrReadInput = errors.New("cannot read input")

	// ErrWriteOutput indicates the line file could not be created or written.
	ErrWriteOutput = errors.New("cannot write output")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownFormat indicates an output format name that is not supported.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrGradeFailed indicates the review application rejected a grade.
	ErrGradeFailed = errors.New("grading failed")
)

// InputError wraps a read failure with the name of the source.
// It matches ErrReadInput with errors.Is() in addition to the wrapped error.
type InputError struct {
	Err  error  // The underlying error
	File string // Source file name (if known)
}

// Error returns a formatted error message including the source name.
func (e *InputError) Error() string {
	name := e.File
	if name == "" {
		name = "input"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v: %v", name, ErrReadInput, e.Err)
	}
	return fmt.Sprintf("%s: %v", name, ErrReadInput)
}

// Unwrap returns the underlying error.
func (e *InputError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrReadInput.
func (e *InputError) Is(target error) bool {
	return target == ErrReadInput
}

// OutputError wraps a write failure with the name of the destination.
// It matches ErrWriteOutput with errors.Is() in addition to the wrapped error.
type OutputError struct {
	Err  error
	File string
}

// Error returns a formatted error message including the destination name.
func (e *OutputError) Error() string {
	name := e.File
	if name == "" {
		name = "output"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v: %v", name, ErrWriteOutput, e.Err)
	}
	return fmt.Sprintf("%s: %v", name, ErrWriteOutput)
}

// Unwrap returns the underlying error.
func (e *OutputError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrWriteOutput.
func (e *OutputError) Is(target error) bool {
	return target == ErrWriteOutput
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
