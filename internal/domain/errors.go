package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")

	// ErrWriteFailed indicates writing the manifest failed
	ErrWriteFailed = errors.New("write failed")

	// ErrValidationFailed indicates the manifest references unknown documents
	// and strict validation was requested
	ErrValidationFailed = errors.New("manifest validation failed")

	// ErrInvalidManifest indicates an existing manifest file could not be decoded
	ErrInvalidManifest = errors.New("invalid manifest")
)

// WriteError represents a failure while writing an output file
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write error for %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrWriteFailed) match any WriteError
func (e *WriteError) Is(target error) bool {
	return target == ErrWriteFailed
}

// NewWriteError creates a new WriteError
func NewWriteError(path string, err error) *WriteError {
	return &WriteError{
		Path: path,
		Err:  err,
	}
}

// ValidationError carries the warnings that failed a strict validation
type ValidationError struct {
	Warnings []string
}

func (e *ValidationError) Error() string {
	if len(e.Warnings) == 1 {
		return fmt.Sprintf("%v: %s", ErrValidationFailed, e.Warnings[0])
	}
	return fmt.Sprintf("%v: %d warnings", ErrValidationFailed, len(e.Warnings))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError creates a new ValidationError
func NewValidationError(warnings []string) *ValidationError {
	return &ValidationError{Warnings: warnings}
}
