package apperr

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is returned when an input file is missing or unreadable.
	ErrFileNotFound = errors.New("file not found")
	// ErrUserInput is returned for invalid flags, types or actions.
	ErrUserInput = errors.New("invalid input")
	// ErrNotImplemented is returned for action and type combinations nbcli does not support.
	ErrNotImplemented = fmt.Errorf("%w: not implemented", ErrUserInput)
	// ErrCancelled is returned when the operator interrupts the operation.
	ErrCancelled = errors.New("operation cancelled by operator")
)

// Exit codes reported by the CLI.
const (
	ExitFailure   = 1
	ExitUserInput = 2
	ExitCancelled = 130
)

// FetchError reports a failed request against the inventory system.
type FetchError struct {
	// Category is the record category that was being fetched or mutated.
	Category string
	// Err is the underlying transport or API error.
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Category, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetch wraps err as a FetchError for the given category. A nil err stays nil.
func Fetch(category string, err error) error {
	if err == nil {
		return nil
	}
	return &FetchError{Category: category, Err: err}
}

// FileNotFound wraps an open failure for path.
func FileNotFound(path string, err error) error {
	return fmt.Errorf("%w: %q: %w", ErrFileNotFound, path, err)
}

// UserInput builds an ErrUserInput with a formatted detail message.
func UserInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUserInput, fmt.Sprintf(format, args...))
}

// NotImplemented reports an unsupported action for a record type.
func NotImplemented(action, category string) error {
	return fmt.Errorf("%w: -a %s -t %s", ErrNotImplemented, action, category)
}

// IsCancelled reports whether err was caused by an operator interrupt.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled) || errors.Is(err, context.Canceled)
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case IsCancelled(err):
		return ExitCancelled
	case errors.Is(err, ErrUserInput):
		return ExitUserInput
	default:
		return ExitFailure
	}
}

// Message renders err for the operator.
func Message(err error) string {
	var fetchErr *FetchError
	switch {
	case err == nil:
		return ""
	case IsCancelled(err):
		return "Exiting..."
	case errors.Is(err, ErrFileNotFound):
		return fmt.Sprintf("Error: %v", err)
	case errors.As(err, &fetchErr):
		return fmt.Sprintf("Error: NetBox request for %s failed: %v", fetchErr.Category, fetchErr.Err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
