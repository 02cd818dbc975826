package app

import (
	"errors"
	"fmt"
)

// Command errors.
var (
	// ErrUnknownLayout indicates a layout name that is not registered.
	ErrUnknownLayout = errors.New("unknown layout")

	// ErrEmptyText indicates a keys command without text to classify.
	ErrEmptyText = errors.New("no text to classify")
)

// OperationError represents an error that occurred during a command.
type OperationError struct {
	Op     string // Command name (e.g., "show", "shuffle")
	Target string // Target of the command (e.g., layout name, file path)
	Err    error  // Underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{
		Op:     op,
		Target: target,
		Err:    err,
	}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}

	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is implements errors.Is for OperationError.
// Matches both the wrapper itself and the wrapped error.
func (e *OperationError) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*OperationError); ok {
		return e == t
	}
	return errors.Is(e.Err, target)
}
