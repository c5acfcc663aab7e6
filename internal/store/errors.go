package store

import "fmt"

// PersistenceError represents a storage read/write or serialization failure.
// The working snapshot is left untouched when one is returned, so no edit is
// ever lost to a failed save.
type PersistenceError struct {
	Op    string
	Key   string
	Cause error
}

func (e *PersistenceError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("persistence error: %s %s: %v", e.Op, e.Key, e.Cause)
	}
	return fmt.Sprintf("persistence error: %s: %v", e.Op, e.Cause)
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}

// MutationError represents a rejected mutation (unknown field or collection,
// out-of-range index, wrong item type). The working snapshot is untouched.
type MutationError struct {
	Message string
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("mutation error: %s", e.Message)
}

func mutationErrorf(format string, args ...any) *MutationError {
	return &MutationError{Message: fmt.Sprintf(format, args...)}
}
