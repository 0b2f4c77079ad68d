package repo

import (
	"errors"
	"fmt"
)

// ErrInvalidID is returned before any store access when an identifier is not
// a well-formed 24-character hex ObjectID.
var ErrInvalidID = errors.New("invalid ObjectId format")

// PersistenceError wraps a store failure with the repository operation that
// hit it, so callers never need to inspect driver error types.
type PersistenceError struct {
	Op  string
	Err error
}

func (slf *PersistenceError) Error() string {
	return fmt.Sprintf("sentra_core %s: %v", slf.Op, slf.Err)
}

func (slf *PersistenceError) Unwrap() error {
	return slf.Err
}

func persistence(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
