package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("event not found")
	ErrInvalidState = errors.New("event is no longer pending")
)

// StorageError wraps a failure of the backing datastore.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
