package store

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	ErrStorageRead  = errors.New("storage read failed")
	ErrStorageWrite = errors.New("storage write failed")
	ErrNotFound     = errors.New("room not found")
	ErrDuplicateID  = errors.New("room id already exists")
)

// StorageReadError means the backing store exists but could not be read or
// parsed. Nothing on disk is modified when it is returned.
type StorageReadError struct {
	Location string
	Err      error
}

func (e *StorageReadError) Error() string {
	return fmt.Sprintf("read rooms from %s: %v", e.Location, e.Err)
}

func (e *StorageReadError) Unwrap() error { return e.Err }

func (e *StorageReadError) Is(target error) bool { return target == ErrStorageRead }

// StorageWriteError means the medium rejected a write. The previous
// collection is left in place.
type StorageWriteError struct {
	Location string
	Err      error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("write rooms to %s: %v", e.Location, e.Err)
}

func (e *StorageWriteError) Unwrap() error { return e.Err }

func (e *StorageWriteError) Is(target error) bool { return target == ErrStorageWrite }

// NotFoundError is returned when no room has the requested id.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("room %d not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// DuplicateIDError is returned when a room id is already taken.
type DuplicateIDError struct {
	ID int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("room id %d already exists", e.ID)
}

func (e *DuplicateIDError) Is(target error) bool { return target == ErrDuplicateID }

func readError(location string, err error) error {
	var re *StorageReadError
	if errors.As(err, &re) {
		return err
	}
	return &StorageReadError{Location: location, Err: err}
}

func writeError(location string, err error) error {
	var we *StorageWriteError
	if errors.As(err, &we) {
		return err
	}
	return &StorageWriteError{Location: location, Err: err}
}
