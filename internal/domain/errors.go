package domain

import (
	"errors"

	"git.appkode.ru/pub/go/failure"
)

// StorageError is a failed repository call. Code is what the caller reports
// upstream; Op names the repository operation.
type StorageError struct {
	Op   string
	Code failure.ErrorCode
	Err  error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorageError(op string, code failure.ErrorCode, err error) *StorageError {
	return &StorageError{Op: op, Code: code, Err: err}
}

// CodeOf returns the code of the first StorageError in the chain.
func CodeOf(err error) (failure.ErrorCode, bool) {
	if se := (*StorageError)(nil); errors.As(err, &se) {
		return se.Code, true
	}

	return "", false
}
