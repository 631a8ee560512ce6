package commands

import (
	"errors"
	"fmt"
)

var (
	// ErrBadRequest marks structurally invalid input. It never depends on
	// what is stored.
	ErrBadRequest = errors.New("bad request")
	// ErrNotFound marks a referenced entity or relationship that is absent.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned by a Store when SaveChanges hits a unique key.
	ErrConflict = errors.New("conflict")

	errUnknownFailure = errors.New("unknown failure")
)

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrBadRequest, fmt.Sprintf(format, args...))
}

func notFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func IsBadRequest(err error) bool { return errors.Is(err, ErrBadRequest) }

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
