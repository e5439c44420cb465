package repositories

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrPersistence covers an unreachable store and rejected writes. The
	// operation that returned it left no partial state behind.
	ErrPersistence = errors.New("persistence error")

	ErrDuplicateIdentity = errors.New("duplicate identity")
	ErrUsernameTaken     = fmt.Errorf("%w: username is already taken", ErrDuplicateIdentity)
	ErrEmailTaken        = fmt.Errorf("%w: user already exists with this email", ErrDuplicateIdentity)
)

func persistenceError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}
