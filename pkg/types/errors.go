package types

import "errors"

// Error categories. Every error returned by farmstock packages wraps one of
// these so callers can classify it with errors.Is.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")
	ErrStorage    = errors.New("storage error")
)

// Validation errors.
var (
	ErrInvalidID        = wrap(ErrValidation, "identifier must be a positive integer")
	ErrDuplicateID      = wrap(ErrValidation, "identifier already in use")
	ErrInvalidSpecies   = wrap(ErrValidation, "unknown species")
	ErrInvalidThreshold = wrap(ErrValidation, "weight threshold must be positive")
	ErrInvalidAnimal    = wrap(ErrValidation, "invalid animal")
)

// Reporting errors.
var (
	ErrNoAnimals = wrap(ErrNotFound, "no farm animals")
)

// Store lifecycle errors.
var (
	ErrStoreDetached   = wrap(ErrStorage, "store is detached")
	ErrAlreadyAttached = wrap(ErrStorage, "store is already attached")
)

// categorized is a sentinel that also matches its category.
type categorized struct {
	category error
	msg      string
}

func wrap(category error, msg string) error {
	return &categorized{category: category, msg: msg}
}

func (e *categorized) Error() string { return e.msg }

func (e *categorized) Unwrap() error { return e.category }

// IsValidation reports whether err is a user input problem.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFound reports whether err is a not-found condition.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsStorage reports whether err came from the persistent store.
func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}
