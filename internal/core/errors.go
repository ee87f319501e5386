package core

import (
	"errors"
	"fmt"
)

// Store and service failures. Callers match them with errors.Is.
var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrNotInitialized     = errors.New("store not initialized")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrOwnerNotFound      = errors.New("owner not found")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrRecordNotFound     = errors.New("record not found")
	ErrGoalNotFound       = errors.New("goal not found")
)

// Field-level validation failures; all of them match ErrValidation.
var (
	ErrEmptyName      = validationError("empty name")
	ErrEmptyEmail     = validationError("empty email")
	ErrEmptyPassword  = validationError("empty password")
	ErrEmptyLabel     = validationError("empty label")
	ErrEmptyCategory  = validationError("empty category")
	ErrInvalidDate    = validationError("invalid entry date, expected YYYY-MM-DD")
	ErrInvalidAmount  = validationError("invalid amount")
	ErrZeroAmount     = validationError("amount cannot be zero")
	ErrInvalidKind    = validationError("invalid entry kind")
	ErrLabelTooLong   = validationError("label too long (max 200 characters)")
	ErrInvalidOwnerID = validationError("invalid owner id")
)

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
