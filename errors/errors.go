package errors

import (
	"errors"
	"fmt"
)

// Kinds. Every error the bot shows to the user wraps exactly one of them,
// except ErrContactAlreadyExists which is reported as a plain outcome.
var (
	ErrValidation     = fmt.Errorf("validation error")
	ErrNotFound       = fmt.Errorf("not found")
	ErrMalformedInput = fmt.Errorf("malformed input")
)

var (
	ErrInvalidName          = kinded(ErrValidation, "name must be a single non-empty word")
	ErrInvalidPhone         = kinded(ErrValidation, "phone number can only consist of 10 digits")
	ErrInvalidBirthday      = kinded(ErrValidation, "birthday must match the dd-mm-yyyy format")
	ErrInvalidPageSize      = kinded(ErrValidation, "page size must be a positive number")
	ErrMissingBirthday      = kinded(ErrValidation, "absent necessary data about birthday")
	ErrSearchPhraseTooShort = kinded(ErrValidation, "search phrase must contain at least 2 characters")

	ErrContactNotFound = kinded(ErrNotFound, "contact was not found")
	ErrPhoneNotFound   = kinded(ErrNotFound, "phone was not found")

	ErrMissingCommandPart = kinded(ErrMalformedInput, "missing command part")
	ErrUnsupportedCommand = kinded(ErrMalformedInput, "unsupported command")
	ErrEmptyCommand       = kinded(ErrMalformedInput, "empty command")

	ErrContactAlreadyExists = fmt.Errorf("contact with this name already exists")
)

// kindError keeps its own message while still matching its kind with errors.Is.
type kindError struct {
	kind error
	msg  string
}

func kinded(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// Is and As are re-exported so callers importing this package keep access to the standard helpers.
func Is(err, target error) bool { return errors.Is(err, target) }

func As(err error, target any) bool { return errors.As(err, target) }
