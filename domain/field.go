// Package domain contains core concepts of the address book.
// This file defines the validated fields a contact is made of.
// Fields are immutable once built and validated by the domain.
package domain

import (
	"address-book/errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// BirthdayLayout is the external date format, dd-mm-yyyy.
const BirthdayLayout = "02-01-2006"

var validate = validator.New()

type nameInput struct {
	Value string `validate:"required"`
}

type phoneInput struct {
	Value string `validate:"len=10,number"`
}

type birthdayInput struct {
	Value string `validate:"datetime=02-01-2006"`
}

// Name uniquely identifies a contact.
type Name string

func NewName(s string) (Name, error) {
	if err := validate.Struct(nameInput{Value: s}); err != nil || strings.ContainsFunc(s, unicode.IsSpace) {
		return "", fmt.Errorf("%w, got %q", errors.ErrInvalidName, s)
	}
	return Name(s), nil
}

func (n Name) String() string {
	return string(n)
}

// Phone is a string of exactly 10 decimal digits.
type Phone string

func NewPhone(s string) (Phone, error) {
	if err := validate.Struct(phoneInput{Value: s}); err != nil {
		return "", fmt.Errorf("%w, got %q", errors.ErrInvalidPhone, s)
	}
	return Phone(s), nil
}

func (p Phone) String() string {
	return string(p)
}

// Birthday is an optional calendar date. The zero value means no birthday is known.
type Birthday struct {
	date time.Time
	set  bool
}

// ParseBirthday accepts an empty string (no birthday) or a dd-mm-yyyy date.
func ParseBirthday(s string) (Birthday, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Birthday{}, nil
	}
	if err := validate.Struct(birthdayInput{Value: s}); err != nil {
		return Birthday{}, fmt.Errorf("%w, got %q", errors.ErrInvalidBirthday, s)
	}
	date, err := time.Parse(BirthdayLayout, s)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w, got %q", errors.ErrInvalidBirthday, s)
	}
	return Birthday{date: date, set: true}, nil
}

func (b Birthday) IsSet() bool {
	return b.set
}

func (b Birthday) Date() time.Time {
	return b.date
}

// String formats the birthday back to dd-mm-yyyy, or "" when unset.
func (b Birthday) String() string {
	if !b.IsSet() {
		return ""
	}
	return b.date.Format(BirthdayLayout)
}

// DaysUntilNext counts whole days from now's calendar date to the next occurrence of the birthday.
// The comparison is made on dates only: a birthday falling today yields 0.
// A 29 February birthday is celebrated on 1 March in non-leap years.
func (b Birthday) DaysUntilNext(now time.Time) (int, error) {
	if !b.IsSet() {
		return 0, errors.ErrMissingBirthday
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	candidate := time.Date(today.Year(), b.date.Month(), b.date.Day(), 0, 0, 0, 0, time.UTC)
	if today.After(candidate) {
		candidate = time.Date(today.Year()+1, b.date.Month(), b.date.Day(), 0, 0, 0, 0, time.UTC)
	}
	return int(candidate.Sub(today).Hours() / 24), nil
}
