// Package domain contains core concepts of the address book.
// This file defines the Record aggregate: one person's name, phones and birthday.
// No storage or terminal logic should be added here.
package domain

import (
	"address-book/errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

type Record struct {
	Name     Name
	Phones   []Phone // insertion order, duplicates allowed
	Birthday Birthday
}

// NewRecord builds a record without phones. An empty birthday is valid.
func NewRecord(name, birthday string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	b, err := ParseBirthday(birthday)
	if err != nil {
		return nil, err
	}
	return &Record{Name: n, Birthday: b}, nil
}

// AddPhone appends a validated phone. Nothing is appended on failure.
func (r *Record) AddPhone(phone string) (string, error) {
	p, err := NewPhone(phone)
	if err != nil {
		return "", err
	}
	r.Phones = append(r.Phones, p)
	return fmt.Sprintf("Added phone: %s.", p), nil
}

// EditPhone replaces the first phone equal to oldPhone, keeping its position.
func (r *Record) EditPhone(oldPhone, newPhone string) (string, error) {
	i := r.indexOf(oldPhone)
	if i < 0 {
		return "", fmt.Errorf("%w: '%s', enter existing phone to edit", errors.ErrPhoneNotFound, oldPhone)
	}
	p, err := NewPhone(newPhone)
	if err != nil {
		return "", err
	}
	r.Phones[i] = p
	return fmt.Sprintf("Edited phone: %s to %s.", oldPhone, newPhone), nil
}

func (r *Record) RemovePhone(phone string) (string, error) {
	i := r.indexOf(phone)
	if i < 0 {
		return "", fmt.Errorf("%w: '%s', enter existing phone to delete", errors.ErrPhoneNotFound, phone)
	}
	r.Phones = append(r.Phones[:i], r.Phones[i+1:]...)
	return fmt.Sprintf("Deleted phone: %s.", phone), nil
}

func (r *Record) FindPhone(phone string) (Phone, bool) {
	i := r.indexOf(phone)
	if i < 0 {
		return "", false
	}
	return r.Phones[i], true
}

// AddBirthday overwrites the current birthday, set or not.
func (r *Record) AddBirthday(birthday string) (string, error) {
	b, err := ParseBirthday(birthday)
	if err != nil {
		return "", err
	}
	r.Birthday = b
	return fmt.Sprintf("'%s' was set as a birthday date to a contact with name '%s'.", birthday, r.Name), nil
}

func (r *Record) DaysToNextBirthday(now time.Time) (int, error) {
	days, err := r.Birthday.DaysUntilNext(now)
	if err != nil {
		return 0, fmt.Errorf("%w for '%s'", err, r.Name)
	}
	return days, nil
}

// PhoneStrings returns the phones as plain strings, in order.
func (r *Record) PhoneStrings() []string {
	return lo.Map(r.Phones, func(p Phone, _ int) string { return string(p) })
}

func (r *Record) String() string {
	return fmt.Sprintf("Contact name: %s, phones: %s", r.Name, strings.Join(r.PhoneStrings(), "; "))
}

func (r *Record) indexOf(phone string) int {
	return lo.IndexOf(r.Phones, Phone(phone))
}
