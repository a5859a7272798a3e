package domain

import (
	"address-book/errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRecord_Phones(t *testing.T) {
	req := require.New(t)
	record, err := NewRecord("John", "")
	req.NoError(err)

	_, err = record.AddPhone("1234567890")
	req.NoError(err)
	_, err = record.AddPhone("5555555555")
	req.NoError(err)
	req.Equal("Contact name: John, phones: 1234567890; 5555555555", record.String())

	// A bad phone is never appended
	_, err = record.AddPhone("12345")
	req.ErrorIs(err, errors.ErrInvalidPhone)
	req.Len(record.Phones, 2)

	// Edit keeps the position
	msg, err := record.EditPhone("1234567890", "1112223333")
	req.NoError(err)
	req.Equal("Edited phone: 1234567890 to 1112223333.", msg)
	req.Equal([]string{"1112223333", "5555555555"}, record.PhoneStrings())

	_, err = record.EditPhone("0000000000", "1112223333")
	req.ErrorIs(err, errors.ErrPhoneNotFound)
	req.ErrorIs(err, errors.ErrNotFound)

	_, err = record.EditPhone("5555555555", "bad")
	req.ErrorIs(err, errors.ErrInvalidPhone)
	req.Equal([]string{"1112223333", "5555555555"}, record.PhoneStrings())

	phone, ok := record.FindPhone("5555555555")
	req.True(ok)
	req.Equal(Phone("5555555555"), phone)
	_, ok = record.FindPhone("9999999999")
	req.False(ok)

	_, err = record.RemovePhone("1112223333")
	req.NoError(err)
	req.Equal([]string{"5555555555"}, record.PhoneStrings())
	_, err = record.RemovePhone("1112223333")
	req.ErrorIs(err, errors.ErrPhoneNotFound)
}

func TestRecord_EditPhone_FirstMatchOnly(t *testing.T) {
	req := require.New(t)
	record, err := NewRecord("Jane", "")
	req.NoError(err)
	for _, p := range []string{"1111111111", "2222222222", "1111111111"} {
		_, err = record.AddPhone(p)
		req.NoError(err)
	}

	_, err = record.EditPhone("1111111111", "3333333333")
	req.NoError(err)
	req.Equal([]string{"3333333333", "2222222222", "1111111111"}, record.PhoneStrings())
}

func TestRecord_Birthday(t *testing.T) {
	req := require.New(t)

	_, err := NewRecord("John", "1990/01/01")
	req.ErrorIs(err, errors.ErrInvalidBirthday)

	record, err := NewRecord("John", "")
	req.NoError(err)

	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	_, err = record.DaysToNextBirthday(now)
	req.ErrorIs(err, errors.ErrMissingBirthday)

	_, err = record.AddBirthday("01-03-1980")
	req.NoError(err)
	days, err := record.DaysToNextBirthday(now)
	req.NoError(err)
	req.Equal(0, days)

	// Overwritten wholesale
	_, err = record.AddBirthday("02-03-1980")
	req.NoError(err)
	req.Equal("02-03-1980", record.Birthday.String())
	days, err = record.DaysToNextBirthday(now)
	req.NoError(err)
	req.Equal(1, days)

	// A failed overwrite keeps the previous value
	_, err = record.AddBirthday("not-a-date")
	req.ErrorIs(err, errors.ErrInvalidBirthday)
	req.Equal("02-03-1980", record.Birthday.String())
}
