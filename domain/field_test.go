package domain

import (
	"address-book/errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "ten digits", input: "1234567890"},
		{name: "leading zeros", input: "0000000000"},
		{name: "too short", input: "123456789", wantErr: true},
		{name: "too long", input: "12345678901", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "letter inside", input: "12345a7890", wantErr: true},
		{name: "signed number", input: "-123456789", wantErr: true},
		{name: "decimal point", input: "12345.7890", wantErr: true},
		{name: "spaces", input: "123 456 78", wantErr: true},
		{name: "non ascii digits", input: "١٢٣٤٥٦٧٨٩٠", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			phone, err := NewPhone(tt.input)
			if tt.wantErr {
				req.ErrorIs(err, errors.ErrInvalidPhone)
				req.ErrorIs(err, errors.ErrValidation)
				return
			}
			req.NoError(err)
			req.Equal(tt.input, phone.String())
		})
	}
}

func TestNewName(t *testing.T) {
	req := require.New(t)

	name, err := NewName("John_Wick")
	req.NoError(err)
	req.Equal("John_Wick", name.String())

	_, err = NewName("")
	req.ErrorIs(err, errors.ErrInvalidName)

	_, err = NewName("John Wick")
	req.ErrorIs(err, errors.ErrInvalidName)
}

func TestParseBirthday(t *testing.T) {
	t.Run("empty string means no birthday", func(t *testing.T) {
		req := require.New(t)
		b, err := ParseBirthday("")
		req.NoError(err)
		req.False(b.IsSet())
		req.Equal("", b.String())
	})

	t.Run("valid date round trips", func(t *testing.T) {
		req := require.New(t)
		b, err := ParseBirthday("30-05-1967")
		req.NoError(err)
		req.True(b.IsSet())
		req.Equal(time.May, b.Date().Month())
		req.Equal(30, b.Date().Day())
		req.Equal("30-05-1967", b.String())
	})

	t.Run("first day of year one is a real date", func(t *testing.T) {
		req := require.New(t)
		b, err := ParseBirthday("01-01-0001")
		req.NoError(err)
		req.True(b.IsSet())
		req.Equal("01-01-0001", b.String())
	})

	for _, input := range []string{"1967-05-30", "30/05/1967", "3-5-1967", "31-02-2001", "tomorrow"} {
		t.Run("rejects "+input, func(t *testing.T) {
			req := require.New(t)
			_, err := ParseBirthday(input)
			req.ErrorIs(err, errors.ErrInvalidBirthday)
		})
	}
}

func TestBirthday_DaysUntilNext(t *testing.T) {
	tests := []struct {
		name     string
		birthday string
		now      time.Time
		expected int
	}{
		{
			name:     "birthday is today",
			birthday: "15-06-1990",
			now:      time.Date(2024, time.June, 15, 23, 59, 0, 0, time.UTC),
			expected: 0,
		},
		{
			name:     "birthday was yesterday, next occurrence skips no leap day",
			birthday: "14-06-1990",
			now:      time.Date(2024, time.June, 15, 8, 0, 0, 0, time.UTC),
			expected: 364,
		},
		{
			name:     "birthday was yesterday, next occurrence crosses a leap day",
			birthday: "14-06-1990",
			now:      time.Date(2023, time.June, 15, 8, 0, 0, 0, time.UTC),
			expected: 365,
		},
		{
			name:     "later this year",
			birthday: "10-01-2000",
			now:      time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC),
			expected: 9,
		},
		{
			name:     "leap day birthday in a common year",
			birthday: "29-02-2000",
			now:      time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			expected: 59,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			b, err := ParseBirthday(tt.birthday)
			req.NoError(err)
			days, err := b.DaysUntilNext(tt.now)
			req.NoError(err)
			req.Equal(tt.expected, days)
		})
	}

	t.Run("missing birthday", func(t *testing.T) {
		_, err := Birthday{}.DaysUntilNext(time.Now())
		require.ErrorIs(t, err, errors.ErrMissingBirthday)
	})
}
