package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		err  error
		kind error
	}{
		{ErrInvalidPhone, ErrValidation},
		{ErrInvalidBirthday, ErrValidation},
		{ErrSearchPhraseTooShort, ErrValidation},
		{ErrContactNotFound, ErrNotFound},
		{ErrPhoneNotFound, ErrNotFound},
		{ErrMissingCommandPart, ErrMalformedInput},
		{ErrUnsupportedCommand, ErrMalformedInput},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			req := require.New(t)
			wrapped := fmt.Errorf("%w: 'John'", tt.err)
			req.True(Is(wrapped, tt.err))
			req.True(Is(wrapped, tt.kind))
			req.Equal(tt.err.Error()+": 'John'", wrapped.Error())
		})
	}

	require.False(t, Is(ErrContactAlreadyExists, ErrValidation))
	require.False(t, Is(ErrContactNotFound, ErrValidation))
}
