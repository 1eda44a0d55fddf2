package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShortCode(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr bool
	}{
		{name: "lowercase", code: "abc123"},
		{name: "mixed case", code: "aB9Zz0"},
		{name: "single char", code: "x"},
		{name: "max length", code: "a1b2c3d4e5"},
		{name: "empty", code: "", wantErr: true},
		{name: "too long", code: "a1b2c3d4e5f", wantErr: true},
		{name: "dash and bang", code: "abc-123!", wantErr: true},
		{name: "underscore", code: "ab_cd", wantErr: true},
		{name: "space", code: "ab cd", wantErr: true},
		{name: "unicode", code: "abç", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewShortCode(tt.code)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCode)
				assert.True(t, got.IsEmpty())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.code, got.String())
		})
	}
}

func TestShortCode_Equals(t *testing.T) {
	a, err := NewShortCode("abc123")
	require.NoError(t, err)
	b, err := NewShortCode("abc123")
	require.NoError(t, err)
	c, err := NewShortCode("xyz789")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}
