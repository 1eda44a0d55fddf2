package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeID(t *testing.T) {
	tests := []struct {
		name string
		id   int64
		want string
	}{
		{name: "first id", id: 1, want: "1"},
		{name: "last single digit", id: 61, want: "Z"},
		{name: "first two digit", id: 62, want: "10"},
		{name: "arbitrary", id: 125, want: "21"},
		{name: "large", id: 62*62*62 + 1, want: "1001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeID(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeID_RejectsNonPositive(t *testing.T) {
	for _, id := range []int64{0, -1, -62} {
		_, err := EncodeID(id)
		assert.ErrorIs(t, err, ErrNonPositiveID)
	}
}

func TestEncodeID_Bijective(t *testing.T) {
	seen := make(map[string]int64)
	for id := int64(1); id <= 10_000; id++ {
		code, err := EncodeID(id)
		require.NoError(t, err)

		prev, dup := seen[code]
		require.False(t, dup, "ids %d and %d collide on %q", prev, id, code)
		seen[code] = id
	}
}

func TestEncodeID_LengthNonDecreasing(t *testing.T) {
	prevLen := 0
	for id := int64(1); id <= 5_000; id++ {
		code, err := EncodeID(id)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(code), prevLen, "length shrank at id %d", id)
		prevLen = len(code)
	}
}

func TestEncodeID_OnlyAlphabetCharacters(t *testing.T) {
	code, err := EncodeID(1<<62 + 7)
	require.NoError(t, err)
	for _, c := range code {
		assert.Contains(t, Base62Alphabet, string(c))
	}
}
