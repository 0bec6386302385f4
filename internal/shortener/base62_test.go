package shortener

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeBase62(t *testing.T) {
	t.Run("encodes known values", func(t *testing.T) {
		tests := []struct {
			input    []byte
			min      int
			expected string
		}{
			{[]byte{0}, 1, "0"},
			{[]byte{61}, 1, "z"},
			{[]byte{62}, 1, "10"},
			{[]byte{1, 0}, 1, "48"}, // 256 = 4*62 + 8
		}

		for _, tt := range tests {
			assert.Equal(t, tt.expected, encodeBase62(tt.input, tt.min))
		}
	})

	t.Run("left-pads with the zero symbol", func(t *testing.T) {
		assert.Equal(t, "00000A", encodeBase62([]byte{10}, 6))
		assert.Equal(t, "000000", encodeBase62([]byte{0, 0}, 6))
	})

	t.Run("digits order digits then upper then lower", func(t *testing.T) {
		assert.Equal(t, "9", encodeBase62([]byte{9}, 1))
		assert.Equal(t, "A", encodeBase62([]byte{10}, 1))
		assert.Equal(t, "Z", encodeBase62([]byte{35}, 1))
		assert.Equal(t, "a", encodeBase62([]byte{36}, 1))
	})
}
