package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFixedPoint(t *testing.T) {
	assert.Equal(t, [4]byte{'2', '3', '.', '0'}, FormatFixedPoint(23))
	assert.Equal(t, [4]byte{'0', '0', '.', '0'}, FormatFixedPoint(0))
	assert.Equal(t, [4]byte{'4', '0', '.', '0'}, FormatFixedPoint(40))
	assert.Equal(t, [4]byte{'0', '7', '.', '0'}, FormatFixedPoint(7))
	assert.Equal(t, [4]byte{'9', '9', '.', '0'}, FormatFixedPoint(99))
}

func TestFormatFixedPointTrailingDigitIsFixed(t *testing.T) {
	// The fractional digit is a placeholder: always '0', whatever the
	// value.
	for v := uint8(0); v <= 99; v++ {
		out := FormatFixedPoint(v)
		assert.Equal(t, byte('.'), out[2])
		assert.Equal(t, byte('0'), out[3])
	}
}
