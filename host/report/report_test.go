package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	r, err := ParseLine("T=23.0 A=22.0")
	require.NoError(t, err)
	assert.Equal(t, Reading{Last: 23, Avg: 22}, r)
}

func TestParseLineTrimsLineEndings(t *testing.T) {
	r, err := ParseLine("T=04.0 A=00.0\r\n")
	require.NoError(t, err)
	assert.Equal(t, Reading{Last: 4, Avg: 0}, r)
}

func TestParseLineRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"T=23.0",          // missing A
		"A=22.0",          // missing T
		"T=23.0 A=22",     // truncated value
		"T=2a.0 A=22.0",   // non-digit
		"T=23.0 X=22.0",   // unknown key
		"T 23.0 A 22.0",   // no separator
		"T=23,0 A=22.0",   // wrong decimal mark
	}
	for _, line := range cases {
		_, err := ParseLine(line)
		assert.Error(t, err, "line %q", line)
	}
}
