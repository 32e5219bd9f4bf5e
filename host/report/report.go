// Package report parses the controller's serial report lines.
//
// The board emits one line per report period, e.g. "T=23.0 A=22.0":
// the most recent sample and the rolling average, both in the fixed
// "NN.F" format produced by the firmware formatter.
package report

import (
	"fmt"
	"strings"
)

// Reading is one decoded report line. Values are whole degrees; the
// board's fractional digit carries no information.
type Reading struct {
	Last uint8
	Avg  uint8
}

// ParseLine decodes a single report line. Both the T and A fields must
// be present.
func ParseLine(line string) (Reading, error) {
	var r Reading
	var seenT, seenA bool

	for _, field := range strings.Fields(strings.TrimSpace(line)) {
		key, val, ok := strings.Cut(field, "=")
		if !ok {
			return Reading{}, fmt.Errorf("report: malformed field %q", field)
		}
		v, err := parseFixed(val)
		if err != nil {
			return Reading{}, fmt.Errorf("report: field %s: %w", key, err)
		}
		switch key {
		case "T":
			r.Last = v
			seenT = true
		case "A":
			r.Avg = v
			seenA = true
		default:
			return Reading{}, fmt.Errorf("report: unknown field %q", key)
		}
	}

	if !seenT || !seenA {
		return Reading{}, fmt.Errorf("report: incomplete line %q", line)
	}
	return r, nil
}

// parseFixed decodes the firmware's 4-character "NN.F" value. The
// fractional digit is validated but discarded.
func parseFixed(s string) (uint8, error) {
	if len(s) != 4 || s[2] != '.' {
		return 0, fmt.Errorf("bad fixed-point value %q", s)
	}
	for _, c := range []byte{s[0], s[1], s[3]} {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("bad fixed-point value %q", s)
		}
	}
	return (s[0]-'0')*10 + (s[1] - '0'), nil
}
