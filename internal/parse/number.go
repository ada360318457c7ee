// Package parse converts loosely formatted model output into typed
// domain records. Parsers are pure transformations of their input text
// and hold no state between calls.
package parse

import (
	"regexp"
	"strconv"
)

// numberPattern matches one or more digits optionally followed by a
// decimal point and one or more digits
var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// FirstNumber returns the first numeric literal found in s. The second
// return value reports whether a number was present at all, so callers
// can tell a genuine zero apart from an absent value.
func FirstNumber(s string) (float64, bool) {
	match := numberPattern.FindString(s)
	if match == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// FirstNumberOrZero returns the first numeric literal found in s, or
// 0.0 when none exists. Absence of a number is a normal case signaled
// by the zero sentinel; callers that must distinguish "not found" from
// "was zero" should use FirstNumber instead.
func FirstNumberOrZero(s string) float64 {
	value, _ := FirstNumber(s)
	return value
}
