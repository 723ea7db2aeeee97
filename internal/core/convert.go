package core

// convert.go provides the lenient numeric parsing used by every shape mapper.
//
// Exported statistics carry units and decoration ("35%", "6.5 pts", " 12 ").
// Only the leading number is taken; anything after it is ignored. A value
// with no leading number is missing, never zero.

import (
	"regexp"
	"strconv"
	"strings"
)

// leadingNumberRegex matches a decimal number at the start of a cell.
// Matches integers, decimals, and scientific notation.
var leadingNumberRegex = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// leadingIntegerRegex matches a whole number at the start of a cell.
var leadingIntegerRegex = regexp.MustCompile(`^\s*[+-]?\d+`)

// ParseNumber converts the leading number of s into a Num.
// Returns a null Num if s does not start with a number.
func ParseNumber(s string) Num {
	m := leadingNumberRegex.FindString(s)
	if m == "" {
		return NullNum()
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(m), 64)
	if err != nil {
		return NullNum()
	}
	return NumOf(f)
}

// ParseCount converts the leading whole number of s into an int.
// Fractions are truncated; a missing or unparseable count is 0.
func ParseCount(s string) int {
	m := leadingIntegerRegex.FindString(s)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(m))
	if err != nil {
		return 0
	}
	return n
}

