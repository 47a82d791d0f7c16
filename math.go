package aoc

import (
	"strconv"
	"strings"
)

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Letter returns the position of a lowercase ASCII letter in the alphabet,
// 0 for 'a' through 25 for 'z'.
func Letter(b byte) (int, bool) {
	if b < 'a' || b > 'z' {
		return 0, false
	}
	return int(b - 'a'), true
}
