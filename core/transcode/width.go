package transcode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrNotANumber is returned when a width option has no leading digits.
var ErrNotANumber = errors.New("width is not a number")

// ParseWidth parses the leading integer of s. Leading whitespace and a
// sign are accepted and anything after the digits is ignored, so "100px"
// parses as 100 while "px100" is not a number.
func ParseWidth(s string) (int, error) {
	rest := strings.TrimLeftFunc(s, unicode.IsSpace)

	sign := ""
	if rest != "" && (rest[0] == '+' || rest[0] == '-') {
		sign, rest = rest[:1], rest[1:]
	}

	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}

	n, err := strconv.Atoi(sign + rest[:end])
	if err != nil {
		return 0, fmt.Errorf("parsing width %q: %w", s, err)
	}
	return n, nil
}

// BoxWidth returns the resize box width for a width option: twice the
// requested width.
func BoxWidth(s string) (int, error) {
	n, err := ParseWidth(s)
	if err != nil {
		return 0, err
	}
	return n * 2, nil
}
