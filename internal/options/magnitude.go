package options

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	floatPrefix = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?`)
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
)

// leadingNumber returns the number at the start of s after leading
// whitespace; trailing text is ignored
func leadingNumber(s string, prefix *regexp.Regexp) (string, bool) {
	m := prefix.FindString(strings.TrimLeftFunc(s, unicode.IsSpace))
	return m, m != ""
}

// ParseMagnitude parses a number with an optional k (x1e3) or M (x1e6)
// suffix. The suffix is the last character of s, matched
// case-insensitively and only when something precedes it. Text after the
// leading number is otherwise ignored, so "192000Hz" is 192000.
func ParseMagnitude(s string) (float64, error) {
	factor := 1.0
	if len(s) > 1 {
		switch unicode.ToLower(rune(s[len(s)-1])) {
		case 'k':
			factor = 1e3
		case 'm':
			factor = 1e6
		}
	}

	number, ok := leadingNumber(s, floatPrefix)
	if !ok {
		return 0, fmt.Errorf("%w '%s'", ErrSampleRateValue, s)
	}

	v, err := strconv.ParseFloat(number, 64)
	if err != nil || math.IsInf(v*factor, 0) {
		return 0, fmt.Errorf("%w '%s'", ErrSampleRateValue, s)
	}

	return v * factor, nil
}

// parseCount reads a leading integer the same lenient way
func parseCount(s string) (int, bool) {
	number, ok := leadingNumber(s, intPrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(number)
	if err != nil {
		return 0, false
	}
	return n, true
}
