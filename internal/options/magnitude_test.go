package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseMagnitude tests suffix handling
func TestParseMagnitude(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"200k", 200000},
		{"200K", 200000},
		{"1.2M", 1200000},
		{"1.2m", 1200000},
		{"250000", 250000},
		{"171000.5", 171000.5},
		{"7", 7},
		{"0.5k", 500},
		{"192000Hz", 192000},
		{" 192000", 192000},
		{"\t200k", 200000},
		{"12x", 12},
		{"1.2.3k", 1200},
		{"1e3k", 1e6},
		{".5M", 500000},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := ParseMagnitude(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, v, 1e-6)
		})
	}
}

// TestParseMagnitude_Invalid tests values that do not parse
func TestParseMagnitude_Invalid(t *testing.T) {
	for _, input := range []string{"", "k", "M", "abc", "Hz", " ", "NaN", "infk", "1e308M", "1e400"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseMagnitude(input)
			assert.ErrorIs(t, err, ErrSampleRateValue)
		})
	}
}

// TestParseCount tests leading integer handling
func TestParseCount(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		ok       bool
	}{
		{"2", 2, true},
		{"2ch", 2, true},
		{" 3", 3, true},
		{"-1", -1, true},
		{"two", 0, false},
		{"", 0, false},
		{"99999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n, ok := parseCount(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, n)
		})
	}
}
