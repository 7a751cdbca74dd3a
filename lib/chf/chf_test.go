package chf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		input    string
		expected float64
	}{
		{input: "CHF 1'386'630.00", expected: 1386630},
		{input: "CHF 100", expected: 100},
		{input: "CHF 50", expected: 50},
		{input: "CHF 12’500.50", expected: 12500.5},
		{input: "CHF 2'000", expected: 2000},
		{input: "  42  ", expected: 42},
		{input: "", expected: 0},
		{input: "CHF", expected: 0},
		{input: "not a number", expected: 0},
		{input: "NaN", expected: 0},
		{input: "-20", expected: 0},
	}

	for _, test := range cases {
		require.Equal(t, test.expected, ParseAmount(test.input), "input %q", test.input)
	}
}

func TestFormatAmount(t *testing.T) {
	require.Equal(t, "CHF 1'386'630", FormatAmount(1386630))
	require.Equal(t, "CHF 200", FormatAmount(200))
	require.Equal(t, "CHF 0", FormatAmount(0))
}
