package utils_test

import (
	"testing"

	"skillora/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$99.00", utils.FormatCents(9900))
	assert.Equal(t, "$0.00", utils.FormatCents(0))
	assert.Equal(t, "$0.05", utils.FormatCents(5))
	assert.Equal(t, "$1.50", utils.FormatCents(150))
	assert.Equal(t, "$1234.56", utils.FormatCents(123456))
	assert.Equal(t, "-$12.34", utils.FormatCents(-1234))
}

func TestParseCents(t *testing.T) {
	cases := map[string]int64{
		"$99.00":  9900,
		"99":      9900,
		"99.5":    9950,
		"$0.05":   5,
		"0":       0,
		"-$12.34": -1234,
		" $1.00 ": 100,
	}
	for input, want := range cases {
		got, err := utils.ParseCents(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestParseCentsRejectsBadInput(t *testing.T) {
	for _, input := range []string{"", "$", "abc", "1.234", "$1.2.3"} {
		_, err := utils.ParseCents(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 5, 99, 100, 150, 9900, 123456, 999999999, -1, -1234} {
		got, err := utils.ParseCents(utils.FormatCents(cents))
		require.NoError(t, err)
		assert.Equal(t, cents, got)
	}
}
