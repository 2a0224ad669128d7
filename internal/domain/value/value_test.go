package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"numconv/internal/domain/value"
)

func TestParseDirection(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		input     string
		direction value.Direction
		err       error
	}{
		{input: "number_to_words", direction: value.NumberToWords},
		{input: "words_to_number", direction: value.WordsToNumber},
		{input: "Number_To_Words", err: value.ErrInvalidDirection},
		{input: "", err: value.ErrInvalidDirection},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(*testing.T) {
			direction, err := value.ParseDirection(tc.input)
			rq.ErrorIs(err, tc.err)
			rq.Equal(tc.direction, direction)
		})
	}
}

func TestCurrencyPair(t *testing.T) {
	require.Equal(t, "PHP_USD", value.NewCurrencyPair("php", "usd").String())
}
