package numword_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"numconv/internal/domain/service/numword"
	"numconv/pkg/tests"
)

func TestToWords(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		input int64
		words string
	}{
		{name: "Zero", input: 0, words: "zero"},
		{name: "Single digit", input: 7, words: "seven"},
		{name: "Teen", input: 13, words: "thirteen"},
		{name: "Round tens", input: 90, words: "ninety"},
		{name: "Tens and ones", input: 21, words: "twenty one"},
		{name: "Hundreds with and", input: 390, words: "three hundred and ninety"},
		{name: "Round hundred", input: 100, words: "one hundred"},
		{name: "Group boundary", input: 999, words: "nine hundred and ninety nine"},
		{name: "Scale word insertion", input: 1000, words: "one thousand"},
		{name: "Zero group omitted", input: 1001, words: "one thousand one"},
		{name: "Inner zero groups omitted", input: 1_000_001, words: "one million one"},
		{name: "Hundred billion", input: 100_000_000_000, words: "one hundred billion"},
		{
			name:  "All groups",
			input: 123_456_789_012,
			words: "one hundred and twenty three billion four hundred and fifty six million " +
				"seven hundred and eighty nine thousand twelve",
		},
		{
			name:  "Maximum",
			input: numword.MaxMagnitude,
			words: "nine hundred and ninety nine billion nine hundred and ninety nine million " +
				"nine hundred and ninety nine thousand nine hundred and ninety nine",
		},
		{name: "Negative", input: -390, words: "negative three hundred and ninety"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			words, err := numword.ToWords(tc.input)
			rq.NoError(err)
			rq.Equal(tc.words, words)
			rq.Equal(strings.TrimSpace(words), words)
			rq.NotContains(words, "  ")
			rq.Equal(strings.ToLower(words), words)
		})
	}
}

func TestToWordsNegativePrefix(t *testing.T) {
	rq := require.New(t)

	positive, err := numword.ToWords(390)
	rq.NoError(err)

	negative, err := numword.ToWords(-390)
	rq.NoError(err)

	rq.Equal("negative "+positive, negative)
}

func TestToWordsOutOfRange(t *testing.T) {
	rq := require.New(t)

	for _, n := range []int64{1_000_000_000_000, -1_000_000_000_000, 1 << 62} {
		_, err := numword.ToWords(n)
		rq.ErrorIs(err, numword.ErrOutOfRange)
	}
}

func TestToNumber(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		input  string
		number int64
	}{
		{name: "Hundreds with and", input: "three hundred and ninety", number: 390},
		{name: "Compound tens", input: "twentyone", number: 21},
		{name: "Compound scale", input: "onehundred and ten", number: 110},
		{name: "Hundred and ten", input: "one hundred and ten", number: 110},
		{name: "Chained compound", input: "twentyonehundred", number: 2100},
		{name: "Hyphenated", input: "Twenty-One", number: 21},
		{name: "Mixed case and spacing", input: "  One   THOUSAND\tone ", number: 1001},
		{name: "Zero", input: "zero", number: 0},
		{name: "Negative", input: "negative forty two", number: -42},
		{name: "Without and", input: "nine hundred ninety nine", number: 999},
		{name: "Millions", input: "two million three hundred thousand", number: 2_300_000},
		{name: "Loose word order", input: "hundred one thousand", number: 1000},
		{name: "Only and", input: "and", number: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			number, err := numword.ToNumber(tc.input)
			rq.NoError(err)
			rq.Equal(tc.number, number)
		})
	}
}

func TestToNumberErrors(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		input string
		err   error
		word  string
	}{
		{name: "Unrecognized word", input: "twenty foo", err: numword.ErrUnrecognizedWord, word: "foo"},
		{name: "Digits are not words", input: "one 2 three", err: numword.ErrUnrecognizedWord, word: "2"},
		{name: "Negative in the middle", input: "one negative", err: numword.ErrUnrecognizedWord, word: "negative"},
		{name: "Ordinal", input: "first", err: numword.ErrUnrecognizedWord, word: "first"},
		{name: "Empty", input: "   ", err: numword.ErrInvalidInput},
		{name: "Only sign", input: "negative", err: numword.ErrInvalidInput},
		{
			name:  "Overflow",
			input: "nine hundred hundred hundred hundred hundred hundred hundred hundred hundred hundred",
			err:   numword.ErrOutOfRange,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			_, err := numword.ToNumber(tc.input)
			rq.ErrorIs(err, tc.err)

			if tc.word != "" {
				var wordErr *numword.UnrecognizedWordError

				rq.True(errors.As(err, &wordErr))
				rq.Equal(tc.word, wordErr.Word)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		input      string
		normalized string
	}{
		{input: "twentyone", normalized: "twenty one"},
		{input: "onehundred", normalized: "one hundred"},
		{input: "SixtySix", normalized: "sixty six"},
		{input: "eighteen", normalized: "eighteen"},
		{input: "seventy seven", normalized: "seventy seven"},
		{input: "tenthousand", normalized: "ten thousand"},
		{input: "twentyfoo", normalized: "twentyfoo"},
		{input: " three   hundred-and ninety ", normalized: "three hundred and ninety"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(*testing.T) {
			normalized := numword.Normalize(tc.input)
			rq.Equal(tc.normalized, normalized)
			rq.Equal(normalized, numword.Normalize(normalized))
			rq.Equal(strings.Fields(normalized), strings.Fields(numword.Normalize(normalized)))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	rq := require.New(t)

	check := func(n int64) {
		words, err := numword.ToWords(n)
		rq.NoError(err)

		number, err := numword.ToNumber(words)
		rq.NoError(err, words)
		rq.Equal(n, number, words)
	}

	for n := int64(-2000); n <= 20000; n++ {
		check(n)
	}

	for _, n := range []int64{
		numword.MaxMagnitude, -numword.MaxMagnitude,
		1_000_000, 1_000_000_000, 100_000_000_000, 999_000_000_999, 1_000_001_000,
	} {
		check(n)
	}

	randomizer := tests.NewRandomizer(t)

	for range 10000 {
		check(randomizer.SignedUpTo(numword.MaxMagnitude))
	}

	// Every group count, so high groups are not starved by the uniform draw.
	for digits := 1; digits <= 12; digits++ {
		for range 200 {
			check(randomizer.Digits(digits))
		}
	}
}

func TestParseNumber(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		input  string
		number int64
		err    error
	}{
		{name: "Plain", input: "390", number: 390},
		{name: "Signed", input: "-390", number: -390},
		{name: "Plus sign", input: "+12", number: 12},
		{name: "Spaces", input: " 1 000 ", number: 1000},
		{name: "Thousands separators", input: "1,000,001", number: 1_000_001},
		{name: "Maximum", input: "999999999999", number: numword.MaxMagnitude},
		{name: "Too big", input: "1000000000000", err: numword.ErrOutOfRange},
		{name: "Beyond int64", input: "99999999999999999999999", err: numword.ErrOutOfRange},
		{name: "Decimal", input: "12.5", err: numword.ErrInvalidInput},
		{name: "Letters", input: "twelve", err: numword.ErrInvalidInput},
		{name: "Empty", input: "  ", err: numword.ErrInvalidInput},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			number, err := numword.ParseNumber(tc.input)
			if tc.err != nil {
				rq.ErrorIs(err, tc.err)

				return
			}

			rq.NoError(err)
			rq.Equal(tc.number, number)
		})
	}
}
