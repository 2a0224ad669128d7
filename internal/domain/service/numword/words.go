// Package numword converts between integers and their English word form.
package numword

import (
	"errors"
	"fmt"
)

// MaxMagnitude is the largest absolute value ToWords accepts.
const MaxMagnitude int64 = 999_999_999_999

const (
	wordZero     = "zero"
	wordNegative = "negative"
	wordAnd      = "and"
	wordHundred  = "hundred"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrOutOfRange       = errors.New("number out of range")
	ErrUnrecognizedWord = errors.New("unrecognized word")
)

// UnrecognizedWordError names the token that matched no vocabulary entry.
type UnrecognizedWordError struct {
	Word string
}

func (e *UnrecognizedWordError) Error() string {
	return fmt.Sprintf("don't recognize this word: %q", e.Word)
}

func (e *UnrecognizedWordError) Unwrap() error {
	return ErrUnrecognizedWord
}

// digitWords is indexed by value; index 0 has no word inside a number.
//
//nolint:gochecknoglobals
var digitWords = [20]string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

// tensWords is indexed by the tens digit; indexes 0 and 1 are unused.
//
//nolint:gochecknoglobals
var tensWords = [10]string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

// groupScales is indexed by the position of a 3-digit group.
//
//nolint:gochecknoglobals
var groupScales = [4]string{"", "thousand", "million", "billion"}

//nolint:gochecknoglobals
var scaleValues = map[string]int64{
	wordHundred: 100,
	"thousand":  1_000,
	"million":   1_000_000,
	"billion":   1_000_000_000,
}

// numberValues maps every digit and tens word (and "zero") to its value.
//
//nolint:gochecknoglobals
var numberValues = buildNumberValues()

func buildNumberValues() map[string]int64 {
	values := make(map[string]int64, len(digitWords)+len(tensWords))

	values[wordZero] = 0

	for i, w := range digitWords {
		if w != "" {
			values[w] = int64(i)
		}
	}

	for i, w := range tensWords {
		if w != "" {
			values[w] = int64(i) * 10 //nolint:mnd
		}
	}

	return values
}
