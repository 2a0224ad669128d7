package value

import (
	"errors"
	"fmt"
)

var ErrInvalidDirection = errors.New("invalid conversion type")

// Direction selects which way a conversion goes.
type Direction string

const (
	NumberToWords Direction = "number_to_words"
	WordsToNumber Direction = "words_to_number"
)

func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case NumberToWords, WordsToNumber:
		return d, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrInvalidDirection)
	}
}

func (d Direction) String() string {
	return string(d)
}
