package numword

import (
	"cmp"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"
)

//nolint:gochecknoglobals
var (
	vocabularyPattern = buildVocabularyPattern()
	vocabularyRe      = regexp.MustCompile(vocabularyPattern)
	compoundRe        = regexp.MustCompile(`\b(?:` + vocabularyPattern + `)+\b`)
)

// buildVocabularyPattern joins digit, tens and scale words into one
// alternation, longest first so "seventeen" wins over "seven".
func buildVocabularyPattern() string {
	var words []string

	for _, w := range digitWords {
		if w != "" {
			words = append(words, w)
		}
	}

	for _, w := range tensWords {
		if w != "" {
			words = append(words, w)
		}
	}

	for w := range scaleValues {
		words = append(words, w)
	}

	slices.SortFunc(words, func(a, b string) int {
		return cmp.Or(cmp.Compare(len(b), len(a)), strings.Compare(a, b))
	})

	return strings.Join(words, "|")
}

// Normalize lowercases s, treats hyphens as spaces, collapses whitespace
// and splits glued vocabulary words ("twentyone" becomes "twenty one").
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.Join(strings.Fields(s), " ")

	return compoundRe.ReplaceAllStringFunc(s, splitCompound)
}

func splitCompound(token string) string {
	parts := vocabularyRe.FindAllString(token, -1)

	if len(parts) < 2 || strings.Join(parts, "") != token { //nolint:mnd
		return token
	}

	return strings.Join(parts, " ")
}

// ToNumber parses English number words. "and" is ignored, "hundred"
// multiplies the running group and thousand/million/billion flush it
// into the total. Word order is not validated: "hundred one thousand"
// yields 1000.
func ToNumber(s string) (int64, error) {
	tokens := strings.Fields(Normalize(s))
	if len(tokens) == 0 {
		return 0, fmt.Errorf("empty words: %w", ErrInvalidInput)
	}

	negative := tokens[0] == wordNegative
	if negative {
		tokens = tokens[1:]

		if len(tokens) == 0 {
			return 0, fmt.Errorf("%q: %w", wordNegative, ErrInvalidInput)
		}
	}

	var total, current int64

	for _, token := range tokens {
		var ok bool

		switch scale, isScale := scaleValues[token]; {
		case token == wordAnd:
			continue
		case isNumberWord(token):
			current, ok = add(current, numberValues[token])
		case token == wordHundred:
			current, ok = mul(current, scale)
		case isScale:
			var flushed int64

			flushed, ok = mul(current, scale)
			if ok {
				total, ok = add(total, flushed)
			}

			current = 0
		default:
			return 0, &UnrecognizedWordError{Word: token}
		}

		if !ok {
			return 0, fmt.Errorf("%q: %w", s, ErrOutOfRange)
		}
	}

	result, ok := add(total, current)
	if !ok {
		return 0, fmt.Errorf("%q: %w", s, ErrOutOfRange)
	}

	if negative {
		return -result, nil
	}

	return result, nil
}

func isNumberWord(token string) bool {
	_, ok := numberValues[token]

	return ok
}

func add(a, b int64) (int64, bool) {
	if a > math.MaxInt64-b {
		return 0, false
	}

	return a + b, true
}

func mul(a, b int64) (int64, bool) {
	if b != 0 && a > math.MaxInt64/b {
		return 0, false
	}

	return a * b, true
}
