package numword

import (
	"fmt"
	"strings"
)

// ToWords returns the lowercase English words for n, e.g. 390 is
// "three hundred and ninety". Zero groups are omitted, so 1001 is
// "one thousand one".
func ToWords(n int64) (string, error) {
	if n < -MaxMagnitude || n > MaxMagnitude {
		return "", fmt.Errorf("%d: %w", n, ErrOutOfRange)
	}

	if n == 0 {
		return wordZero, nil
	}

	if n < 0 {
		words, err := ToWords(-n)
		if err != nil {
			return "", err
		}

		return wordNegative + " " + words, nil
	}

	var groups []string

	for position := 0; n > 0; position++ {
		group := n % 1000 //nolint:mnd

		if group != 0 {
			phrase := groupToWords(group)
			if position > 0 {
				phrase += " " + groupScales[position]
			}

			groups = append(groups, phrase)
		}

		n /= 1000 //nolint:mnd
	}

	// groups were collected lowest first
	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}

	return strings.Join(groups, " "), nil
}

// groupToWords converts 1..999.
func groupToWords(g int64) string {
	var b strings.Builder

	hundreds := g / 100  //nolint:mnd
	remainder := g % 100 //nolint:mnd

	if hundreds > 0 {
		b.WriteString(digitWords[hundreds])
		b.WriteString(" " + wordHundred)
	}

	if remainder == 0 {
		return b.String()
	}

	if b.Len() > 0 {
		b.WriteString(" " + wordAnd + " ")
	}

	if remainder < 20 { //nolint:mnd
		b.WriteString(digitWords[remainder])

		return b.String()
	}

	b.WriteString(tensWords[remainder/10])

	if ones := remainder % 10; ones > 0 {
		b.WriteString(" " + digitWords[ones])
	}

	return b.String()
}
