package numword

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

//nolint:gochecknoglobals
var numberCleaner = strings.NewReplacer(" ", "", ",", "", "\t", "")

// ParseNumber reads a whole number typed by a user. Spaces and thousands
// separators are ignored and a leading sign is allowed. Fractions and
// anything non-numeric fail with ErrInvalidInput.
func ParseNumber(s string) (int64, error) {
	cleaned := numberCleaner.Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return 0, fmt.Errorf("empty number: %w", ErrInvalidInput)
	}

	if strings.Contains(cleaned, ".") {
		return 0, fmt.Errorf("%q: fractions are not supported: %w", s, ErrInvalidInput)
	}

	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%q: %w", s, ErrOutOfRange)
		}

		return 0, fmt.Errorf("%q: %w", s, ErrInvalidInput)
	}

	if n < -MaxMagnitude || n > MaxMagnitude {
		return 0, fmt.Errorf("%d: %w", n, ErrOutOfRange)
	}

	return n, nil
}
