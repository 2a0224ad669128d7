package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"numconv/internal/domain/value"
)

// Conversion is one number/word conversion together with the optional
// exchange rate annotation.
type Conversion struct {
	ID        int64
	Input     string
	Direction value.Direction
	// Converted holds the words, or the formatted number ("1,234") for
	// words-to-number conversions.
	Converted string
	Number    int64
	// Amount is |Number| in the base currency.
	Amount    decimal.Decimal
	Rate      *RateResult
	ClientIP  string
	CreatedAt time.Time
}
