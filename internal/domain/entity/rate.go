package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Amounts are converted from the Philippine peso to the US dollar.
const (
	BaseCurrency  = "PHP"
	QuoteCurrency = "USD"
)

// RateResult is the outcome of an exchange rate lookup for an amount. A
// failed lookup is still a value: Success is false and Error explains why.
type RateResult struct {
	Success         bool
	From            string
	To              string
	Amount          decimal.Decimal
	ConvertedAmount decimal.Decimal
	Rate            decimal.Decimal
	Source          string
	// PrimaryError is set when a fallback provider answered.
	PrimaryError string
	Error        string
	Timestamp    time.Time
}

func FailedRate(from, to string, amount decimal.Decimal, reason string) *RateResult {
	return &RateResult{
		Success: false,
		From:    from,
		To:      to,
		Amount:  amount,
		Error:   reason,
	}
}

type Currency struct {
	ID     string
	Name   string
	Symbol string
}
