package value

import "strings"

// CurrencyPair is the "FROM_TO" query key the currconv API uses.
type CurrencyPair struct {
	From string
	To   string
}

func NewCurrencyPair(from, to string) CurrencyPair {
	return CurrencyPair{
		From: strings.ToUpper(from),
		To:   strings.ToUpper(to),
	}
}

func (p CurrencyPair) String() string {
	return p.From + "_" + p.To
}
