// Package rest holds the JSON contract of the public API.
package rest

import "time"

type ConvertRequest struct {
	Input          string `json:"input"          validate:"required,max=1000"`
	ConversionType string `json:"conversionType" validate:"required,oneof=number_to_words words_to_number"`
}

type ConvertResponse struct {
	Success bool       `json:"success"`
	Data    Conversion `json:"data"`
	Message string     `json:"message"`
}

type Conversion struct {
	Input          string    `json:"input"`
	ConversionType string    `json:"conversionType"`
	Converted      string    `json:"converted"`
	Number         int64     `json:"number"`
	Amount         string    `json:"amount"`
	Currency       *Rate     `json:"currency"`
	Timestamp      time.Time `json:"timestamp"`
}

// Rate is the outcome of the exchange rate lookup. When Success is false
// only Error is meaningful.
type Rate struct {
	Success         bool       `json:"success"`
	From            string     `json:"from"`
	To              string     `json:"to"`
	Amount          string     `json:"amount"`
	ConvertedAmount string     `json:"convertedAmount,omitempty"`
	ExchangeRate    string     `json:"exchangeRate,omitempty"`
	Source          string     `json:"source,omitempty"`
	PrimaryError    string     `json:"primaryError,omitempty"`
	Error           string     `json:"error,omitempty"`
	Timestamp       *time.Time `json:"timestamp,omitempty"`
}

type Currency struct {
	ID     string `json:"id"`
	Name   string `json:"currencyName"`
	Symbol string `json:"currencySymbol,omitempty"`
}

type CurrenciesResponse struct {
	Success bool       `json:"success"`
	Data    []Currency `json:"data"`
}

type HistoryResponse struct {
	Success bool         `json:"success"`
	Data    []Conversion `json:"data"`
}

type Status struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// Error Модель ошибок
type Error struct {
	Success bool      `json:"success"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	// SupportID is the trace id of the failed request.
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
