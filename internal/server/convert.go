package server

import (
	"time"

	"github.com/samber/lo"

	"numconv/internal/domain/entity"
	"numconv/pkg/rest"
)

const moneyPlaces = 2

func newRESTConversion(conversion entity.Conversion) rest.Conversion {
	return rest.Conversion{
		Input:          conversion.Input,
		ConversionType: conversion.Direction.String(),
		Converted:      conversion.Converted,
		Number:         conversion.Number,
		Amount:         conversion.Amount.String(),
		Currency:       newRESTRate(conversion.Rate),
		Timestamp:      conversion.CreatedAt,
	}
}

func newRESTConversions(conversions []entity.Conversion) []rest.Conversion {
	return lo.Map(conversions, func(c entity.Conversion, _ int) rest.Conversion {
		return newRESTConversion(c)
	})
}

func newRESTRate(rate *entity.RateResult) *rest.Rate {
	if rate == nil {
		return nil
	}

	result := &rest.Rate{
		Success:      rate.Success,
		From:         rate.From,
		To:           rate.To,
		Amount:       rate.Amount.String(),
		Source:       rate.Source,
		PrimaryError: rate.PrimaryError,
		Error:        rate.Error,
		Timestamp:    timePtr(rate.Timestamp),
	}

	if rate.Success {
		result.ConvertedAmount = rate.ConvertedAmount.StringFixed(moneyPlaces)
		result.ExchangeRate = rate.Rate.String()
	}

	return result
}

func newRESTCurrencies(currencies []entity.Currency) []rest.Currency {
	return lo.Map(currencies, func(c entity.Currency, _ int) rest.Currency {
		return rest.Currency{
			ID:     c.ID,
			Name:   c.Name,
			Symbol: c.Symbol,
		}
	})
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}
