package persistence

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"numconv/internal/domain/entity"
	"numconv/internal/domain/value"
)

// conversionSchema is a row of the conversions table.
type conversionSchema struct {
	ID              int64               `db:"id"`
	Input           string              `db:"input"`
	Direction       string              `db:"direction"`
	Converted       string              `db:"converted"`
	Number          int64               `db:"number"`
	Amount          decimal.Decimal     `db:"amount"`
	RateSuccess     sql.NullBool        `db:"rate_success"`
	Rate            decimal.NullDecimal `db:"rate"`
	ConvertedAmount decimal.NullDecimal `db:"converted_amount"`
	RateSource      sql.NullString      `db:"rate_source"`
	RateError       sql.NullString      `db:"rate_error"`
	PrimaryError    sql.NullString      `db:"primary_error"`
	ClientIP        string              `db:"client_ip"`
	CreatedAt       time.Time           `db:"created_at"`
}

func fromConversion(c *entity.Conversion) conversionSchema {
	s := conversionSchema{
		ID:        c.ID,
		Input:     c.Input,
		Direction: c.Direction.String(),
		Converted: c.Converted,
		Number:    c.Number,
		Amount:    c.Amount,
		ClientIP:  c.ClientIP,
		CreatedAt: c.CreatedAt,
	}

	if c.Rate != nil {
		s.RateSuccess = sql.NullBool{Bool: c.Rate.Success, Valid: true}
		s.RateSource = nullString(c.Rate.Source)
		s.RateError = nullString(c.Rate.Error)
		s.PrimaryError = nullString(c.Rate.PrimaryError)

		if c.Rate.Success {
			s.Rate = decimal.NewNullDecimal(c.Rate.Rate)
			s.ConvertedAmount = decimal.NewNullDecimal(c.Rate.ConvertedAmount)
		}
	}

	return s
}

func (s conversionSchema) toDomain() (entity.Conversion, error) {
	direction, err := value.ParseDirection(s.Direction)
	if err != nil {
		return entity.Conversion{}, err
	}

	c := entity.Conversion{
		ID:        s.ID,
		Input:     s.Input,
		Direction: direction,
		Converted: s.Converted,
		Number:    s.Number,
		Amount:    s.Amount,
		ClientIP:  s.ClientIP,
		CreatedAt: s.CreatedAt,
	}

	if s.RateSuccess.Valid {
		c.Rate = &entity.RateResult{
			Success:         s.RateSuccess.Bool,
			From:            entity.BaseCurrency,
			To:              entity.QuoteCurrency,
			Amount:          s.Amount,
			Rate:            s.Rate.Decimal,
			ConvertedAmount: s.ConvertedAmount.Decimal,
			Source:          s.RateSource.String,
			Error:           s.RateError.String,
			PrimaryError:    s.PrimaryError.String,
			Timestamp:       s.CreatedAt,
		}
	}

	return c, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
