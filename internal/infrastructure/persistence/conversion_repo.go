package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"

	"numconv/internal/domain"
	"numconv/internal/domain/entity"
	"numconv/pkg/errcodes"
	"numconv/pkg/lox"
)

type ConversionRepository struct {
	db *sqlx.DB
}

func NewConversionRepository(db *sqlx.DB) *ConversionRepository {
	return &ConversionRepository{db: db}
}

// Save inserts the conversion and sets its ID.
func (r *ConversionRepository) Save(ctx context.Context, conversion *entity.Conversion) error {
	query := `
		INSERT INTO conversions (
			input, direction, converted, number, amount,
			rate_success, rate, converted_amount, rate_source, rate_error,
			primary_error, client_ip, created_at
		) VALUES (
			:input, :direction, :converted, :number, :amount,
			:rate_success, :rate, :converted_amount, :rate_source, :rate_error,
			:primary_error, :client_ip, :created_at
		)
		RETURNING id`

	rows, err := sqlx.NamedQueryContext(ctx, r.db, query, fromConversion(conversion))
	if err != nil {
		return domain.NewStorageError("conversions.insert", errcodes.InternalServerError, err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&conversion.ID); err != nil {
			return domain.NewStorageError("conversions.scan_id", errcodes.InternalServerError, err)
		}
	}

	if err := rows.Err(); err != nil {
		return domain.NewStorageError("conversions.insert", errcodes.InternalServerError, err)
	}

	return nil
}

// List returns the latest conversions, newest first.
func (r *ConversionRepository) List(ctx context.Context, limit int) ([]entity.Conversion, error) {
	query := `
		SELECT id, input, direction, converted, number, amount,
		       rate_success, rate, converted_amount, rate_source, rate_error,
		       primary_error, client_ip, created_at
		FROM conversions
		ORDER BY created_at DESC, id DESC
		LIMIT $1`

	var schemas []conversionSchema
	if err := r.db.SelectContext(ctx, &schemas, query, limit); err != nil {
		return nil, domain.NewStorageError("conversions.select", errcodes.InternalServerError, err)
	}

	conversions, err := lox.MapErr(schemas, conversionSchema.toDomain)
	if err != nil {
		return nil, domain.NewStorageError("conversions.map", errcodes.InternalServerError, err)
	}

	return conversions, nil
}
