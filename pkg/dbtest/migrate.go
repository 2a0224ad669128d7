// Package dbtest prepares databases for repository tests.
package dbtest

import (
	"context"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
)

// MigrateFromFile executes the SQL files in order over db.
func MigrateFromFile(ctx context.Context, db *sqlx.DB, fileNames ...string) error {
	for _, fileName := range fileNames {
		query, err := os.ReadFile(fileName)
		if err != nil {
			return fmt.Errorf("os.ReadFile: %w", err)
		}

		if _, err = db.ExecContext(ctx, string(query)); err != nil {
			return fmt.Errorf("db.ExecContext %s: %w", fileName, err)
		}
	}

	return nil
}

// Truncate empties the tables and resets their sequences.
func Truncate(ctx context.Context, db *sqlx.DB, tables ...string) error {
	for _, table := range tables {
		if _, err := db.ExecContext(ctx, "TRUNCATE "+table+" RESTART IDENTITY"); err != nil {
			return fmt.Errorf("truncate %s: %w", table, err)
		}
	}

	return nil
}
