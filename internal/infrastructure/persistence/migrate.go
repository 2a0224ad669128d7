package persistence

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path"

	"github.com/jmoiron/sqlx"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies the embedded schema. Every statement is idempotent, so it
// runs on each start.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	entries, err := fs.ReadDir(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("fs.ReadDir: %w", err)
	}

	for _, entry := range entries {
		name := path.Join("migrations", entry.Name())

		query, err := fs.ReadFile(migrations, name)
		if err != nil {
			return fmt.Errorf("fs.ReadFile %s: %w", name, err)
		}

		if _, err := db.ExecContext(ctx, string(query)); err != nil {
			return fmt.Errorf("db.ExecContext %s: %w", name, err)
		}

		logger(ctx).Info("migration applied", slog.String("file", entry.Name()))
	}

	return nil
}
