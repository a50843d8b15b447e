package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	// Registers the pgx database/sql driver used by goose
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Migrate applies every pending embedded migration to the database at connString
func Migrate(ctx context.Context, connString string) error {
	db, err := sql.Open(MigrationDriver, connString)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToOpenMigrationDB, err)
	}
	defer db.Close()

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect(GooseDialect); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetDialect, err)
	}

	if err := goose.UpContext(ctx, db, MigrationsDir); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err == nil {
		slog.Default().Info(LogMsgMigrationsApplied, "version", version)
	}
	return nil
}
