package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"tulika/internal/migrations"
)

// RunMigrations applies the embedded goose migrations. Goose needs a
// database/sql handle, so a short-lived one is opened alongside the pool.
//
// The migration SQL references ${TABLE_PREFIX} via goose's env
// substitution, so the tables it creates carry the same prefix the
// repositories interpolate into their queries. The prefix is pinned to the
// configured value here rather than read from whatever happens to be in
// the environment, and each prefix keeps its own goose version table so
// several environments can share one database.
func RunMigrations(ctx context.Context, databaseURL, tablePrefix string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("db open error: %w", err)
	}
	defer db.Close()

	if err := os.Setenv("TABLE_PREFIX", tablePrefix); err != nil {
		return fmt.Errorf("set table prefix: %w", err)
	}

	goose.SetTableName(tablePrefix + "goose_db_version")
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}
