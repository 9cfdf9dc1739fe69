package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/sbilibin2017/gw-craft-gallery/internal/logger"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

const dir = "sql"

// gooseLogger routes goose output to the global logger.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...any) { logger.Log.Infof(format, v...) }
func (gooseLogger) Fatalf(format string, v ...any) { logger.Log.Fatalf(format, v...) }

// Up applies every pending migration.
func Up(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

// Files lists the embedded migration files.
func Files() ([]string, error) {
	entries, err := embedMigrations.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
