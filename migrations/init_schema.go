package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/nonsonwune/rankmatch/logger"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// FS holds the SQL migrations.
//
//go:embed *.sql
var FS embed.FS

// RequiredTables are the tables the analysis reads from.
var RequiredTables = []string{"score_ranks", "year_quotas", "admission_cutoffs"} //nolint: gochecknoglobals

// Up applies all pending migrations. dialect is a goose dialect name
// ("postgres" or "sqlite3").
func Up(ctx context.Context, db *sql.DB, dialect string) error {
	goose.SetBaseFS(FS)
	goose.SetLogger(gooseLogger{l: logger.Get(ctx).Sugar()})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("could not set goose dialect %q: %w", dialect, err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("could not apply migrations: %w", err)
	}

	return nil
}

// InitSchema verifies that all required tables exist.
func InitSchema(ctx context.Context, db *sql.DB) error {
	for _, table := range RequiredTables {
		query, _, err := goqu.From(table).Select(goqu.COUNT(goqu.Star())).ToSQL()
		if err != nil {
			return fmt.Errorf("could not build check for table %s: %w", table, err)
		}

		var rows int64
		if err := db.QueryRowContext(ctx, query).Scan(&rows); err != nil {
			return fmt.Errorf("required table %s does not exist: %w", table, err)
		}
		logger.Debug(ctx, "table present", zap.String("table", table), zap.Int64("rows", rows))
	}

	return nil
}

type gooseLogger struct {
	l *zap.SugaredLogger
}

func (g gooseLogger) Fatalf(format string, v ...interface{}) { g.l.Fatalf(format, v...) }
func (g gooseLogger) Printf(format string, v ...interface{}) { g.l.Infof(format, v...) }
