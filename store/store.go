// Package store reads and writes the rank, quota and cutoff tables in
// PostgreSQL or SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // goqu dialect: postgres
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"  // goqu dialect: sqlite3
	_ "github.com/lib/pq"                                // driver: postgres
	"github.com/nonsonwune/rankmatch/logger"
	"github.com/nonsonwune/rankmatch/migrations"
	"github.com/nonsonwune/rankmatch/models"
	"github.com/nonsonwune/rankmatch/rankdata"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // driver: sqlite
)

const (
	scoreRanksTable       = "score_ranks"
	yearQuotasTable       = "year_quotas"
	admissionCutoffsTable = "admission_cutoffs"
)

// dialects maps a database/sql driver name to its goqu and goose dialects.
var dialects = map[string]string{ //nolint: gochecknoglobals
	"postgres": "postgres",
	"sqlite":   "sqlite3",
}

// Store is a handle on the analysis tables.
type Store struct {
	db      *sql.DB
	dialect string
	builder *goqu.Database
}

// Open connects using a database/sql driver name ("postgres" or "sqlite").
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	if _, ok := dialects[driver]; !ok {
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open %s database: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("could not reach %s database: %w", driver, err)
	}

	return New(db, driver)
}

// New wraps an open database.
func New(db *sql.DB, driver string) (*Store, error) {
	dialect, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	return &Store{db: db, dialect: dialect, builder: goqu.New(dialect, db)}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate applies pending migrations and checks the schema.
func (s *Store) Migrate(ctx context.Context) error {
	if err := migrations.Up(ctx, s.db, s.dialect); err != nil {
		return err
	}

	return migrations.InitSchema(ctx, s.db)
}

// ScoreRecords returns every score record, by year and score descending.
func (s *Store) ScoreRecords(ctx context.Context) ([]models.ScoreRecord, error) {
	var records []models.ScoreRecord
	err := s.builder.From(scoreRanksTable).
		Order(goqu.I("year").Desc(), goqu.I("score").Desc()).
		ScanStructsContext(ctx, &records)
	if err != nil {
		return nil, fmt.Errorf("could not read score records: %w", err)
	}

	return records, nil
}

// YearQuotas returns every year quota, most recent first.
func (s *Store) YearQuotas(ctx context.Context) ([]models.YearQuota, error) {
	var quotas []models.YearQuota
	err := s.builder.From(yearQuotasTable).
		Order(goqu.I("year").Desc()).
		ScanStructsContext(ctx, &quotas)
	if err != nil {
		return nil, fmt.Errorf("could not read year quotas: %w", err)
	}

	return quotas, nil
}

// AdmissionCutoffs returns the cutoffs of priorYear, or of all years when
// priorYear is 0.
func (s *Store) AdmissionCutoffs(ctx context.Context, priorYear int) ([]models.AdmissionCutoff, error) {
	ds := s.builder.From(admissionCutoffsTable).
		Order(goqu.I("institution").Asc(), goqu.I("program_group").Asc(), goqu.I("program_name").Asc())
	if priorYear != 0 {
		ds = ds.Where(goqu.I("prior_year").Eq(priorYear))
	}

	var cutoffs []models.AdmissionCutoff
	if err := ds.ScanStructsContext(ctx, &cutoffs); err != nil {
		return nil, fmt.Errorf("could not read admission cutoffs: %w", err)
	}

	return cutoffs, nil
}

// LoadTables reads score records and quotas and builds the lookup tables.
func (s *Store) LoadTables(ctx context.Context, opts ...rankdata.Option) (*rankdata.Tables, error) {
	records, err := s.ScoreRecords(ctx)
	if err != nil {
		return nil, err
	}
	quotas, err := s.YearQuotas(ctx)
	if err != nil {
		return nil, err
	}

	tables, err := rankdata.New(records, quotas, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not build rank tables: %w", err)
	}
	logger.Info(ctx, "rank tables loaded",
		zap.Int("records", len(records)),
		zap.Int("quotas", len(quotas)),
		zap.Ints("years", tables.Years()),
	)

	return tables, nil
}

// SaveScoreRecords replaces the score tables of every year present in
// records.
func (s *Store) SaveScoreRecords(ctx context.Context, records ...models.ScoreRecord) error {
	if len(records) == 0 {
		return nil
	}
	years := make([]int, 0, len(records))
	for _, r := range records {
		years = append(years, r.Year)
	}

	if err := s.replace(ctx, scoreRanksTable, "year", years, records); err != nil {
		return fmt.Errorf("could not store score records: %w", err)
	}

	return nil
}

// SaveYearQuotas replaces the quotas of every year present in quotas.
func (s *Store) SaveYearQuotas(ctx context.Context, quotas ...models.YearQuota) error {
	if len(quotas) == 0 {
		return nil
	}
	years := make([]int, 0, len(quotas))
	for _, q := range quotas {
		years = append(years, q.Year)
	}

	if err := s.replace(ctx, yearQuotasTable, "year", years, quotas); err != nil {
		return fmt.Errorf("could not store year quotas: %w", err)
	}

	return nil
}

// SaveAdmissionCutoffs replaces the cutoffs of every prior year present in
// cutoffs.
func (s *Store) SaveAdmissionCutoffs(ctx context.Context, cutoffs ...models.AdmissionCutoff) error {
	if len(cutoffs) == 0 {
		return nil
	}
	years := make([]int, 0, len(cutoffs))
	for _, c := range cutoffs {
		years = append(years, c.PriorYear)
	}

	if err := s.replace(ctx, admissionCutoffsTable, "prior_year", years, cutoffs); err != nil {
		return fmt.Errorf("could not store admission cutoffs: %w", err)
	}

	return nil
}

// replace deletes the rows of table whose yearColumn is in years and inserts
// rows, in one transaction.
func (s *Store) replace(ctx context.Context, table, yearColumn string, years []int, rows interface{}) error {
	return s.builder.WithTx(func(tx *goqu.TxDatabase) error {
		if _, err := tx.Delete(table).
			Where(goqu.I(yearColumn).In(years)).
			Executor().ExecContext(ctx); err != nil {
			return err
		}
		if _, err := tx.Insert(table).Rows(rows).Executor().ExecContext(ctx); err != nil {
			return err
		}
		logger.Debug(ctx, "rows replaced", zap.String("table", table), zap.Ints("years", years))

		return nil
	})
}
