package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nonsonwune/rankmatch/config"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsFromEnvironment(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, 2025, cfg.Analysis.SourceYear)
	require.Equal(t, []int{2024, 2023}, cfg.Analysis.TargetYears)
	require.Equal(t, 2024, cfg.Analysis.PriorYear)
	require.Equal(t, "A", cfg.Analysis.Track)
	require.Equal(t, 99, cfg.Analysis.FloorScore)

	driver, dsn := cfg.DataSource()
	require.Equal(t, config.DriverPostgres, driver)
	require.Contains(t, dsn, "dbname=rankmatch")
	require.Contains(t, dsn, "port=5432")
}

func TestLoadYAMLWithEnvOverride(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "config.yml")
	yml := `environment: production
database:
  driver: sqlite
  dsn: ranks.db
analysis:
  sourceYear: 2025
  targetYears: [2024]
  track: b
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))
	t.Setenv("ANALYSIS_PRIOR_YEAR", "2023")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, []int{2024}, cfg.Analysis.TargetYears)
	require.Equal(t, 2023, cfg.Analysis.PriorYear)
	require.Equal(t, "B", cfg.Analysis.Track)

	driver, dsn := cfg.DataSource()
	require.Equal(t, config.DriverSQLite, driver)
	require.Equal(t, "ranks.db", dsn)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	_, err := config.Load("")
	require.ErrorContains(t, err, "unsupported database driver")
}

func TestLoadSQLiteNeedsDSN(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")

	_, err := config.Load("")
	require.ErrorContains(t, err, "requires DB_DSN")
}
