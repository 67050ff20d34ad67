package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the application configuration. Values come from an optional YAML
// file, overridden by the environment (a local .env file is loaded first).
type Config struct {
	// Environment selects the logger flavour (development or production).
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	Database struct {
		// Driver is either "postgres" or "sqlite".
		Driver string `env:"DB_DRIVER" env-default:"postgres" yaml:"driver"`
		// DSN overrides the connection fields below when set. For sqlite it is the file path.
		DSN      string `env:"DB_DSN" yaml:"dsn"`
		Host     string `env:"DB_HOST" env-default:"localhost" yaml:"host"`
		Port     int    `env:"DB_PORT" env-default:"5432" yaml:"port"`
		User     string `env:"DB_USER" env-default:"postgres" yaml:"user"`
		Password string `env:"DB_PASSWORD" yaml:"password"`
		Name     string `env:"DB_NAME" env-default:"rankmatch" yaml:"name"`
		SslMode  string `env:"DB_SSL_MODE" env-default:"disable" yaml:"sslMode"`
	} `yaml:"database"`

	Analysis struct {
		// SourceYear is the year candidates enter scores for.
		SourceYear int `env:"ANALYSIS_SOURCE_YEAR" env-default:"2025" yaml:"sourceYear"`
		// TargetYears are the prior years scores are mapped into, in report order.
		TargetYears []int `env:"ANALYSIS_TARGET_YEARS" env-default:"2024,2023" yaml:"targetYears"`
		// PriorYear is the year whose admission cutoffs are compared against.
		PriorYear int `env:"ANALYSIS_PRIOR_YEAR" env-default:"2024" yaml:"priorYear"`
		// Track selects the quota column used by the normalized method (A or B).
		Track string `env:"ANALYSIS_TRACK" env-default:"A" yaml:"track"`
		// FloorScore is the value the "below 100" bucket was normalized to.
		FloorScore int `env:"ANALYSIS_FLOOR_SCORE" env-default:"99" yaml:"floorScore"`
	} `yaml:"analysis"`
}

// Load reads configuration. A missing config file is not an error: the
// environment alone is used in that case.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not load .env file: %w", err)
	}

	var cfg Config
	if path != "" && fileExists(path) {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.Driver == DriverSQLite && c.Database.DSN == "" {
		return errors.New("sqlite driver requires DB_DSN")
	}
	if c.Analysis.SourceYear <= 0 || c.Analysis.PriorYear <= 0 {
		return errors.New("analysis years must be positive")
	}
	if len(c.Analysis.TargetYears) == 0 {
		return errors.New("at least one target year is required")
	}
	c.Analysis.Track = strings.ToUpper(strings.TrimSpace(c.Analysis.Track))

	return nil
}

// DataSource returns the database/sql driver name and DSN.
func (c *Config) DataSource() (string, string) {
	db := c.Database
	if db.DSN != "" || db.Driver == DriverSQLite {
		return db.Driver, db.DSN
	}

	return db.Driver, fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		db.Host, db.Port, db.User, db.Password, db.Name, db.SslMode)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}
