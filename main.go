// Package main provides the rankmatch CLI. It maps exam scores between years
// and estimates admission chances against prior cutoffs.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/nonsonwune/rankmatch/config"
	"github.com/nonsonwune/rankmatch/logger"
	"github.com/nonsonwune/rankmatch/models"
	"github.com/nonsonwune/rankmatch/rankdata"
	"github.com/nonsonwune/rankmatch/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is shared by every subcommand. cfg is set once flags are parsed.
type app struct {
	configPath string
	cfg        *config.Config
}

// openStore connects to the configured database and returns it with a cleanup
// function.
func (a *app) openStore(ctx context.Context) (*store.Store, func(), error) {
	driver, dsn := a.cfg.DataSource()
	s, err := store.Open(ctx, driver, dsn)
	if err != nil {
		return nil, nil, err
	}

	return s, func() {
		if err := s.Close(); err != nil {
			logger.Warn(ctx, "could not close database", zap.Error(err))
		}
	}, nil
}

// loadTables reads the rank tables with the configured floor score.
func (a *app) loadTables(ctx context.Context, s *store.Store) (*rankdata.Tables, error) {
	return s.LoadTables(ctx, rankdata.WithFloorScore(a.cfg.Analysis.FloorScore))
}

func (a *app) track() (models.Track, error) {
	return models.ParseTrack(a.cfg.Analysis.Track)
}

func rootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "rankmatch",
		Short:         "Score equivalence and admission probability",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return fmt.Errorf("could not load config: %w", err)
			}
			a.cfg = cfg
			logger.Setup(cfg.Environment)

			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "config.yml", "Config File Path")

	rootCmd.AddCommand(
		migrateCommand(a),
		equivCommand(a),
		rangeCommand(a),
		institutionsCommand(a),
		groupsCommand(a),
		probabilityCommand(a),
	)

	return rootCmd
}

func main() {
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	err := rootCommand().ExecuteContext(ctx)
	logger.Sync()
	if err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1) //nolint: gocritic
	}
}
