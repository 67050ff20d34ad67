package main

import (
	"errors"
	"strconv"

	"github.com/fatih/color"
	"github.com/nonsonwune/rankmatch/equivalence"
	"github.com/nonsonwune/rankmatch/rangeanalysis"
	"github.com/nonsonwune/rankmatch/rankdata"
	"github.com/spf13/cobra"
)

func equivCommand(a *app) *cobra.Command {
	var (
		scoreArg  string
		methodArg string
		year      int
		target    int
	)

	cmd := &cobra.Command{
		Use:   "equiv",
		Short: "Maps a score into prior years",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w := cmd.OutOrStdout()

			score, err := rankdata.ParseScore(scoreArg)
			if err != nil {
				return err
			}
			track, err := a.track()
			if err != nil {
				return err
			}

			sourceYear := a.cfg.Analysis.SourceYear
			if year != 0 {
				sourceYear = year
			}
			targetYears := a.cfg.Analysis.TargetYears
			if target != 0 {
				targetYears = []int{target}
			}

			s, closeStore, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			tables, err := a.loadTables(ctx, s)
			if err != nil {
				return err
			}

			if methodArg == "" {
				row, err := equivalence.Report(tables, track, sourceYear, score, targetYears)
				if err != nil {
					return err
				}
				heading(w, "Score %d in %d (rank %d), track %s", score, sourceYear, row.SourceRank, track)
				renderRow(w, row)

				return nil
			}

			method, err := equivalence.ParseMethod(methodArg)
			if err != nil {
				return err
			}
			heading(w, "Score %d in %d, %s method, track %s", score, sourceYear, method, track)
			table := newTable(w, "Target Year", "Score", "Rank", "Equivalent Rank")
			for _, ty := range targetYears {
				res, err := equivalence.Equivalent(tables, method, track, sourceYear, score, ty)
				if err != nil {
					table.Append([]string{strconv.Itoa(ty), notAvailable, color.RedString(err.Error()), "-"})
					continue
				}
				table.Append([]string{
					strconv.Itoa(ty), strconv.Itoa(res.TargetScore), strconv.Itoa(res.TargetRank),
					equivalentRankText(res),
				})
			}
			table.Render()

			return nil
		},
	}
	cmd.Flags().StringVarP(&scoreArg, "score", "s", "", "Score to map")
	cmd.Flags().StringVarP(&methodArg, "method", "m", "", "absolute or normalized (both when empty)")
	cmd.Flags().IntVar(&year, "year", 0, "Source year (configured source year when 0)")
	cmd.Flags().IntVarP(&target, "target", "t", 0, "Target year (every configured target year when 0)")
	_ = cmd.MarkFlagRequired("score")

	return cmd
}

func rangeCommand(a *app) *cobra.Command {
	var (
		center int
		width  int
	)

	cmd := &cobra.Command{
		Use:   "range",
		Short: "Maps every score around a center score into prior years",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w := cmd.OutOrStdout()

			track, err := a.track()
			if err != nil {
				return err
			}

			s, closeStore, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			tables, err := a.loadTables(ctx, s)
			if err != nil {
				return err
			}

			analyzer := &rangeanalysis.Analyzer{
				Tables:      tables,
				Track:       track,
				SourceYear:  a.cfg.Analysis.SourceYear,
				TargetYears: a.cfg.Analysis.TargetYears,
			}
			report, err := analyzer.Run(ctx, center, width)
			if errors.Is(err, rangeanalysis.ErrNoValidRows) {
				note(w, "No valid rows between %d and %d.", report.Low, report.High)
				return nil
			}
			if err != nil {
				return err
			}

			heading(w, "Scores %d to %d in %d, track %s", report.High, report.Low, analyzer.SourceYear, track)
			renderRange(w, report.Rows, analyzer.TargetYears)
			if len(report.Skipped) > 0 {
				note(w, "Skipped scores: %s", joinInts(report.Skipped))
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&center, "center", 0, "Center score")
	cmd.Flags().IntVarP(&width, "width", "w", 5, "Scores on each side of the center")
	_ = cmd.MarkFlagRequired("center")

	return cmd
}
