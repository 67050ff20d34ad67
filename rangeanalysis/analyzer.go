// Package rangeanalysis maps every score of an interval through the
// equivalence methods.
package rangeanalysis

import (
	"context"
	"errors"

	"github.com/nonsonwune/rankmatch/equivalence"
	"github.com/nonsonwune/rankmatch/logger"
	"github.com/nonsonwune/rankmatch/models"
	"github.com/nonsonwune/rankmatch/rankdata"
	"github.com/nonsonwune/rankmatch/serrors"
	"go.uber.org/zap"
)

// ErrNoValidRows is returned when no score of the interval has a source-year record.
var ErrNoValidRows = errors.New("no valid rows in score range")

// Analyzer runs range reports against fixed tables and years.
type Analyzer struct {
	Tables      *rankdata.Tables
	Track       models.Track
	SourceYear  int
	TargetYears []int
}

// Report is the result of one run. Rows are ordered by score, highest first.
type Report struct {
	Low, High int
	Rows      []equivalence.Row
	// Skipped lists the scores of the interval that had no source-year record.
	Skipped []int
}

// Run analyzes every integer score from center+halfWidth down to
// center-halfWidth. Scores without a source-year record are skipped. Scores
// below the tables' floor are skipped as well since they all share the floor
// bucket.
func (a *Analyzer) Run(ctx context.Context, center, halfWidth int) (*Report, error) {
	if center < 0 {
		return nil, serrors.With(serrors.ErrInvalidInput, "invalid center score %d", center)
	}
	if halfWidth < 0 {
		return nil, serrors.With(serrors.ErrInvalidInput, "invalid half width %d", halfWidth)
	}

	ctx = logger.WithFields(ctx,
		zap.Int("source_year", a.SourceYear),
		zap.Int("center", center),
		zap.Int("half_width", halfWidth),
	)

	report := &Report{Low: center - halfWidth, High: center + halfWidth}
	for score := report.High; score >= report.Low; score-- {
		if score < a.Tables.FloorScore() {
			report.Skipped = append(report.Skipped, score)
			continue
		}

		row, err := equivalence.Report(a.Tables, a.Track, a.SourceYear, score, a.TargetYears)
		if err != nil {
			if serrors.IsNotFound(err) {
				logger.Debug(ctx, "skipping score without source record", zap.Int("score", score))
				report.Skipped = append(report.Skipped, score)
				continue
			}

			return nil, err
		}
		for _, c := range row.Cells {
			if !c.OK() {
				logger.Debug(ctx, "mapping failed",
					zap.Int("score", score),
					zap.Int("target_year", c.TargetYear),
					zap.String("method", string(c.Method)),
					zap.Error(c.Err),
				)
			}
		}
		report.Rows = append(report.Rows, row)
	}

	if len(report.Rows) == 0 {
		return report, ErrNoValidRows
	}

	logger.Debug(ctx, "range analyzed", zap.Int("rows", len(report.Rows)), zap.Int("skipped", len(report.Skipped)))

	return report, nil
}
