package admission

import (
	"context"

	"github.com/nonsonwune/rankmatch/logger"
	"github.com/nonsonwune/rankmatch/models"
	"github.com/nonsonwune/rankmatch/rankdata"
	"github.com/nonsonwune/rankmatch/serrors"
	"go.uber.org/zap"
)

// Outcome is the estimate of one program, or the reason it could not be made.
type Outcome struct {
	Cutoff models.AdmissionCutoff
	Result Result
	Err    error
}

// Computable reports whether Result is valid.
func (o Outcome) Computable() bool { return o.Err == nil }

// CandidateRank resolves the rank of a candidate's score in the current year.
func CandidateRank(t *rankdata.Tables, year, score int) (int, error) {
	return t.Rank(year, score)
}

// Evaluate estimates every cutoff for a candidate ranked candidateRank. Each
// cutoff score is converted to a rank of its own prior year. A cutoff whose
// rank cannot be resolved yields an uncomputable outcome; the remaining
// programs are still evaluated.
func Evaluate(ctx context.Context, t *rankdata.Tables, candidateRank int, cutoffs []models.AdmissionCutoff) []Outcome {
	out := make([]Outcome, 0, len(cutoffs))
	for _, c := range cutoffs {
		o := Outcome{Cutoff: c}

		cutoffRank, err := t.Rank(c.PriorYear, c.MinScore)
		if err != nil {
			o.Err = serrors.Wrap(serrors.ErrCompute, err, "program %q has no %d rank for score %d",
				c.ProgramName, c.PriorYear, c.MinScore)
			logger.Warn(ctx, "program uncomputable",
				zap.String("institution", c.Institution),
				zap.String("program", c.ProgramName),
				zap.Error(err),
			)
			out = append(out, o)

			continue
		}

		res, err := Estimate(candidateRank, cutoffRank, c.SeatsAdmitted)
		if err != nil {
			o.Err = err
			out = append(out, o)

			continue
		}
		res.ProgramName = c.ProgramName
		res.PriorMinScore = c.MinScore
		o.Result = res
		out = append(out, o)
	}

	return out
}
