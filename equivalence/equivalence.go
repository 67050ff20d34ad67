// Package equivalence maps a score in one year to the score of another year that
// holds the same competitive position.
//
// Two methods are available. The absolute method matches cumulative ranks
// directly. The normalized method first divides the rank by the source year's
// admission quota for a track and scales it by the target year's quota, which
// corrects for seat counts and applicant pools changing between years.
package equivalence

import (
	"fmt"
	"math"
	"strings"

	"github.com/nonsonwune/rankmatch/models"
	"github.com/nonsonwune/rankmatch/rankdata"
	"github.com/nonsonwune/rankmatch/serrors"
)

// Method selects the equivalence algorithm.
type Method string

const (
	MethodAbsolute   Method = "absolute"
	MethodNormalized Method = "normalized"
)

// Methods lists the methods in report order.
var Methods = []Method{MethodNormalized, MethodAbsolute} //nolint: gochecknoglobals

// ParseMethod accepts the method names plus the short forms used in reports
// ("old" for absolute, "new" for normalized).
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "absolute", "abs", "old":
		return MethodAbsolute, nil
	case "normalized", "normalised", "norm", "new":
		return MethodNormalized, nil
	default:
		return "", serrors.With(serrors.ErrInvalidInput, "unknown method %q", s)
	}
}

// Result is one computed mapping.
type Result struct {
	SourceYear  int    `json:"source_year"`
	SourceScore int    `json:"source_score"`
	SourceRank  int    `json:"source_rank"`
	TargetYear  int    `json:"target_year"`
	TargetScore int    `json:"target_score"`
	TargetRank  int    `json:"target_rank"`
	Method      Method `json:"method"`
	// EquivalentRank is the quota-scaled rank searched for in the target year.
	// Only set by the normalized method.
	EquivalentRank float64 `json:"equivalent_rank,omitempty"`
}

// HasEquivalentRank reports whether EquivalentRank is meaningful.
func (r Result) HasEquivalentRank() bool { return r.Method == MethodNormalized }

// Equivalent runs the selected method. The track is ignored by the absolute method.
func Equivalent(t *rankdata.Tables, method Method, track models.Track,
	sourceYear, sourceScore, targetYear int,
) (Result, error) {
	switch method {
	case MethodAbsolute:
		return Absolute(t, sourceYear, sourceScore, targetYear)
	case MethodNormalized:
		return Normalized(t, track, sourceYear, sourceScore, targetYear)
	default:
		return Result{}, serrors.With(serrors.ErrInvalidInput, "unknown method %q", method)
	}
}

// Absolute returns the targetYear score whose cumulative rank is closest to the
// rank of sourceScore in sourceYear.
func Absolute(t *rankdata.Tables, sourceYear, sourceScore, targetYear int) (Result, error) {
	sourceRank, err := t.Rank(sourceYear, sourceScore)
	if err != nil {
		return Result{}, err
	}

	match, err := closest(t, targetYear, float64(sourceRank))
	if err != nil {
		return Result{}, err
	}

	return Result{
		SourceYear:  sourceYear,
		SourceScore: sourceScore,
		SourceRank:  sourceRank,
		TargetYear:  targetYear,
		TargetScore: match.Score,
		TargetRank:  match.CumulativeRank,
		Method:      MethodAbsolute,
	}, nil
}

// Normalized returns the targetYear score whose cumulative rank is closest to
//
//	sourceRank / quota(sourceYear, track) * quota(targetYear, track)
func Normalized(t *rankdata.Tables, track models.Track, sourceYear, sourceScore, targetYear int) (Result, error) {
	sourceRank, err := t.Rank(sourceYear, sourceScore)
	if err != nil {
		return Result{}, err
	}

	sourceQuota, err := trackQuota(t, track, sourceYear)
	if err != nil {
		return Result{}, err
	}
	targetQuota, err := trackQuota(t, track, targetYear)
	if err != nil {
		return Result{}, err
	}

	percentage := float64(sourceRank) / float64(sourceQuota)
	equivalentRank := percentage * float64(targetQuota)

	match, err := closest(t, targetYear, equivalentRank)
	if err != nil {
		return Result{}, err
	}

	return Result{
		SourceYear:     sourceYear,
		SourceScore:    sourceScore,
		SourceRank:     sourceRank,
		TargetYear:     targetYear,
		TargetScore:    match.Score,
		TargetRank:     match.CumulativeRank,
		Method:         MethodNormalized,
		EquivalentRank: equivalentRank,
	}, nil
}

func trackQuota(t *rankdata.Tables, track models.Track, year int) (int, error) {
	q, err := t.Quota(year)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrCompute, err, "normalizing by %s quota", track)
	}
	quota := q.QuotaFor(track)
	if quota <= 0 {
		return 0, serrors.With(serrors.ErrCompute, "year %d has no quota for track %s", year, track)
	}

	return quota, nil
}

// closest picks the record of year with the smallest |rank - target|. On a tie
// the higher score wins.
func closest(t *rankdata.Tables, year int, target float64) (models.ScoreRecord, error) {
	records := t.Records(year)
	if len(records) == 0 {
		return models.ScoreRecord{}, serrors.With(serrors.ErrNotFound, "no rank table for year %d", year)
	}

	best := records[0]
	bestDiff := math.Abs(float64(best.CumulativeRank) - target)
	for _, r := range records[1:] {
		diff := math.Abs(float64(r.CumulativeRank) - target)
		if diff < bestDiff || (diff == bestDiff && r.Score > best.Score) {
			best, bestDiff = r, diff
		}
	}

	return best, nil
}

// String renders a result for logs.
func (r Result) String() string {
	s := fmt.Sprintf("%d/%d (rank %d) -> %d/%d (rank %d) [%s]",
		r.SourceYear, r.SourceScore, r.SourceRank, r.TargetYear, r.TargetScore, r.TargetRank, r.Method)
	if r.HasEquivalentRank() {
		s += fmt.Sprintf(" equivalent rank %.1f", r.EquivalentRank)
	}

	return s
}
