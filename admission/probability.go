// Package admission estimates the chance of being admitted to a program from
// the gap between a candidate's rank and the program's prior-year cutoff rank.
package admission

import (
	"math"

	"github.com/nonsonwune/rankmatch/serrors"
)

// Steepness of the logistic curve. One seat-count of rank advantage gives
// roughly 0.82, three give 0.99.
const Steepness = 1.5

// Tier is a qualitative probability level.
type Tier int

const (
	TierVeryLow Tier = iota
	TierLow
	TierBorderline
	TierPromising
	TierHigh
	TierVeryHigh
)

var tierNames = map[Tier]string{ //nolint: gochecknoglobals
	TierVeryLow:    "very low",
	TierLow:        "low",
	TierBorderline: "borderline",
	TierPromising:  "promising",
	TierHigh:       "high",
	TierVeryHigh:   "very high",
}

func (t Tier) String() string {
	if s, ok := tierNames[t]; ok {
		return s
	}

	return "unknown"
}

// tierThresholds are exclusive lower bounds, highest first.
var tierThresholds = []struct { //nolint: gochecknoglobals
	above float64
	tier  Tier
}{
	{0.95, TierVeryHigh},
	{0.80, TierHigh},
	{0.60, TierPromising},
	{0.40, TierBorderline},
	{0.15, TierLow},
}

// TierFor maps a probability to its tier. A probability equal to a threshold
// falls into the lower tier.
func TierFor(p float64) Tier {
	for _, th := range tierThresholds {
		if p > th.above {
			return th.tier
		}
	}

	return TierVeryLow
}

// Probability converts a rank advantage (prior cutoff rank minus candidate
// rank) into a probability. With seats > 0 the advantage is measured in
// seat-counts and fed through a logistic curve. Without seat data the answer
// is 1 for a positive advantage and 0 otherwise.
func Probability(rankAdvantage, seats int) float64 {
	if seats <= 0 {
		if rankAdvantage > 0 {
			return 1.0
		}

		return 0.0
	}

	x := float64(rankAdvantage) / float64(seats)

	return 1 / (1 + math.Exp(-Steepness*x))
}

// Result is the estimate for one program.
type Result struct {
	ProgramName   string  `json:"program_name,omitempty"`
	PriorMinScore int     `json:"prior_min_score,omitempty"`
	PriorMinRank  int     `json:"prior_min_rank"`
	PriorSeats    int     `json:"prior_seats"`
	CandidateRank int     `json:"candidate_rank"`
	RankAdvantage int     `json:"rank_advantage"`
	Probability   float64 `json:"probability"`
	Tier          Tier    `json:"tier"`
}

// Estimate computes the admission probability of a candidate ranked
// candidateRank against a program whose lowest admitted rank last time was
// priorCutoffRank with priorSeats admitted.
func Estimate(candidateRank, priorCutoffRank, priorSeats int) (Result, error) {
	if candidateRank < 0 {
		return Result{}, serrors.With(serrors.ErrInvalidInput, "invalid candidate rank %d", candidateRank)
	}
	if priorCutoffRank < 0 {
		return Result{}, serrors.With(serrors.ErrInvalidInput, "invalid cutoff rank %d", priorCutoffRank)
	}

	advantage := priorCutoffRank - candidateRank
	p := Probability(advantage, priorSeats)

	return Result{
		PriorMinRank:  priorCutoffRank,
		PriorSeats:    priorSeats,
		CandidateRank: candidateRank,
		RankAdvantage: advantage,
		Probability:   p,
		Tier:          TierFor(p),
	}, nil
}
