package admission_test

import (
	"context"
	"math"
	"testing"

	"github.com/nonsonwune/rankmatch/admission"
	"github.com/nonsonwune/rankmatch/models"
	"github.com/nonsonwune/rankmatch/rankdata/rankdatatest"
	"github.com/nonsonwune/rankmatch/serrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbabilityLogistic(t *testing.T) {
	assert.InDelta(t, 0.5, admission.Probability(0, 100), 1e-12)
	assert.InDelta(t, 1/(1+math.Exp(-1.5)), admission.Probability(100, 100), 1e-12)
	assert.InDelta(t, 1/(1+math.Exp(1.5)), admission.Probability(-100, 100), 1e-12)
	assert.InDelta(t, 1/(1+math.Exp(-4.5)), admission.Probability(90, 30), 1e-12)
}

func TestProbabilityMonotonicAndSaturating(t *testing.T) {
	for _, seats := range []int{1, 25, 400} {
		prev := -1.0
		for adv := -5000; adv <= 5000; adv += 7 {
			p := admission.Probability(adv, seats)
			require.GreaterOrEqual(t, p, prev, "seats %d adv %d", seats, adv)
			require.True(t, p >= 0 && p <= 1)
			prev = p
		}

		assert.Greater(t, admission.Probability(1_000_000, seats), 0.999999)
		assert.Less(t, admission.Probability(-1_000_000, seats), 1e-6)
	}
}

func TestProbabilityWithoutSeats(t *testing.T) {
	assert.Equal(t, 1.0, admission.Probability(1, 0))
	assert.Equal(t, 0.0, admission.Probability(-1, 0))
	assert.Equal(t, 0.0, admission.Probability(0, 0))
	assert.Equal(t, 1.0, admission.Probability(5, -3))
}

func TestTierBoundaries(t *testing.T) {
	cases := []struct {
		p    float64
		want admission.Tier
	}{
		{1.0, admission.TierVeryHigh},
		{0.9500001, admission.TierVeryHigh},
		{0.95, admission.TierHigh},
		{0.8000001, admission.TierHigh},
		{0.80, admission.TierPromising},
		{0.6000001, admission.TierPromising},
		{0.60, admission.TierBorderline},
		{0.40, admission.TierLow},
		{0.1500001, admission.TierLow},
		{0.15, admission.TierVeryLow},
		{0.0, admission.TierVeryLow},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, admission.TierFor(tc.p), "p=%v", tc.p)
	}
}

func TestTierString(t *testing.T) {
	assert.Equal(t, "very high", admission.TierVeryHigh.String())
	assert.Equal(t, "promising", admission.TierPromising.String())
	assert.Equal(t, "very low", admission.TierVeryLow.String())
	assert.Equal(t, "unknown", admission.Tier(42).String())
}

func TestEstimate(t *testing.T) {
	res, err := admission.Estimate(3200, 3600, 400)
	require.NoError(t, err)
	assert.Equal(t, 400, res.RankAdvantage)
	assert.InDelta(t, 0.8175744762, res.Probability, 1e-9)
	assert.Equal(t, admission.TierHigh, res.Tier)

	res, err = admission.Estimate(3200, 3201, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Probability)
	assert.Equal(t, admission.TierVeryHigh, res.Tier)

	res, err = admission.Estimate(3200, 3199, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Probability)
	assert.Equal(t, admission.TierVeryLow, res.Tier)

	_, err = admission.Estimate(-1, 10, 5)
	require.ErrorIs(t, err, serrors.ErrInvalidInput)
	_, err = admission.Estimate(10, -1, 5)
	require.ErrorIs(t, err, serrors.ErrInvalidInput)
}

func TestEvaluate(t *testing.T) {
	tables := rankdatatest.Tables(t, nil)

	rank, err := admission.CandidateRank(tables, 2025, 538)
	require.NoError(t, err)
	require.Equal(t, 3200, rank)

	cutoffs := []models.AdmissionCutoff{
		{Institution: "Northern University", ProgramGroup: "01", ProgramName: "Law", PriorYear: 2024, MinScore: 545, SeatsAdmitted: 50},
		{Institution: "Northern University", ProgramGroup: "01", ProgramName: "History", PriorYear: 2024, MinScore: 535, SeatsAdmitted: 400},
		{Institution: "Northern University", ProgramGroup: "01", ProgramName: "Museum Studies", PriorYear: 2024, MinScore: 612, SeatsAdmitted: 20},
		{Institution: "Northern University", ProgramGroup: "01", ProgramName: "Archives", PriorYear: 2024, MinScore: 530, SeatsAdmitted: 0},
	}

	outcomes := admission.Evaluate(context.Background(), tables, rank, cutoffs)
	require.Len(t, outcomes, 4)

	law := outcomes[0]
	require.True(t, law.Computable())
	assert.Equal(t, "Law", law.Result.ProgramName)
	assert.Equal(t, 545, law.Result.PriorMinScore)
	assert.Equal(t, 2700, law.Result.PriorMinRank)
	assert.Equal(t, -500, law.Result.RankAdvantage)
	assert.Equal(t, admission.TierVeryLow, law.Result.Tier)

	history := outcomes[1]
	require.True(t, history.Computable())
	assert.Equal(t, 3600, history.Result.PriorMinRank)
	assert.Equal(t, admission.TierHigh, history.Result.Tier)

	museum := outcomes[2]
	assert.False(t, museum.Computable())
	assert.ErrorIs(t, museum.Err, serrors.ErrCompute)
	assert.ErrorIs(t, museum.Err, serrors.ErrNotFound)
	assert.Equal(t, "Museum Studies", museum.Cutoff.ProgramName)

	archives := outcomes[3]
	require.True(t, archives.Computable())
	assert.Equal(t, 1.0, archives.Result.Probability)
	assert.Equal(t, admission.TierVeryHigh, archives.Result.Tier)
}

func TestCatalog(t *testing.T) {
	cutoffs := []models.AdmissionCutoff{
		{Institution: "Northern University", ProgramGroup: "02", ProgramName: "Law"},
		{Institution: "Coastal College", ProgramGroup: "07", ProgramName: "Tourism"},
		{Institution: "Northern University", ProgramGroup: "01", ProgramName: "History"},
		{Institution: "Northern University", ProgramGroup: "02", ProgramName: "Politics"},
	}
	catalog := admission.NewCatalog(cutoffs)
	cutoffs[0].ProgramName = "changed"

	assert.Equal(t, []string{"Northern University", "Coastal College"}, catalog.Institutions())
	assert.Equal(t, []string{"02", "01"}, catalog.Groups("Northern University"))
	assert.Nil(t, catalog.Groups("Unknown"))

	programs := catalog.Programs("Northern University", "02")
	require.Len(t, programs, 2)
	assert.Equal(t, "Law", programs[0].ProgramName)
	assert.Equal(t, "Politics", programs[1].ProgramName)
}
