// Package rankdatatest provides a small synthetic data set for tests.
package rankdatatest

import (
	"testing"

	"github.com/nonsonwune/rankmatch/models"
	"github.com/nonsonwune/rankmatch/rankdata"
)

// Rank formulas per year; every year is linear so expected values are easy to
// derive by hand.
//
//	2025: scores 500..560, rank = 1000 + (560-score)*100
//	2024: scores 500..565, rank =  900 + (565-score)*90
//	2023: scores 500..570, rank =  800 + (570-score)*80
//
// Every year also has the floor bucket (99) with a rank above all others.
func Records() []models.ScoreRecord {
	var out []models.ScoreRecord
	add := func(year, top, base, step int) {
		for s := top; s >= 500; s-- {
			out = append(out, models.ScoreRecord{Year: year, Score: s, CumulativeRank: base + (top-s)*step})
		}
		out = append(out, models.ScoreRecord{Year: year, Score: rankdata.DefaultFloorScore, CumulativeRank: 500000})
	}
	add(2025, 560, 1000, 100)
	add(2024, 565, 900, 90)
	add(2023, 570, 800, 80)

	return out
}

// Quotas returns quotas for 2025..2023. 2023 has no track B quota.
func Quotas() []models.YearQuota {
	return []models.YearQuota{
		{Year: 2025, TotalCandidates: 760000, QuotaTrackA: 20000, QuotaTrackB: 60000},
		{Year: 2024, TotalCandidates: 730000, QuotaTrackA: 18000, QuotaTrackB: 58000},
		{Year: 2023, TotalCandidates: 700000, QuotaTrackA: 16000, QuotaTrackB: 0},
	}
}

// Without returns Records minus the given source scores of year.
func Without(year int, scores ...int) []models.ScoreRecord {
	drop := make(map[int]bool, len(scores))
	for _, s := range scores {
		drop[s] = true
	}
	var out []models.ScoreRecord
	for _, r := range Records() {
		if r.Year == year && drop[r.Score] {
			continue
		}
		out = append(out, r)
	}

	return out
}

// Tables builds the fixture tables or fails the test.
func Tables(tb testing.TB, records []models.ScoreRecord, opts ...rankdata.Option) *rankdata.Tables {
	tb.Helper()
	if records == nil {
		records = Records()
	}
	t, err := rankdata.New(records, Quotas(), opts...)
	if err != nil {
		tb.Fatalf("building fixture tables: %v", err)
	}

	return t
}
