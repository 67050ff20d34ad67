package rankdata_test

import (
	"sync"
	"testing"

	"github.com/nonsonwune/rankmatch/models"
	"github.com/nonsonwune/rankmatch/rankdata"
	"github.com/nonsonwune/rankmatch/rankdata/rankdatatest"
	"github.com/nonsonwune/rankmatch/serrors"
	"github.com/stretchr/testify/require"
)

func TestRankLookup(t *testing.T) {
	tables := rankdatatest.Tables(t, nil)

	rank, err := tables.Rank(2025, 538)
	require.NoError(t, err)
	require.Equal(t, 1000+22*100, rank)

	rank, err = tables.Rank(2024, 565)
	require.NoError(t, err)
	require.Equal(t, 900, rank)
}

func TestRankClampsBelowFloor(t *testing.T) {
	tables := rankdatatest.Tables(t, nil)

	for _, score := range []int{0, 42, 98, 99} {
		rank, err := tables.Rank(2025, score)
		require.NoError(t, err, "score %d", score)
		require.Equal(t, 500000, rank)
	}

	// 100 is above the floor and has no record of its own
	_, err := tables.Rank(2025, 100)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestRankCustomFloor(t *testing.T) {
	records := []models.ScoreRecord{
		{Year: 2025, Score: 200, CumulativeRank: 10},
		{Year: 2025, Score: 150, CumulativeRank: 90},
	}
	tables, err := rankdata.New(records, nil, rankdata.WithFloorScore(150))
	require.NoError(t, err)
	require.Equal(t, 150, tables.FloorScore())

	rank, err := tables.Rank(2025, 120)
	require.NoError(t, err)
	require.Equal(t, 90, rank)
}

func TestRankErrors(t *testing.T) {
	tables := rankdatatest.Tables(t, nil)

	_, err := tables.Rank(2019, 538)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	_, err = tables.Rank(2025, 600)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	_, err = tables.Rank(2025, -1)
	require.ErrorIs(t, err, serrors.ErrInvalidInput)

	_, err = tables.Rank(0, 538)
	require.ErrorIs(t, err, serrors.ErrInvalidInput)
}

func TestQuotaLookup(t *testing.T) {
	tables := rankdatatest.Tables(t, nil)

	q, err := tables.Quota(2024)
	require.NoError(t, err)
	require.Equal(t, 18000, q.QuotaFor(models.TrackA))

	_, err = tables.Quota(2010)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestRecordsAndYears(t *testing.T) {
	tables := rankdatatest.Tables(t, nil)

	require.Equal(t, []int{2025, 2024, 2023}, tables.Years())

	recs := tables.Records(2025)
	require.Len(t, recs, 62)
	require.Equal(t, 560, recs[0].Score)
	require.Equal(t, 99, recs[len(recs)-1].Score)

	// returned slice is a copy
	recs[0].CumulativeRank = -5
	again := tables.Records(2025)
	require.Equal(t, 1000, again[0].CumulativeRank)

	require.Nil(t, tables.Records(1999))
}

func TestNewRejectsBadData(t *testing.T) {
	cases := []struct {
		name    string
		records []models.ScoreRecord
		quotas  []models.YearQuota
	}{
		{
			name: "duplicate score",
			records: []models.ScoreRecord{
				{Year: 2025, Score: 500, CumulativeRank: 10},
				{Year: 2025, Score: 500, CumulativeRank: 11},
			},
		},
		{
			name: "rank decreasing with score",
			records: []models.ScoreRecord{
				{Year: 2025, Score: 501, CumulativeRank: 20},
				{Year: 2025, Score: 500, CumulativeRank: 10},
			},
		},
		{
			name:    "negative score",
			records: []models.ScoreRecord{{Year: 2025, Score: -3, CumulativeRank: 1}},
		},
		{
			name:   "duplicate quota year",
			quotas: []models.YearQuota{{Year: 2025}, {Year: 2025}},
		},
		{
			name:   "zero quota year",
			quotas: []models.YearQuota{{Year: 0}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := rankdata.New(tc.records, tc.quotas)
			require.ErrorIs(t, err, serrors.ErrInvalidInput)
		})
	}
}

func TestConcurrentReaders(t *testing.T) {
	tables := rankdatatest.Tables(t, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for s := 500; s <= 560; s++ {
				rank, err := tables.Rank(2025, s)
				if err != nil || rank != 1000+(560-s)*100 {
					t.Errorf("worker %d: score %d got rank %d err %v", offset, s, rank, err)
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestParseScore(t *testing.T) {
	score, err := rankdata.ParseScore(" 538 ")
	require.NoError(t, err)
	require.Equal(t, 538, score)

	_, err = rankdata.ParseScore("five hundred")
	require.ErrorIs(t, err, serrors.ErrInvalidInput)

	_, err = rankdata.ParseScore("-4")
	require.ErrorIs(t, err, serrors.ErrInvalidInput)
}
