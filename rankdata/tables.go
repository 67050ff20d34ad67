// Package rankdata holds the per-year score-to-rank tables and the per-year
// admission quotas. Tables is built once and only read afterwards, so it can be
// shared between goroutines without locking.
package rankdata

import (
	"sort"
	"strconv"
	"strings"

	"github.com/nonsonwune/rankmatch/models"
	"github.com/nonsonwune/rankmatch/serrors"
)

// DefaultFloorScore is the score the "below 100" bucket is normalized to.
const DefaultFloorScore = 99

type yearTable struct {
	records []models.ScoreRecord // score descending
	byScore map[int]int
}

// Tables is the immutable lookup context for one loaded data set.
type Tables struct {
	floor  int
	years  map[int]*yearTable
	quotas map[int]models.YearQuota
}

// Option configures Tables.
type Option func(*Tables)

// WithFloorScore sets the sentinel floor. Scores below it are looked up as the
// floor itself.
func WithFloorScore(score int) Option {
	return func(t *Tables) {
		t.floor = score
	}
}

// New validates the records and quotas and builds the lookup tables.
//
// Within a year, scores must be unique and cumulative ranks must not decrease
// as the score decreases.
func New(records []models.ScoreRecord, quotas []models.YearQuota, opts ...Option) (*Tables, error) {
	t := &Tables{
		floor:  DefaultFloorScore,
		years:  make(map[int]*yearTable),
		quotas: make(map[int]models.YearQuota, len(quotas)),
	}
	for _, opt := range opts {
		opt(t)
	}

	for _, r := range records {
		if r.Year <= 0 || r.Score < 0 || r.CumulativeRank < 0 {
			return nil, serrors.With(serrors.ErrInvalidInput,
				"invalid score record year=%d score=%d rank=%d", r.Year, r.Score, r.CumulativeRank)
		}
		yt, ok := t.years[r.Year]
		if !ok {
			yt = &yearTable{byScore: make(map[int]int)}
			t.years[r.Year] = yt
		}
		if _, dup := yt.byScore[r.Score]; dup {
			return nil, serrors.With(serrors.ErrInvalidInput, "duplicate score %d in year %d", r.Score, r.Year)
		}
		yt.byScore[r.Score] = r.CumulativeRank
		yt.records = append(yt.records, r)
	}

	for year, yt := range t.years {
		sort.Slice(yt.records, func(i, j int) bool {
			return yt.records[i].Score > yt.records[j].Score
		})
		for i := 1; i < len(yt.records); i++ {
			if yt.records[i].CumulativeRank < yt.records[i-1].CumulativeRank {
				return nil, serrors.With(serrors.ErrInvalidInput,
					"rank decreases from score %d to %d in year %d",
					yt.records[i-1].Score, yt.records[i].Score, year)
			}
		}
	}

	for _, q := range quotas {
		if q.Year <= 0 {
			return nil, serrors.With(serrors.ErrInvalidInput, "invalid quota year %d", q.Year)
		}
		if _, dup := t.quotas[q.Year]; dup {
			return nil, serrors.With(serrors.ErrInvalidInput, "duplicate quota for year %d", q.Year)
		}
		t.quotas[q.Year] = q
	}

	return t, nil
}

// FloorScore returns the sentinel floor in use.
func (t *Tables) FloorScore() int { return t.floor }

// Rank returns the cumulative rank of score in year.
func (t *Tables) Rank(year, score int) (int, error) {
	if year <= 0 {
		return 0, serrors.With(serrors.ErrInvalidInput, "invalid year %d", year)
	}
	if score < 0 {
		return 0, serrors.With(serrors.ErrInvalidInput, "invalid score %d", score)
	}
	if score < t.floor {
		score = t.floor
	}

	yt, ok := t.years[year]
	if !ok {
		return 0, serrors.With(serrors.ErrNotFound, "no rank table for year %d", year)
	}
	rank, ok := yt.byScore[score]
	if !ok {
		return 0, serrors.With(serrors.ErrNotFound, "no rank for score %d in year %d", score, year)
	}

	return rank, nil
}

// Quota returns the quota row of year.
func (t *Tables) Quota(year int) (models.YearQuota, error) {
	q, ok := t.quotas[year]
	if !ok {
		return models.YearQuota{}, serrors.With(serrors.ErrNotFound, "no quota for year %d", year)
	}

	return q, nil
}

// Records returns a copy of year's records ordered by score, highest first.
func (t *Tables) Records(year int) []models.ScoreRecord {
	yt, ok := t.years[year]
	if !ok {
		return nil
	}
	out := make([]models.ScoreRecord, len(yt.records))
	copy(out, yt.records)

	return out
}

// Years lists the years with a rank table, most recent first.
func (t *Tables) Years() []int {
	years := make([]int, 0, len(t.years))
	for y := range t.years {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	return years
}

// ParseScore parses user input into a score.
func ParseScore(s string) (int, error) {
	score, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrInvalidInput, err, "score %q is not a number", s)
	}
	if score < 0 {
		return 0, serrors.With(serrors.ErrInvalidInput, "score %d is negative", score)
	}

	return score, nil
}
