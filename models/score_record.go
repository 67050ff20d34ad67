package models

// ScoreRecord represents the score_ranks table: one row of a year's
// score-to-rank table. CumulativeRank is the number of candidates scoring at or
// above Score in Year.
type ScoreRecord struct {
	Year           int `db:"year" json:"year"`
	Score          int `db:"score" json:"score"`
	CumulativeRank int `db:"cumulative_rank" json:"cumulative_rank"`
}
