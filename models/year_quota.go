package models

// YearQuota represents the year_quotas table. A zero quota means the value is
// unknown for that year.
type YearQuota struct {
	Year            int   `db:"year" json:"year"`
	TotalCandidates int64 `db:"total_candidates" json:"total_candidates"`
	QuotaTrackA     int   `db:"quota_track_a" json:"quota_track_a"`
	QuotaTrackB     int   `db:"quota_track_b" json:"quota_track_b"`
}

// QuotaFor returns the planned admission quota of the given track.
func (q YearQuota) QuotaFor(t Track) int {
	switch t {
	case TrackA:
		return q.QuotaTrackA
	case TrackB:
		return q.QuotaTrackB
	default:
		return 0
	}
}
