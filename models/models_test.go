package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTrack(t *testing.T) {
	cases := map[string]Track{
		"A":          TrackA,
		" b ":        TrackB,
		"History":    TrackA,
		"physics":    TrackB,
		"science":    TrackB,
		"humanities": TrackA,
	}
	for in, want := range cases {
		got, err := ParseTrack(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseTrack("C")
	assert.Error(t, err)
}

func TestQuotaFor(t *testing.T) {
	q := YearQuota{Year: 2025, TotalCandidates: 760000, QuotaTrackA: 21000, QuotaTrackB: 64000}

	assert.Equal(t, 21000, q.QuotaFor(TrackA))
	assert.Equal(t, 64000, q.QuotaFor(TrackB))
	assert.Equal(t, 0, q.QuotaFor(Track("X")))
}
