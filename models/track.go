package models

import (
	"fmt"
	"strings"
)

// Track is an admission track with its own quota (humanities or sciences).
type Track string

const (
	// TrackA is the history/humanities track.
	TrackA Track = "A"
	// TrackB is the physics/science track.
	TrackB Track = "B"
)

// ParseTrack accepts "A"/"B" as well as the descriptive names.
func ParseTrack(s string) (Track, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "history", "humanities":
		return TrackA, nil
	case "b", "physics", "science":
		return TrackB, nil
	default:
		return "", fmt.Errorf("unknown track %q", s)
	}
}
