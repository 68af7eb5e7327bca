package domain

import (
	"math"
	"strconv"
	"time"
)

// TimestampLayout is how history timestamps are written to flat files.
const TimestampLayout = "2006-01-02 15:04:05"

// HistoryEntry summarizes one completed route computation.
type HistoryEntry struct {
	Start      string
	End        string
	Vehicle    Vehicle
	DistanceKm float64
	Duration   string
	Timestamp  time.Time
}

// NewHistoryEntry summarizes r. Distance is rounded to two decimals.
func NewHistoryEntry(r RouteResult, at time.Time) HistoryEntry {
	return HistoryEntry{
		Start:      r.Origin.DisplayName,
		End:        r.Destination.DisplayName,
		Vehicle:    r.Vehicle,
		DistanceKm: math.Round(r.DistanceKm*100) / 100,
		Duration:   r.Duration,
		Timestamp:  at,
	}
}

// DistanceText renders the distance with exactly two decimals.
func (h HistoryEntry) DistanceText() string {
	return strconv.FormatFloat(h.DistanceKm, 'f', 2, 64)
}

// Favorite is a saved place. Names are not unique.
type Favorite struct {
	Name     string
	Location string
}
