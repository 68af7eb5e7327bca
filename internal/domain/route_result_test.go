package domain

import (
	"math"
	"testing"
	"time"
)

func TestNewRouteResult(t *testing.T) {
	origin := ResolvedLocation{Coordinates: Coordinates{Lat: 42.36, Lon: -71.06}, DisplayName: "Boston, Massachusetts, United States"}
	dest := ResolvedLocation{Coordinates: Coordinates{Lat: 42.37, Lon: -71.11}, DisplayName: "Cambridge, Massachusetts, United States"}

	leg := RouteLeg{
		DistanceMeters: 16000,
		TimeMillis:     1_800_000,
		Instructions: []Instruction{
			{Text: "Continue onto Main St", DistanceMeters: 1610},
			{Text: "Arrive at destination", DistanceMeters: 0},
		},
		Points: []Coordinates{{Lat: 42.36, Lon: -71.06}, {Lat: 42.37, Lon: -71.11}},
	}

	r := NewRouteResult(origin, dest, VehicleCar, leg)

	if r.DistanceKm != 16.0 {
		t.Errorf("DistanceKm = %v, want 16", r.DistanceKm)
	}
	if math.Abs(r.DistanceMiles-9.94) > 0.01 {
		t.Errorf("DistanceMiles = %v, want about 9.94", r.DistanceMiles)
	}
	if r.Duration != "00:30:00" {
		t.Errorf("Duration = %q, want 00:30:00", r.Duration)
	}
	if len(r.Steps) != 2 {
		t.Fatalf("steps = %d, want 2", len(r.Steps))
	}
	for i, s := range r.Steps {
		if s.Index != i+1 {
			t.Errorf("step %d index = %d, want %d", i, s.Index, i+1)
		}
	}
	if r.Steps[0].DistanceKm != 1.61 || r.Steps[0].DistanceMiles != 1 {
		t.Errorf("step 1 = %+v, want 1.61 km / 1 mi", r.Steps[0])
	}
}

func TestNewHistoryEntryRoundsDistance(t *testing.T) {
	r := RouteResult{
		Origin:      ResolvedLocation{DisplayName: "Manila, Philippines"},
		Destination: ResolvedLocation{DisplayName: "Intramuros, Manila, Philippines"},
		Vehicle:     VehicleFoot,
		DistanceKm:  3.14159,
		Duration:    "00:45:10",
	}
	at := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

	h := NewHistoryEntry(r, at)

	if h.DistanceKm != 3.14 {
		t.Errorf("DistanceKm = %v, want 3.14", h.DistanceKm)
	}
	if h.DistanceText() != "3.14" {
		t.Errorf("DistanceText = %q, want 3.14", h.DistanceText())
	}
	if h.Start != r.Origin.DisplayName || h.End != r.Destination.DisplayName {
		t.Errorf("start/end = %q/%q", h.Start, h.End)
	}
	if !h.Timestamp.Equal(at) {
		t.Errorf("Timestamp = %v, want %v", h.Timestamp, at)
	}
}
