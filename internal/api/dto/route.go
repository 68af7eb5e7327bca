package dto

import (
	"route-planner-service/internal/domain"
	"time"
)

type RouteRequest struct {
	Origin      string `json:"origin" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	Vehicle     string `json:"vehicle"`
}

type LocationResponse struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	DisplayName string  `json:"display_name"`
}

type StepResponse struct {
	Step          int     `json:"step"`
	Text          string  `json:"text"`
	DistanceKm    float64 `json:"distance_km"`
	DistanceMiles float64 `json:"distance_mi"`
}

type RouteResponse struct {
	Origin         LocationResponse `json:"origin"`
	Destination    LocationResponse `json:"destination"`
	Vehicle        string           `json:"vehicle"`
	DistanceKm     float64          `json:"distance_km"`
	DistanceMiles  float64          `json:"distance_mi"`
	Duration       string           `json:"duration"`
	DurationMillis int64            `json:"duration_ms"`
	Steps          []StepResponse   `json:"directions"`
	Points         [][2]float64     `json:"points"`
}

type HistoryEntryResponse struct {
	Start      string     `json:"start"`
	End        string     `json:"end"`
	Vehicle    string     `json:"vehicle"`
	DistanceKm float64    `json:"distance_km"`
	Duration   string     `json:"duration"`
	Timestamp  *time.Time `json:"timestamp,omitempty"`
}

type ListHistoryResponse struct {
	History []HistoryEntryResponse `json:"history"`
}

func NewLocationResponse(l domain.ResolvedLocation) LocationResponse {
	return LocationResponse{Lat: l.Lat, Lng: l.Lon, DisplayName: l.DisplayName}
}

// NewRouteResponse flattens a result. Points are [lat, lng] pairs.
func NewRouteResponse(r domain.RouteResult) RouteResponse {
	res := RouteResponse{
		Origin:         NewLocationResponse(r.Origin),
		Destination:    NewLocationResponse(r.Destination),
		Vehicle:        string(r.Vehicle),
		DistanceKm:     r.DistanceKm,
		DistanceMiles:  r.DistanceMiles,
		Duration:       r.Duration,
		DurationMillis: r.DurationMillis,
		Steps:          make([]StepResponse, 0, len(r.Steps)),
		Points:         make([][2]float64, 0, len(r.Points)),
	}
	for _, s := range r.Steps {
		res.Steps = append(res.Steps, StepResponse{
			Step:          s.Index,
			Text:          s.Text,
			DistanceKm:    s.DistanceKm,
			DistanceMiles: s.DistanceMiles,
		})
	}
	for _, p := range r.Points {
		res.Points = append(res.Points, [2]float64{p.Lat, p.Lon})
	}
	return res
}

func NewHistoryEntryResponse(e domain.HistoryEntry) HistoryEntryResponse {
	res := HistoryEntryResponse{
		Start:      e.Start,
		End:        e.End,
		Vehicle:    string(e.Vehicle),
		DistanceKm: e.DistanceKm,
		Duration:   e.Duration,
	}
	if !e.Timestamp.IsZero() {
		ts := e.Timestamp
		res.Timestamp = &ts
	}
	return res
}
