package domain

import (
	"time"

	"github.com/umahmood/haversine"
)

const (
	// EarthRadiusKm is the radius haversine.Distance hard-codes. It does not
	// configure GreatCircleKm.
	EarthRadiusKm = 6371.0
	// Cruise speed assumed for airplane estimates.
	CruiseSpeedKmh = 850.0
	KmPerMile      = 1.61

	FlightInstruction = "Fly directly to destination."
)

// GreatCircleKm is the haversine distance between two points.
func GreatCircleKm(from, to Coordinates) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: from.Lat, Lon: from.Lon},
		haversine.Coord{Lat: to.Lat, Lon: to.Lon},
	)
	return km
}

// FlightMillis converts a straight-line distance to flight time at cruise speed.
func FlightMillis(km float64) int64 {
	return int64(km / CruiseSpeedKmh * float64(time.Hour/time.Millisecond))
}

func KmToMiles(km float64) float64 { return km / KmPerMile }

// EstimateFlight builds the single-leg airplane route between two points.
func EstimateFlight(from, to Coordinates) RouteLeg {
	km := GreatCircleKm(from, to)
	return RouteLeg{
		DistanceMeters: km * 1000,
		TimeMillis:     FlightMillis(km),
		Instructions: []Instruction{
			{Text: FlightInstruction, DistanceMeters: km * 1000},
		},
		Points: []Coordinates{from, to},
	}
}
