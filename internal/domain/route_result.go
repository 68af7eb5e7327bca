package domain

// Step is one numbered instruction of a computed route.
type Step struct {
	Index         int
	Text          string
	DistanceKm    float64
	DistanceMiles float64
}

// RouteResult is the normalized outcome of a successful route computation.
// It is built once and never mutated.
type RouteResult struct {
	Origin         ResolvedLocation
	Destination    ResolvedLocation
	Vehicle        Vehicle
	DistanceKm     float64
	DistanceMiles  float64
	DurationMillis int64
	Duration       string
	Steps          []Step
	Points         []Coordinates
}

// NewRouteResult converts a provider leg into kilometres, miles and HH:MM:SS.
func NewRouteResult(origin, destination ResolvedLocation, vehicle Vehicle, leg RouteLeg) RouteResult {
	km := leg.DistanceMeters / 1000

	steps := make([]Step, 0, len(leg.Instructions))
	for i, in := range leg.Instructions {
		stepKm := in.DistanceMeters / 1000
		steps = append(steps, Step{
			Index:         i + 1,
			Text:          in.Text,
			DistanceKm:    stepKm,
			DistanceMiles: KmToMiles(stepKm),
		})
	}

	points := make([]Coordinates, len(leg.Points))
	copy(points, leg.Points)

	return RouteResult{
		Origin:         origin,
		Destination:    destination,
		Vehicle:        vehicle,
		DistanceKm:     km,
		DistanceMiles:  KmToMiles(km),
		DurationMillis: leg.TimeMillis,
		Duration:       FormatDuration(leg.TimeMillis),
		Steps:          steps,
		Points:         points,
	}
}
