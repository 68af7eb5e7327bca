package domain

// Instruction is one turn-by-turn line as reported by a directions provider.
type Instruction struct {
	Text           string
	DistanceMeters float64
	TimeMillis     int64
}

// RouteLeg is the raw first path of a directions response, in provider units.
// Points are already in (lat, lon) order.
type RouteLeg struct {
	DistanceMeters float64
	TimeMillis     int64
	Instructions   []Instruction
	Points         []Coordinates
}
