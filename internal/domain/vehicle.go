package domain

import "strings"

// Vehicle is the travel mode tag accepted by the route service.
type Vehicle string

const (
	VehicleCar      Vehicle = "car"
	VehicleBike     Vehicle = "bike"
	VehicleFoot     Vehicle = "foot"
	VehicleAirplane Vehicle = "airplane"
)

// Vehicles lists every supported mode in menu order.
func Vehicles() []Vehicle {
	return []Vehicle{VehicleCar, VehicleBike, VehicleFoot, VehicleAirplane}
}

func (v Vehicle) IsValid() bool {
	switch v {
	case VehicleCar, VehicleBike, VehicleFoot, VehicleAirplane:
		return true
	}
	return false
}

// IsGround reports whether the mode is routed by the directions provider.
func (v Vehicle) IsGround() bool {
	return v.IsValid() && v != VehicleAirplane
}

func (v Vehicle) String() string { return string(v) }

// ParseVehicle normalizes a user-supplied tag.
func ParseVehicle(s string) (Vehicle, error) {
	v := Vehicle(strings.ToLower(strings.TrimSpace(s)))
	if !v.IsValid() {
		return "", Errorf(KindInvalidInput, "unrecognized vehicle %q", s)
	}
	return v, nil
}
