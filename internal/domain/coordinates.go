package domain

import "strconv"

// Geographic position in decimal degrees (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lon float64
}

// Point renders the pair as "lat,lon", the form routing APIs accept for a waypoint.
func (c Coordinates) Point() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lon, 'f', -1, 64)
}
