package graphhopper

import (
	"context"
	"net/url"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/platform/obs"
)

type routeResponse struct {
	Paths []struct {
		Distance     float64 `json:"distance"`
		Time         int64   `json:"time"`
		Instructions []struct {
			Text     string  `json:"text"`
			Distance float64 `json:"distance"`
			Time     int64   `json:"time"`
		} `json:"instructions"`
		Points struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"points"`
	} `json:"paths"`
}

// Route asks /route for the first path between two points.
// Geometry is requested unencoded and returned in (lat, lon) order.
func (c *Client) Route(
	ctx context.Context,
	from domain.Coordinates,
	to domain.Coordinates,
	vehicle domain.Vehicle,
) (_ domain.RouteLeg, err error) {
	if !vehicle.IsGround() {
		return domain.RouteLeg{}, domain.Errorf(domain.KindInvalidInput, "vehicle %q is not routable", vehicle)
	}

	defer obs.Time(ctx, "graphhopper.Route")(&err)

	ctx, cancel := context.WithTimeout(ctx, c.routeTimeout)
	defer cancel()

	q := url.Values{}
	q.Add("point", from.Point())
	q.Add("point", to.Point())
	q.Set("vehicle", string(vehicle))
	q.Set("points_encoded", "false")
	q.Set("instructions", "true")

	req, err := c.newRequest(ctx, "/route", q)
	if err != nil {
		return domain.RouteLeg{}, err
	}

	var decoded routeResponse
	if err := c.do(req, &decoded); err != nil {
		return domain.RouteLeg{}, err
	}

	if decoded.Paths == nil {
		return domain.RouteLeg{}, domain.Errorf(domain.KindProtocol, "route response has no paths field")
	}
	if len(decoded.Paths) == 0 {
		return domain.RouteLeg{}, domain.Errorf(domain.KindUpstream, "no route found")
	}

	path := decoded.Paths[0]

	leg := domain.RouteLeg{
		DistanceMeters: path.Distance,
		TimeMillis:     path.Time,
		Instructions:   make([]domain.Instruction, 0, len(path.Instructions)),
		Points:         make([]domain.Coordinates, 0, len(path.Points.Coordinates)),
	}
	for _, in := range path.Instructions {
		leg.Instructions = append(leg.Instructions, domain.Instruction{
			Text:           in.Text,
			DistanceMeters: in.Distance,
			TimeMillis:     in.Time,
		})
	}
	for i, pt := range path.Points.Coordinates {
		if len(pt) < 2 {
			return domain.RouteLeg{}, domain.Errorf(domain.KindProtocol, "route point #%d has %d values", i+1, len(pt))
		}
		leg.Points = append(leg.Points, domain.Coordinates{Lat: pt[1], Lon: pt[0]})
	}

	return leg, nil
}
