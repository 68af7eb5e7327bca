package graphhopper

import (
	"context"
	"net/url"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/platform/obs"
	"strings"
)

type geocodeResponse struct {
	Hits []struct {
		Point *struct {
			Lat *float64 `json:"lat"`
			Lng *float64 `json:"lng"`
		} `json:"point"`
		Name    string `json:"name"`
		State   string `json:"state"`
		Country string `json:"country"`
	} `json:"hits"`
}

// Resolve looks text up with /geocode and returns the first hit.
func (c *Client) Resolve(ctx context.Context, text string) (_ domain.ResolvedLocation, err error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ResolvedLocation{}, domain.Errorf(domain.KindInvalidInput, "location must be non-empty")
	}

	defer obs.Time(ctx, "graphhopper.Resolve")(&err)

	ctx, cancel := context.WithTimeout(ctx, c.geocodeTimeout)
	defer cancel()

	q := url.Values{}
	q.Set("q", text)
	q.Set("limit", "1")

	req, err := c.newRequest(ctx, "/geocode", q)
	if err != nil {
		return domain.ResolvedLocation{}, err
	}

	var decoded geocodeResponse
	if err := c.do(req, &decoded); err != nil {
		return domain.ResolvedLocation{}, err
	}

	if len(decoded.Hits) == 0 {
		return domain.ResolvedLocation{}, domain.Errorf(domain.KindNotFound, "no geocode results for %q", text)
	}

	hit := decoded.Hits[0]
	if hit.Point == nil || hit.Point.Lat == nil || hit.Point.Lng == nil {
		return domain.ResolvedLocation{}, domain.Errorf(domain.KindProtocol, "geocode hit for %q has no point", text)
	}

	// A hit without a name is labelled with the query itself.
	name := hit.Name
	if strings.TrimSpace(name) == "" {
		name = text
	}

	return domain.ResolvedLocation{
		Coordinates: domain.Coordinates{Lat: *hit.Point.Lat, Lon: *hit.Point.Lng},
		DisplayName: domain.JoinDisplayName(name, hit.State, hit.Country),
	}, nil
}
