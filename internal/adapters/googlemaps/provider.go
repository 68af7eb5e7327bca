package googlemaps

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/platform/obs"
	"strings"
	"time"

	"golang.org/x/net/html"
	"googlemaps.github.io/maps"
)

// Provider implements Geocoder and DirectionsProvider on the Google Maps
// Geocoding and Directions APIs. It is the alternative to GraphHopper when
// ROUTE_PROVIDER=google.
type Provider struct {
	client         *maps.Client
	geocodeTimeout time.Duration
	routeTimeout   time.Duration
}

// NewProvider builds a Maps client. baseURL is only set by tests.
func NewProvider(apiKey, baseURL string, geocodeTimeout, routeTimeout time.Duration) (*Provider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("google maps api key is empty")
	}

	opts := []maps.ClientOption{
		maps.WithAPIKey(apiKey),
		maps.WithHTTPClient(&http.Client{}),
	}
	if baseURL != "" {
		opts = append(opts, maps.WithBaseURL(baseURL))
	}

	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("maps.NewClient: %w", err)
	}

	return &Provider{
		client:         client,
		geocodeTimeout: geocodeTimeout,
		routeTimeout:   routeTimeout,
	}, nil
}

func (p *Provider) Resolve(ctx context.Context, text string) (_ domain.ResolvedLocation, err error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ResolvedLocation{}, domain.Errorf(domain.KindInvalidInput, "location must be non-empty")
	}

	defer obs.Time(ctx, "googlemaps.Resolve")(&err)

	ctx, cancel := context.WithTimeout(ctx, p.geocodeTimeout)
	defer cancel()

	results, err := p.client.Geocode(ctx, &maps.GeocodingRequest{Address: text})
	if err != nil {
		return domain.ResolvedLocation{}, classify("geocode", err)
	}
	if len(results) == 0 {
		return domain.ResolvedLocation{}, domain.Errorf(domain.KindNotFound, "no geocode results for %q", text)
	}

	r := results[0]
	return domain.ResolvedLocation{
		Coordinates: domain.Coordinates{Lat: r.Geometry.Location.Lat, Lon: r.Geometry.Location.Lng},
		DisplayName: displayName(r),
	}, nil
}

func (p *Provider) Route(
	ctx context.Context,
	from domain.Coordinates,
	to domain.Coordinates,
	vehicle domain.Vehicle,
) (_ domain.RouteLeg, err error) {
	mode, ok := travelModes[vehicle]
	if !ok {
		return domain.RouteLeg{}, domain.Errorf(domain.KindInvalidInput, "vehicle %q is not routable", vehicle)
	}

	defer obs.Time(ctx, "googlemaps.Route")(&err)

	ctx, cancel := context.WithTimeout(ctx, p.routeTimeout)
	defer cancel()

	routes, _, err := p.client.Directions(ctx, &maps.DirectionsRequest{
		Origin:      from.Point(),
		Destination: to.Point(),
		Mode:        mode,
	})
	if err != nil {
		return domain.RouteLeg{}, classify("directions", err)
	}
	if len(routes) == 0 {
		return domain.RouteLeg{}, domain.Errorf(domain.KindUpstream, "no route found")
	}

	return toLeg(routes[0])
}

var travelModes = map[domain.Vehicle]maps.Mode{
	domain.VehicleCar:  maps.TravelModeDriving,
	domain.VehicleBike: maps.TravelModeBicycling,
	domain.VehicleFoot: maps.TravelModeWalking,
}

func toLeg(route maps.Route) (domain.RouteLeg, error) {
	var leg domain.RouteLeg
	for _, l := range route.Legs {
		leg.DistanceMeters += float64(l.Distance.Meters)
		leg.TimeMillis += l.Duration.Milliseconds()
		for _, s := range l.Steps {
			leg.Instructions = append(leg.Instructions, domain.Instruction{
				Text:           stripHTML(s.HTMLInstructions),
				DistanceMeters: float64(s.Distance.Meters),
				TimeMillis:     s.Duration.Milliseconds(),
			})
		}
	}

	path, err := route.OverviewPolyline.Decode()
	if err != nil {
		return domain.RouteLeg{}, domain.Errorf(domain.KindProtocol, "decode overview polyline: %w", err)
	}
	leg.Points = make([]domain.Coordinates, 0, len(path))
	for _, ll := range path {
		leg.Points = append(leg.Points, domain.Coordinates{Lat: ll.Lat, Lon: ll.Lng})
	}

	return leg, nil
}

// displayName prefers locality, then region and country from the address
// components, falling back to the formatted address.
func displayName(r maps.GeocodingResult) string {
	var name, state, country string
	for _, c := range r.AddressComponents {
		for _, t := range c.Types {
			switch t {
			case "locality", "point_of_interest", "establishment":
				if name == "" {
					name = c.LongName
				}
			case "administrative_area_level_1":
				state = c.LongName
			case "country":
				country = c.LongName
			}
		}
	}
	if name == "" && len(r.AddressComponents) > 0 {
		name = r.AddressComponents[0].LongName
	}

	if s := domain.JoinDisplayName(name, state, country); s != "" {
		return s
	}
	return r.FormattedAddress
}

// classify maps client errors onto failure kinds. The Maps client reports
// API statuses as "maps: STATUS - message".
func classify(op string, err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled), errors.As(err, &netErr):
		return domain.Errorf(domain.KindNetwork, "%s: %w", op, err)
	case strings.Contains(err.Error(), "ZERO_RESULTS"), strings.Contains(err.Error(), "NOT_FOUND"):
		return domain.Errorf(domain.KindNotFound, "%s: %w", op, err)
	case strings.HasPrefix(err.Error(), "maps: "):
		return domain.Errorf(domain.KindUpstream, "%s: %w", op, err)
	}
	return domain.Errorf(domain.KindProtocol, "%s: %w", op, err)
}

// stripHTML flattens html_instructions to text. Entities are decoded and tags
// become word breaks, so "Ave<div>Destination" does not run together.
func stripHTML(s string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			b.WriteByte(' ')
		}
	}
}
