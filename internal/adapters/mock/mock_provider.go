package mock

import (
	"context"
	"route-planner-service/internal/domain"
	"strings"
	"sync"
)

// Place registers a canned geocoding answer for a query.
type Place struct {
	Query   string
	Lat     float64
	Lon     float64
	Name    string
	State   string
	Country string
}

// Provider is an in-process Geocoder and DirectionsProvider. It answers from
// fixed tables and counts calls so tests can assert on outbound traffic.
type Provider struct {
	mu          sync.Mutex
	places      map[string]domain.ResolvedLocation
	leg         domain.RouteLeg
	geocodeErrs map[string]error
	routeErr    error

	GeocodeCalls int
	RouteCalls   int
	LastVehicle  domain.Vehicle
}

func NewProvider(places []Place, leg domain.RouteLeg) *Provider {
	m := make(map[string]domain.ResolvedLocation, len(places))
	for _, p := range places {
		m[key(p.Query)] = domain.ResolvedLocation{
			Coordinates: domain.Coordinates{Lat: p.Lat, Lon: p.Lon},
			DisplayName: domain.JoinDisplayName(p.Name, p.State, p.Country),
		}
	}
	return &Provider{places: m, leg: leg, geocodeErrs: map[string]error{}}
}

// FailGeocode makes lookups of query return err.
func (p *Provider) FailGeocode(query string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.geocodeErrs[key(query)] = err
}

// FailRoute makes every Route call return err.
func (p *Provider) FailRoute(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.routeErr = err
}

func (p *Provider) Resolve(ctx context.Context, text string) (domain.ResolvedLocation, error) {
	if strings.TrimSpace(text) == "" {
		return domain.ResolvedLocation{}, domain.Errorf(domain.KindInvalidInput, "location must be non-empty")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.GeocodeCalls++

	if err, ok := p.geocodeErrs[key(text)]; ok {
		return domain.ResolvedLocation{}, err
	}
	loc, ok := p.places[key(text)]
	if !ok {
		return domain.ResolvedLocation{}, domain.Errorf(domain.KindNotFound, "no geocode results for %q", text)
	}
	return loc, nil
}

func (p *Provider) Route(ctx context.Context, from, to domain.Coordinates, vehicle domain.Vehicle) (domain.RouteLeg, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.RouteCalls++
	p.LastVehicle = vehicle

	if p.routeErr != nil {
		return domain.RouteLeg{}, p.routeErr
	}
	return p.leg, nil
}

// Calls returns geocode and route call counts.
func (p *Provider) Calls() (geocode, route int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.GeocodeCalls, p.RouteCalls
}

func key(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
