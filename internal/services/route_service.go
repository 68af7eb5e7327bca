package services

import (
	"context"
	"log"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/platform/obs"
	"route-planner-service/internal/ports"
	"time"
)

// RouteService resolves both endpoints, routes between them and records the
// outcome in history. Calls are strictly sequential: origin, destination,
// then directions.
type RouteService struct {
	geocoder   ports.Geocoder
	directions ports.DirectionsProvider
	history    ports.HistoryRepository
	now        func() time.Time
}

func NewRouteService(
	geocoder ports.Geocoder,
	directions ports.DirectionsProvider,
	history ports.HistoryRepository,
) *RouteService {
	return &RouteService{
		geocoder:   geocoder,
		directions: directions,
		history:    history,
		now:        time.Now,
	}
}

// Resolve exposes the geocoder for single lookups.
func (s *RouteService) Resolve(ctx context.Context, text string) (domain.ResolvedLocation, error) {
	return s.geocoder.Resolve(ctx, text)
}

// ComputeRoute routes from originText to destinationText.
//
// Ground modes ask the directions provider; airplane is a local great-circle
// estimate. The first failing step is returned as-is and nothing is recorded.
// A history write failure is logged but does not fail the call.
func (s *RouteService) ComputeRoute(
	ctx context.Context,
	originText string,
	destinationText string,
	vehicle domain.Vehicle,
) (_ domain.RouteResult, err error) {
	if !vehicle.IsValid() {
		return domain.RouteResult{}, domain.Errorf(domain.KindInvalidInput, "unrecognized vehicle %q", vehicle)
	}

	defer obs.Time(ctx, "route.ComputeRoute")(&err)

	origin, err := s.geocoder.Resolve(ctx, originText)
	if err != nil {
		return domain.RouteResult{}, err
	}

	destination, err := s.geocoder.Resolve(ctx, destinationText)
	if err != nil {
		return domain.RouteResult{}, err
	}

	var leg domain.RouteLeg
	if vehicle.IsGround() {
		leg, err = s.directions.Route(ctx, origin.Coordinates, destination.Coordinates, vehicle)
		if err != nil {
			return domain.RouteResult{}, err
		}
	} else {
		leg = domain.EstimateFlight(origin.Coordinates, destination.Coordinates)
	}

	result := domain.NewRouteResult(origin, destination, vehicle, leg)

	if herr := s.history.Append(ctx, domain.NewHistoryEntry(result, s.now())); herr != nil {
		log.Printf("req_id=%s op=history.Append start=%q end=%q err=%v", obs.RequestID(ctx), result.Origin.DisplayName, result.Destination.DisplayName, herr)
	}

	return result, nil
}

// ReverseLastRoute recomputes the most recent route from its end back to its
// start with the same vehicle. Empty history is domain.ErrNotFound.
func (s *RouteService) ReverseLastRoute(ctx context.Context) (domain.RouteResult, error) {
	last, err := s.history.Last(ctx)
	if err != nil {
		return domain.RouteResult{}, err
	}
	return s.ComputeRoute(ctx, last.End, last.Start, last.Vehicle)
}

func (s *RouteService) History(ctx context.Context) ([]domain.HistoryEntry, error) {
	return s.history.List(ctx)
}

func (s *RouteService) LastRoute(ctx context.Context) (domain.HistoryEntry, error) {
	return s.history.Last(ctx)
}

func (s *RouteService) ClearHistory(ctx context.Context) error {
	return s.history.Clear(ctx)
}
