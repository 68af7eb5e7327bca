package services

import (
	"context"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/ports"
)

// RecommendationService routes to spots from the recommendation table.
type RecommendationService struct {
	catalog ports.RecommendationCatalog
	routes  *RouteService
}

func NewRecommendationService(catalog ports.RecommendationCatalog, routes *RouteService) *RecommendationService {
	return &RecommendationService{catalog: catalog, routes: routes}
}

func (s *RecommendationService) Cities() []domain.City {
	return s.catalog.Cities()
}

// RouteTo routes from origin to the spot at spotIndex in city.
func (s *RecommendationService) RouteTo(
	ctx context.Context,
	origin string,
	city string,
	spotIndex int,
	vehicle domain.Vehicle,
) (domain.RouteResult, error) {
	c, ok := s.catalog.City(city)
	if !ok {
		return domain.RouteResult{}, domain.Errorf(domain.KindNotFound, "no recommendations for city %q", city)
	}
	dest, err := c.Destination(spotIndex)
	if err != nil {
		return domain.RouteResult{}, err
	}
	return s.routes.ComputeRoute(ctx, origin, dest, vehicle)
}
