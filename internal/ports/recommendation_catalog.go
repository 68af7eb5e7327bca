package ports

import "route-planner-service/internal/domain"

// Read-only table of cities and their recommended spots.
type RecommendationCatalog interface {
	Cities() []domain.City
	// City looks a city up by case-insensitive name.
	City(name string) (domain.City, bool)
}
