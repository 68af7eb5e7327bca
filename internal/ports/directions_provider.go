package ports

import (
	"context"
	"route-planner-service/internal/domain"
)

// Contract for ground-mode routing between two resolved points.
type DirectionsProvider interface {
	// Return the first path between from and to for the given mode.
	Route(ctx context.Context, from, to domain.Coordinates, vehicle domain.Vehicle) (domain.RouteLeg, error)
}
