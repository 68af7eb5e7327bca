package ports

import (
	"context"
	"route-planner-service/internal/domain"
)

// Contract for turning free-text place names into coordinates.
type Geocoder interface {
	// Resolve returns the first candidate for text. Blank text is rejected
	// before any network call.
	Resolve(ctx context.Context, text string) (domain.ResolvedLocation, error)
}
