package ports

import (
	"context"
	"route-planner-service/internal/domain"
)

// Port: ordered list of saved places, addressed by 0-based position.
type FavoriteRepository interface {
	Add(ctx context.Context, fav domain.Favorite) error
	List(ctx context.Context) ([]domain.Favorite, error)
	// Remove deletes the entry at index. Out of range returns
	// domain.ErrInvalidInput and leaves the list unchanged.
	Remove(ctx context.Context, index int) (domain.Favorite, error)
}
