package ports

import (
	"context"
	"route-planner-service/internal/domain"
)

// Port: append-only log of completed routes.
type HistoryRepository interface {
	Append(ctx context.Context, entry domain.HistoryEntry) error
	// List returns entries oldest first. An empty log is not an error.
	List(ctx context.Context) ([]domain.HistoryEntry, error)
	Clear(ctx context.Context) error
	// Last returns the most recent entry or domain.ErrNotFound.
	Last(ctx context.Context) (domain.HistoryEntry, error)
}
