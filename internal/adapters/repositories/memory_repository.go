package repositories

import (
	"context"
	"route-planner-service/internal/domain"
	"sync"
)

// MemoryHistoryRepository keeps history for the life of the process.
type MemoryHistoryRepository struct {
	mu      sync.Mutex
	entries []domain.HistoryEntry
}

func NewMemoryHistoryRepository() *MemoryHistoryRepository {
	return &MemoryHistoryRepository{}
}

func (m *MemoryHistoryRepository) Append(ctx context.Context, entry domain.HistoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

func (m *MemoryHistoryRepository) List(ctx context.Context) ([]domain.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.HistoryEntry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func (m *MemoryHistoryRepository) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	return nil
}

func (m *MemoryHistoryRepository) Last(ctx context.Context) (domain.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.entries) == 0 {
		return domain.HistoryEntry{}, domain.Errorf(domain.KindNotFound, "route history is empty")
	}
	return m.entries[len(m.entries)-1], nil
}

// MemoryFavoriteRepository keeps favorites for the life of the process.
type MemoryFavoriteRepository struct {
	mu   sync.Mutex
	favs []domain.Favorite
}

func NewMemoryFavoriteRepository() *MemoryFavoriteRepository {
	return &MemoryFavoriteRepository{}
}

func (m *MemoryFavoriteRepository) Add(ctx context.Context, fav domain.Favorite) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.favs = append(m.favs, fav)
	return nil
}

func (m *MemoryFavoriteRepository) List(ctx context.Context) ([]domain.Favorite, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Favorite, len(m.favs))
	copy(out, m.favs)
	return out, nil
}

func (m *MemoryFavoriteRepository) Remove(ctx context.Context, index int) (domain.Favorite, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := checkIndex(index, len(m.favs)); err != nil {
		return domain.Favorite{}, err
	}
	removed := m.favs[index]
	m.favs = append(m.favs[:index:index], m.favs[index+1:]...)
	return removed, nil
}

func checkIndex(index, n int) error {
	if index < 0 || index >= n {
		return domain.Errorf(domain.KindInvalidInput, "favorite index %d out of range (have %d)", index, n)
	}
	return nil
}
