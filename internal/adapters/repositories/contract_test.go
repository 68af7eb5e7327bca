package repositories

import (
	"context"
	"errors"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/ports"
	"testing"
	"time"
)

// Shared behaviour every history and favorites store must satisfy.

func entryAt(start, end string, v domain.Vehicle, km float64, minute int) domain.HistoryEntry {
	return domain.HistoryEntry{
		Start:      start,
		End:        end,
		Vehicle:    v,
		DistanceKm: km,
		Duration:   "00:30:00",
		Timestamp:  time.Date(2026, 3, 14, 9, minute, 0, 0, time.Local),
	}
}

func testHistoryRepository(t *testing.T, repo ports.HistoryRepository) {
	t.Helper()
	ctx := context.Background()

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List on empty store: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("List on empty store = %d entries, want 0", len(got))
	}

	if _, err := repo.Last(ctx); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Last on empty store err = %v, want not found", err)
	}

	first := entryAt("Boston, Massachusetts, United States", "Cambridge, Massachusetts, United States", domain.VehicleCar, 16, 0)
	second := entryAt("Manila, Philippines", "Cebu City, Philippines", domain.VehicleAirplane, 571.23, 5)
	for _, e := range []domain.HistoryEntry{first, second, first} {
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("List = %d entries, want 3 (no dedup)", len(got))
	}
	assertEntry(t, got[0], first)
	assertEntry(t, got[1], second)
	assertEntry(t, got[2], first)

	last, err := repo.Last(ctx)
	if err != nil {
		t.Fatalf("Last: %v", err)
	}
	assertEntry(t, last, first)

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
	got, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("List after Clear: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("List after Clear = %d entries, want 0", len(got))
	}
}

func assertEntry(t *testing.T, got, want domain.HistoryEntry) {
	t.Helper()
	if got.Start != want.Start || got.End != want.End || got.Vehicle != want.Vehicle ||
		got.DistanceKm != want.DistanceKm || got.Duration != want.Duration {
		t.Errorf("entry = %+v, want %+v", got, want)
	}
	if got.Timestamp.Format(domain.TimestampLayout) != want.Timestamp.Format(domain.TimestampLayout) {
		t.Errorf("timestamp = %v, want %v", got.Timestamp, want.Timestamp)
	}
}

func testFavoriteRepository(t *testing.T, repo ports.FavoriteRepository) {
	t.Helper()
	ctx := context.Background()

	favs := []domain.Favorite{
		{Name: "Home", Location: "Quezon City"},
		{Name: "Work", Location: "Makati"},
		{Name: "Home", Location: "Baguio"},
	}
	for _, f := range favs {
		if err := repo.Add(ctx, f); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	assertFavorites(t, got, favs)

	for _, idx := range []int{3, 99, -1} {
		if _, err := repo.Remove(ctx, idx); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("Remove(%d) err = %v, want invalid input", idx, err)
		}
	}
	got, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	assertFavorites(t, got, favs)

	removed, err := repo.Remove(ctx, 1)
	if err != nil {
		t.Fatalf("Remove(1): %v", err)
	}
	if removed != favs[1] {
		t.Errorf("removed = %+v, want %+v", removed, favs[1])
	}

	got, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	assertFavorites(t, got, []domain.Favorite{favs[0], favs[2]})

	if _, err := repo.Remove(ctx, 1); err != nil {
		t.Fatalf("Remove(1) after shift: %v", err)
	}
	got, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	assertFavorites(t, got, favs[:1])
}

func assertFavorites(t *testing.T, got, want []domain.Favorite) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("favorites = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("favorites[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
