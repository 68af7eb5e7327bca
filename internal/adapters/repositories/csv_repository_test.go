package repositories

import (
	"context"
	"os"
	"path/filepath"
	"route-planner-service/internal/domain"
	"strings"
	"testing"
)

func TestCSVHistoryRepository(t *testing.T) {
	testHistoryRepository(t, NewCSVHistoryRepository(filepath.Join(t.TempDir(), "route_history.csv")))
}

func TestCSVFavoriteRepository(t *testing.T) {
	testFavoriteRepository(t, NewCSVFavoriteRepository(filepath.Join(t.TempDir(), "favorites.csv")))
}

func TestCSVHistoryFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "route_history.csv")
	repo := NewCSVHistoryRepository(path)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := repo.Append(ctx, entryAt("Baguio, Philippines", "Burnham Park, Baguio, Philippines", domain.VehicleFoot, 1.5, 7)); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	want := "Start,End,Vehicle,Distance_km,Duration,Timestamp\n" +
		"\"Baguio, Philippines\",\"Burnham Park, Baguio, Philippines\",foot,1.50,00:30:00,2026-03-14 09:07:00\n" +
		"\"Baguio, Philippines\",\"Burnham Park, Baguio, Philippines\",foot,1.50,00:30:00,2026-03-14 09:07:00\n"
	if string(b) != want {
		t.Errorf("file =\n%s\nwant\n%s", b, want)
	}
}

func TestCSVHistoryReadsRowsWithoutTimestamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "route_history.csv")
	legacy := "Start,End,Vehicle,Distance_km,Duration\nManila,Cebu,car,12.5,00:20:00\n"
	if err := os.WriteFile(path, []byte(legacy), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := NewCSVHistoryRepository(path).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].DistanceKm != 12.5 || !got[0].Timestamp.IsZero() {
		t.Errorf("entries = %+v", got)
	}
}

func TestCSVFavoriteFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.csv")
	repo := NewCSVFavoriteRepository(path)
	ctx := context.Background()

	if err := repo.Add(ctx, domain.Favorite{Name: "Lola's", Location: "Iloilo City"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Add(ctx, domain.Favorite{Name: "Office", Location: "Cebu IT Park, Cebu"}); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Remove(ctx, 0); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 || lines[0] != "Name,Location" || lines[1] != `Office,"Cebu IT Park, Cebu"` {
		t.Errorf("file lines = %q", lines)
	}
}
