package app

import (
	"context"
	"path/filepath"
	"route-planner-service/internal/config"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func baseConfig(t *testing.T) config.Config {
	dir := t.TempDir()
	return config.Config{
		Provider:       "graphhopper",
		GraphHopperKey: "test-key",
		GraphHopperURL: "http://127.0.0.1:1",
		HistoryFile:    filepath.Join(dir, "route_history.csv"),
		FavoritesFile:  filepath.Join(dir, "favorites.csv"),
		DBPath:         filepath.Join(dir, "app.db"),
		RedisPrefix:    "test",
	}
}

func TestNewWiresEachStore(t *testing.T) {
	mr := miniredis.RunT(t)

	for _, store := range []string{"memory", "csv", "sqlite", "redis"} {
		t.Run(store, func(t *testing.T) {
			cfg := baseConfig(t)
			cfg.Store = store
			cfg.RedisAddr = mr.Addr()

			a, err := New(context.Background(), cfg)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			defer a.Close()

			entries, err := a.Routes.History(context.Background())
			if err != nil {
				t.Fatalf("History: %v", err)
			}
			if len(entries) != 0 {
				t.Errorf("fresh store has %d entries", len(entries))
			}
			if len(a.Recommendations.Cities()) == 0 {
				t.Error("no recommendation cities loaded")
			}
		})
	}
}

func TestNewProvider(t *testing.T) {
	cfg := baseConfig(t)

	if _, err := NewProvider(cfg); err != nil {
		t.Errorf("graphhopper: %v", err)
	}

	cfg.Provider = "google"
	cfg.GoogleMapsKey = "AIza-test"
	if _, err := NewProvider(cfg); err != nil {
		t.Errorf("google: %v", err)
	}

	cfg.Provider = "osrm"
	if _, err := NewProvider(cfg); err == nil {
		t.Error("expected error for unknown provider")
	}
}
