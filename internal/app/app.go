package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"route-planner-service/internal/adapters/catalog"
	"route-planner-service/internal/adapters/googlemaps"
	"route-planner-service/internal/adapters/graphhopper"
	"route-planner-service/internal/adapters/repositories"
	"route-planner-service/internal/config"
	"route-planner-service/internal/platform/db"
	"route-planner-service/internal/ports"
	"route-planner-service/internal/services"
)

// Provider is the combined geocoding and directions backend.
type Provider interface {
	ports.Geocoder
	ports.DirectionsProvider
}

// App holds the wired services shared by the HTTP server and the terminal client.
type App struct {
	Routes          *services.RouteService
	Favorites       *services.FavoriteService
	Recommendations *services.RecommendationService

	closers []io.Closer
}

// New wires concrete adapters behind ports according to cfg.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	provider, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}

	a := &App{}

	history, favorites, err := a.openStores(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	cat, err := catalog.Load(cfg.RecommendationsPath)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Routes = services.NewRouteService(provider, provider, history)
	a.Favorites = services.NewFavoriteService(favorites, a.Routes)
	a.Recommendations = services.NewRecommendationService(cat, a.Routes)

	log.Printf("app ready provider=%s store=%s", cfg.Provider, cfg.Store)
	return a, nil
}

// NewProvider selects GraphHopper or Google Maps.
func NewProvider(cfg config.Config) (Provider, error) {
	switch cfg.Provider {
	case "google":
		return googlemaps.NewProvider(cfg.GoogleMapsKey, "", cfg.GeocodeTimeout, cfg.RouteTimeout)
	case "graphhopper":
		return graphhopper.NewClient(
			cfg.GraphHopperKey,
			graphhopper.WithBaseURL(cfg.GraphHopperURL),
			graphhopper.WithTimeouts(cfg.GeocodeTimeout, cfg.RouteTimeout),
		)
	}
	return nil, fmt.Errorf("unknown route provider %q", cfg.Provider)
}

func (a *App) openStores(ctx context.Context, cfg config.Config) (ports.HistoryRepository, ports.FavoriteRepository, error) {
	switch cfg.Store {
	case "memory":
		return repositories.NewMemoryHistoryRepository(), repositories.NewMemoryFavoriteRepository(), nil

	case "csv":
		return repositories.NewCSVHistoryRepository(cfg.HistoryFile), repositories.NewCSVFavoriteRepository(cfg.FavoritesFile), nil

	case "sqlite":
		sqlDB, err := db.OpenSqlite(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, sqlDB)
		if err := repositories.InitSchema(ctx, sqlDB, repositories.Sqlite); err != nil {
			return nil, nil, err
		}
		return repositories.NewSqliteHistoryRepository(sqlDB), repositories.NewSqliteFavoriteRepository(sqlDB), nil

	case "postgres":
		sqlDB, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, sqlDB)
		if err := repositories.InitSchema(ctx, sqlDB, repositories.Postgres); err != nil {
			return nil, nil, err
		}
		return repositories.NewPostgresHistoryRepository(sqlDB), repositories.NewPostgresFavoriteRepository(sqlDB), nil

	case "redis":
		rdb, err := db.OpenRedis(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, rdb)
		return repositories.NewRedisHistoryRepository(rdb, cfg.RedisPrefix), repositories.NewRedisFavoriteRepository(rdb, cfg.RedisPrefix), nil
	}
	return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
}

// Close releases database and redis connections.
func (a *App) Close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			log.Printf("close failed: %v", err)
		}
	}
	a.closers = nil
}
