package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the process configuration read from the environment.
type Config struct {
	Port string

	Provider            string
	GraphHopperKey      string
	GraphHopperURL      string
	GoogleMapsKey       string
	GeocodeTimeout      time.Duration
	RouteTimeout        time.Duration
	RecommendationsPath string

	Store         string
	HistoryFile   string
	FavoritesFile string
	DBPath        string
	DatabaseURL   string
	RedisAddr     string
	RedisPrefix   string

	Debug bool
}

// Load reads .env when present, then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	geocodeTimeout, err := Duration("GEOCODE_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	routeTimeout, err := Duration("ROUTE_TIMEOUT", 15*time.Second)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:                Get("PORT", "8080"),
		Provider:            strings.ToLower(Get("ROUTE_PROVIDER", "graphhopper")),
		GraphHopperKey:      os.Getenv("GRAPHHOPPER_API_KEY"),
		GraphHopperURL:      Get("GRAPHHOPPER_URL", "https://graphhopper.com/api/1"),
		GoogleMapsKey:       os.Getenv("GOOGLE_MAPS_API_KEY"),
		GeocodeTimeout:      geocodeTimeout,
		RouteTimeout:        routeTimeout,
		RecommendationsPath: os.Getenv("RECOMMENDATIONS_PATH"),
		Store:               strings.ToLower(Get("STORE", "csv")),
		HistoryFile:         Get("HISTORY_FILE", "route_history.csv"),
		FavoritesFile:       Get("FAVORITES_FILE", "favorites.csv"),
		DBPath:              Get("DB_PATH", "data/app.db"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		RedisAddr:           Get("REDIS_ADDR", "localhost:6379"),
		RedisPrefix:         Get("REDIS_PREFIX", "planner"),
		Debug:               os.Getenv("PLANNER_DEBUG") != "",
	}

	return cfg, cfg.Validate()
}

// Validate reports missing credentials for the selected provider and store.
func (c Config) Validate() error {
	var errs []error

	switch c.Provider {
	case "graphhopper":
		if strings.TrimSpace(c.GraphHopperKey) == "" {
			errs = append(errs, errors.New("GRAPHHOPPER_API_KEY is required"))
		}
	case "google":
		if strings.TrimSpace(c.GoogleMapsKey) == "" {
			errs = append(errs, errors.New("GOOGLE_MAPS_API_KEY is required"))
		}
	default:
		errs = append(errs, fmt.Errorf("ROUTE_PROVIDER %q is not one of graphhopper, google", c.Provider))
	}

	switch c.Store {
	case "memory", "csv", "sqlite", "redis":
	case "postgres":
		if strings.TrimSpace(c.DatabaseURL) == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for STORE=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORE %q is not one of memory, csv, sqlite, postgres, redis", c.Store))
	}

	return errors.Join(errs...)
}

func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Duration parses key with time.ParseDuration, falling back when unset.
func Duration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %s", key, v)
	}
	return d, nil
}
