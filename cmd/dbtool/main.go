package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"route-planner-service/internal/adapters/repositories"
	"route-planner-service/internal/config"
	"route-planner-service/internal/platform/db"
	"strings"

	"github.com/joho/godotenv"
)

// dbtool prepares a SQL store: it creates the history and favorites tables
// and optionally seeds favorites from a Name,Location CSV file.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	store := flag.String("store", config.Get("STORE", "sqlite"), "sqlite or postgres")
	seedPath := flag.String("seed", config.Get("SEED_FAVORITES", ""), "favorites CSV to import")
	flag.Parse()

	ctx := context.Background()

	conn, dialect, err := open(*store)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	if err := initAndSeed(ctx, conn, dialect, *seedPath); err != nil {
		conn.Close()
		log.Fatal(err)
	}
}

func open(store string) (*sql.DB, repositories.Dialect, error) {
	switch strings.ToLower(store) {
	case "sqlite":
		conn, err := db.OpenSqlite(config.Get("DB_PATH", "data/app.db"))
		return conn, repositories.Sqlite, err
	case "postgres":
		databaseURL := config.Get("DATABASE_URL", "")
		if strings.TrimSpace(databaseURL) == "" {
			return nil, 0, fmt.Errorf("DATABASE_URL is required")
		}
		conn, err := db.Open(databaseURL)
		return conn, repositories.Postgres, err
	}
	return nil, 0, fmt.Errorf("store %q is not sqlite or postgres", store)
}

func initAndSeed(ctx context.Context, conn *sql.DB, dialect repositories.Dialect, seedPath string) error {
	log.Printf("Initializing %s schema...", dialect)
	if err := repositories.InitSchema(ctx, conn, dialect); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	log.Println("Schema ready.")

	if seedPath == "" {
		return nil
	}

	log.Printf("Seeding favorites from %s...", seedPath)
	favs, err := repositories.NewCSVFavoriteRepository(seedPath).List(ctx)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	if err := repositories.SeedFavorites(ctx, conn, dialect, favs); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	log.Printf("Seeding complete. favorites=%d", len(favs))

	return nil
}
