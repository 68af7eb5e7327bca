package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"route-planner-service/internal/domain"
	"strings"
)

// Dialect selects placeholder style and column types for a SQL store.
type Dialect int

const (
	Sqlite Dialect = iota
	Postgres
)

func (d Dialect) String() string {
	if d == Postgres {
		return "postgres"
	}
	return "sqlite"
}

// bind rewrites ? placeholders to $n for postgres.
func (d Dialect) bind(q string) string {
	if d != Postgres {
		return q
	}
	var b strings.Builder
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (d Dialect) idColumn() string {
	if d == Postgres {
		return "id BIGSERIAL PRIMARY KEY"
	}
	return "id INTEGER PRIMARY KEY AUTOINCREMENT"
}

func (d Dialect) realType() string {
	if d == Postgres {
		return "DOUBLE PRECISION"
	}
	return "REAL"
}

// InitSchema creates the history and favorites tables.
func InitSchema(ctx context.Context, db *sql.DB, d Dialect) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createHistoryQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS route_history (
		%s,
		start_name TEXT NOT NULL,
		end_name TEXT NOT NULL,
		vehicle TEXT NOT NULL,
		distance_km %s NOT NULL,
		duration TEXT NOT NULL,
		recorded_at BIGINT NOT NULL
	);
	`, d.idColumn(), d.realType())

	createFavoritesQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS favorites (
		%s,
		name TEXT NOT NULL,
		location TEXT NOT NULL
	);
	`, d.idColumn())

	statements := []string{
		createHistoryQuery,
		createFavoritesQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// SeedFavorites inserts favorites in order inside one transaction.
func SeedFavorites(ctx context.Context, db *sql.DB, d Dialect, favs []domain.Favorite) error {
	rows := make([]domain.Favorite, 0, len(favs))
	for i, f := range favs {
		name := strings.TrimSpace(f.Name)
		loc := strings.TrimSpace(f.Location)
		if name == "" || loc == "" {
			return fmt.Errorf("seed favorites: row %d: name and location cannot be empty", i+1)
		}
		rows = append(rows, domain.Favorite{Name: name, Location: loc})
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed favorites: begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, d.bind(`INSERT INTO favorites (name, location) VALUES (?, ?);`))
	if err != nil {
		return fmt.Errorf("seed favorites: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, f := range rows {
		if _, err := stmt.ExecContext(ctx, f.Name, f.Location); err != nil {
			return fmt.Errorf("seed favorites: insert %q: %w", f.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed favorites: commit tx: %w", err)
	}

	return nil
}
