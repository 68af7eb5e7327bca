package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/platform/obs"
)

// SQLFavoriteRepository stores favorites in the favorites table. Position is
// the rank by id, so indexes shift down after a removal like a list would.
type SQLFavoriteRepository struct {
	DB      *sql.DB
	dialect Dialect
}

func NewSqliteFavoriteRepository(db *sql.DB) *SQLFavoriteRepository {
	return &SQLFavoriteRepository{DB: db, dialect: Sqlite}
}

func NewPostgresFavoriteRepository(db *sql.DB) *SQLFavoriteRepository {
	return &SQLFavoriteRepository{DB: db, dialect: Postgres}
}

func (s *SQLFavoriteRepository) Add(ctx context.Context, fav domain.Favorite) (err error) {
	defer obs.Time(ctx, "favorites.Add")(&err)

	if s.DB == nil {
		return errors.New("favorites: db is nil")
	}
	q := s.dialect.bind(`INSERT INTO favorites (name, location) VALUES (?, ?);`)
	if _, err := s.DB.ExecContext(ctx, q, fav.Name, fav.Location); err != nil {
		return fmt.Errorf("add favorite: insert: %w", err)
	}
	return nil
}

func (s *SQLFavoriteRepository) List(ctx context.Context) (_ []domain.Favorite, err error) {
	defer obs.Time(ctx, "favorites.List")(&err)

	if s.DB == nil {
		return nil, errors.New("favorites: db is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT name, location FROM favorites ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("list favorites: query favorites table: %w", err)
	}
	defer rows.Close()

	out := []domain.Favorite{}
	for rows.Next() {
		var f domain.Favorite
		if err := rows.Scan(&f.Name, &f.Location); err != nil {
			return nil, fmt.Errorf("list favorites: scan rows: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list favorites: row iteration: %w", err)
	}
	return out, nil
}

func (s *SQLFavoriteRepository) Remove(ctx context.Context, index int) (_ domain.Favorite, err error) {
	defer obs.Time(ctx, "favorites.Remove")(&err)

	if s.DB == nil {
		return domain.Favorite{}, errors.New("favorites: db is nil")
	}
	if index < 0 {
		return domain.Favorite{}, checkIndex(index, 0)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return domain.Favorite{}, fmt.Errorf("remove favorite: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM favorites;`).Scan(&count); err != nil {
		return domain.Favorite{}, fmt.Errorf("remove favorite: count: %w", err)
	}
	if err := checkIndex(index, count); err != nil {
		return domain.Favorite{}, err
	}

	var (
		id  int64
		fav domain.Favorite
	)
	q := s.dialect.bind(`SELECT id, name, location FROM favorites ORDER BY id LIMIT 1 OFFSET ?;`)
	if err := tx.QueryRowContext(ctx, q, index).Scan(&id, &fav.Name, &fav.Location); err != nil {
		return domain.Favorite{}, fmt.Errorf("remove favorite: select index %d: %w", index, err)
	}

	if _, err := tx.ExecContext(ctx, s.dialect.bind(`DELETE FROM favorites WHERE id = ?;`), id); err != nil {
		return domain.Favorite{}, fmt.Errorf("remove favorite: delete id=%d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Favorite{}, fmt.Errorf("remove favorite: commit tx: %w", err)
	}
	return fav, nil
}
