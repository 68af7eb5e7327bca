package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/platform/obs"
	"time"
)

// SQLHistoryRepository stores history in the route_history table.
// Timestamps are kept as unix milliseconds so both dialects scan them the same way.
type SQLHistoryRepository struct {
	DB      *sql.DB
	dialect Dialect
}

func NewSqliteHistoryRepository(db *sql.DB) *SQLHistoryRepository {
	return &SQLHistoryRepository{DB: db, dialect: Sqlite}
}

func NewPostgresHistoryRepository(db *sql.DB) *SQLHistoryRepository {
	return &SQLHistoryRepository{DB: db, dialect: Postgres}
}

func (s *SQLHistoryRepository) Append(ctx context.Context, e domain.HistoryEntry) (err error) {
	defer obs.Time(ctx, "history.Append")(&err)

	if s.DB == nil {
		return errors.New("history: db is nil")
	}

	q := s.dialect.bind(`
	INSERT INTO route_history (start_name, end_name, vehicle, distance_km, duration, recorded_at)
	VALUES (?, ?, ?, ?, ?, ?);
	`)
	if _, err := s.DB.ExecContext(ctx, q,
		e.Start, e.End, string(e.Vehicle), e.DistanceKm, e.Duration, e.Timestamp.UnixMilli(),
	); err != nil {
		return fmt.Errorf("append history: insert: %w", err)
	}
	return nil
}

func (s *SQLHistoryRepository) List(ctx context.Context) (_ []domain.HistoryEntry, err error) {
	defer obs.Time(ctx, "history.List")(&err)

	if s.DB == nil {
		return nil, errors.New("history: db is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT start_name, end_name, vehicle, distance_km, duration, recorded_at
	FROM route_history
	ORDER BY id;
	`)
	if err != nil {
		return nil, fmt.Errorf("list history: query route_history table: %w", err)
	}
	defer rows.Close()

	out := []domain.HistoryEntry{}
	for rows.Next() {
		e, err := scanHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("list history: scan rows: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list history: row iteration: %w", err)
	}

	return out, nil
}

func (s *SQLHistoryRepository) Clear(ctx context.Context) (err error) {
	defer obs.Time(ctx, "history.Clear")(&err)

	if s.DB == nil {
		return errors.New("history: db is nil")
	}
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM route_history;`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

func (s *SQLHistoryRepository) Last(ctx context.Context) (_ domain.HistoryEntry, err error) {
	defer obs.Time(ctx, "history.Last")(&err)

	if s.DB == nil {
		return domain.HistoryEntry{}, errors.New("history: db is nil")
	}

	row := s.DB.QueryRowContext(ctx, `
	SELECT start_name, end_name, vehicle, distance_km, duration, recorded_at
	FROM route_history
	ORDER BY id DESC
	LIMIT 1;
	`)
	e, err := scanHistory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.HistoryEntry{}, domain.Errorf(domain.KindNotFound, "route history is empty")
	}
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("last history: %w", err)
	}
	return e, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanHistory(sc scanner) (domain.HistoryEntry, error) {
	var (
		e       domain.HistoryEntry
		vehicle string
		millis  int64
	)
	if err := sc.Scan(&e.Start, &e.End, &vehicle, &e.DistanceKm, &e.Duration, &millis); err != nil {
		return domain.HistoryEntry{}, err
	}
	e.Vehicle = domain.Vehicle(vehicle)
	e.Timestamp = time.UnixMilli(millis)
	return e, nil
}
