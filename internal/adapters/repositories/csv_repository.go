package repositories

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"route-planner-service/internal/domain"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	historyHeader  = []string{"Start", "End", "Vehicle", "Distance_km", "Duration", "Timestamp"}
	favoriteHeader = []string{"Name", "Location"}
)

// CSVHistoryRepository stores history as a flat file. Each call opens,
// writes and closes the file; there is no cross-process locking.
type CSVHistoryRepository struct {
	mu   sync.Mutex
	path string
}

func NewCSVHistoryRepository(path string) *CSVHistoryRepository {
	return &CSVHistoryRepository{path: path}
}

func (r *CSVHistoryRepository) Append(ctx context.Context, e domain.HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row := []string{
		e.Start,
		e.End,
		string(e.Vehicle),
		e.DistanceText(),
		e.Duration,
		e.Timestamp.Format(domain.TimestampLayout),
	}
	if err := appendRow(r.path, historyHeader, row); err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

func (r *CSVHistoryRepository) List(ctx context.Context) ([]domain.HistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list()
}

func (r *CSVHistoryRepository) list() ([]domain.HistoryEntry, error) {
	rows, err := readRows(r.path, historyHeader)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	out := make([]domain.HistoryEntry, 0, len(rows))
	for i, row := range rows {
		if len(row) < 5 {
			return nil, fmt.Errorf("list history: row %d has %d fields", i+1, len(row))
		}
		km, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
		if err != nil {
			return nil, fmt.Errorf("list history: row %d distance %q: %w", i+1, row[3], err)
		}
		e := domain.HistoryEntry{
			Start:      row[0],
			End:        row[1],
			Vehicle:    domain.Vehicle(row[2]),
			DistanceKm: km,
			Duration:   row[4],
		}
		// Files written before timestamps were recorded have five columns.
		if len(row) > 5 && row[5] != "" {
			ts, err := time.ParseInLocation(domain.TimestampLayout, row[5], time.Local)
			if err != nil {
				return nil, fmt.Errorf("list history: row %d timestamp %q: %w", i+1, row[5], err)
			}
			e.Timestamp = ts
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *CSVHistoryRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

func (r *CSVHistoryRepository) Last(ctx context.Context) (domain.HistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.list()
	if err != nil {
		return domain.HistoryEntry{}, err
	}
	if len(entries) == 0 {
		return domain.HistoryEntry{}, domain.Errorf(domain.KindNotFound, "route history is empty")
	}
	return entries[len(entries)-1], nil
}

// CSVFavoriteRepository stores favorites as Name,Location rows.
type CSVFavoriteRepository struct {
	mu   sync.Mutex
	path string
}

func NewCSVFavoriteRepository(path string) *CSVFavoriteRepository {
	return &CSVFavoriteRepository{path: path}
}

func (r *CSVFavoriteRepository) Add(ctx context.Context, fav domain.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := appendRow(r.path, favoriteHeader, []string{fav.Name, fav.Location}); err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

func (r *CSVFavoriteRepository) List(ctx context.Context) ([]domain.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list()
}

func (r *CSVFavoriteRepository) list() ([]domain.Favorite, error) {
	rows, err := readRows(r.path, favoriteHeader)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	out := make([]domain.Favorite, 0, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("list favorites: row %d has %d fields", i+1, len(row))
		}
		out = append(out, domain.Favorite{Name: row[0], Location: row[1]})
	}
	return out, nil
}

// Remove rewrites the file without the entry at index.
func (r *CSVFavoriteRepository) Remove(ctx context.Context, index int) (domain.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	favs, err := r.list()
	if err != nil {
		return domain.Favorite{}, err
	}
	if err := checkIndex(index, len(favs)); err != nil {
		return domain.Favorite{}, err
	}
	removed := favs[index]

	rows := make([][]string, 0, len(favs))
	rows = append(rows, favoriteHeader)
	for i, f := range favs {
		if i == index {
			continue
		}
		rows = append(rows, []string{f.Name, f.Location})
	}
	if err := rewrite(r.path, rows); err != nil {
		return domain.Favorite{}, fmt.Errorf("remove favorite: %w", err)
	}
	return removed, nil
}

// appendRow adds one record, writing header first when the file is new or empty.
func appendRow(path string, header, row []string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create dir %q: %w", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %q: %w", path, err)
	}
	return f.Close()
}

// readRows returns all records after the header. A missing file reads as empty.
func readRows(path string, header []string) ([][]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	var rows [][]string
	for first := true; ; first = false {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %q: %w", path, err)
		}
		if first && len(rec) > 0 && rec[0] == header[0] {
			continue
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func rewrite(path string, rows [][]string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create %q: %w", tmp, err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write %q: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %q: %w", path, err)
	}
	return nil
}
