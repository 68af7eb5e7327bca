package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/platform/obs"
	"time"

	"github.com/redis/go-redis/v9"
)

type historyRecord struct {
	Start      string    `json:"start"`
	End        string    `json:"end"`
	Vehicle    string    `json:"vehicle"`
	DistanceKm float64   `json:"distance_km"`
	Duration   string    `json:"duration"`
	Timestamp  time.Time `json:"timestamp"`
}

type favoriteRecord struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// RedisHistoryRepository keeps history in a redis list of JSON records,
// oldest at the head.
type RedisHistoryRepository struct {
	rdb *redis.Client
	key string
}

func NewRedisHistoryRepository(rdb *redis.Client, prefix string) *RedisHistoryRepository {
	return &RedisHistoryRepository{rdb: rdb, key: prefix + ":history"}
}

func (r *RedisHistoryRepository) Append(ctx context.Context, e domain.HistoryEntry) (err error) {
	defer obs.Time(ctx, "redis.history.Append")(&err)

	b, err := json.Marshal(historyRecord{
		Start:      e.Start,
		End:        e.End,
		Vehicle:    string(e.Vehicle),
		DistanceKm: e.DistanceKm,
		Duration:   e.Duration,
		Timestamp:  e.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("append history: encode: %w", err)
	}
	if err := r.rdb.RPush(ctx, r.key, b).Err(); err != nil {
		return fmt.Errorf("append history: rpush %s: %w", r.key, err)
	}
	return nil
}

func (r *RedisHistoryRepository) List(ctx context.Context) (_ []domain.HistoryEntry, err error) {
	defer obs.Time(ctx, "redis.history.List")(&err)

	vals, err := r.rdb.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list history: lrange %s: %w", r.key, err)
	}

	out := make([]domain.HistoryEntry, 0, len(vals))
	for i, v := range vals {
		e, err := decodeHistory(v)
		if err != nil {
			return nil, fmt.Errorf("list history: element %d: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *RedisHistoryRepository) Clear(ctx context.Context) (err error) {
	defer obs.Time(ctx, "redis.history.Clear")(&err)

	if err := r.rdb.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("clear history: del %s: %w", r.key, err)
	}
	return nil
}

func (r *RedisHistoryRepository) Last(ctx context.Context) (_ domain.HistoryEntry, err error) {
	defer obs.Time(ctx, "redis.history.Last")(&err)

	v, err := r.rdb.LIndex(ctx, r.key, -1).Result()
	if errors.Is(err, redis.Nil) {
		return domain.HistoryEntry{}, domain.Errorf(domain.KindNotFound, "route history is empty")
	}
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("last history: lindex %s: %w", r.key, err)
	}

	e, err := decodeHistory(v)
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("last history: %w", err)
	}
	return e, nil
}

func decodeHistory(v string) (domain.HistoryEntry, error) {
	var rec historyRecord
	if err := json.Unmarshal([]byte(v), &rec); err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("decode: %w", err)
	}
	return domain.HistoryEntry{
		Start:      rec.Start,
		End:        rec.End,
		Vehicle:    domain.Vehicle(rec.Vehicle),
		DistanceKm: rec.DistanceKm,
		Duration:   rec.Duration,
		Timestamp:  rec.Timestamp,
	}, nil
}

// RedisFavoriteRepository keeps favorites in a redis list of JSON records.
type RedisFavoriteRepository struct {
	rdb *redis.Client
	key string
}

func NewRedisFavoriteRepository(rdb *redis.Client, prefix string) *RedisFavoriteRepository {
	return &RedisFavoriteRepository{rdb: rdb, key: prefix + ":favorites"}
}

func (r *RedisFavoriteRepository) Add(ctx context.Context, fav domain.Favorite) (err error) {
	defer obs.Time(ctx, "redis.favorites.Add")(&err)

	b, err := json.Marshal(favoriteRecord{Name: fav.Name, Location: fav.Location})
	if err != nil {
		return fmt.Errorf("add favorite: encode: %w", err)
	}
	if err := r.rdb.RPush(ctx, r.key, b).Err(); err != nil {
		return fmt.Errorf("add favorite: rpush %s: %w", r.key, err)
	}
	return nil
}

func (r *RedisFavoriteRepository) List(ctx context.Context) (_ []domain.Favorite, err error) {
	defer obs.Time(ctx, "redis.favorites.List")(&err)

	vals, err := r.rdb.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list favorites: lrange %s: %w", r.key, err)
	}

	out := make([]domain.Favorite, 0, len(vals))
	for i, v := range vals {
		var rec favoriteRecord
		if err := json.Unmarshal([]byte(v), &rec); err != nil {
			return nil, fmt.Errorf("list favorites: element %d: %w", i, err)
		}
		out = append(out, domain.Favorite{Name: rec.Name, Location: rec.Location})
	}
	return out, nil
}

// Remove deletes the element at index under WATCH so a concurrent writer
// cannot shift positions between the read and the delete.
func (r *RedisFavoriteRepository) Remove(ctx context.Context, index int) (_ domain.Favorite, err error) {
	defer obs.Time(ctx, "redis.favorites.Remove")(&err)

	const tombstone = "\x00removed"
	var removed domain.Favorite

	txf := func(tx *redis.Tx) error {
		n, err := tx.LLen(ctx, r.key).Result()
		if err != nil {
			return fmt.Errorf("llen %s: %w", r.key, err)
		}
		if err := checkIndex(index, int(n)); err != nil {
			return err
		}

		v, err := tx.LIndex(ctx, r.key, int64(index)).Result()
		if err != nil {
			return fmt.Errorf("lindex %s %d: %w", r.key, index, err)
		}
		var rec favoriteRecord
		if err := json.Unmarshal([]byte(v), &rec); err != nil {
			return fmt.Errorf("decode element %d: %w", index, err)
		}
		removed = domain.Favorite{Name: rec.Name, Location: rec.Location}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.LSet(ctx, r.key, int64(index), tombstone)
			pipe.LRem(ctx, r.key, 1, tombstone)
			return nil
		})
		return err
	}

	if err := r.rdb.Watch(ctx, txf, r.key); err != nil {
		if domain.KindOf(err) != "" {
			return domain.Favorite{}, err
		}
		return domain.Favorite{}, fmt.Errorf("remove favorite: %w", err)
	}
	return removed, nil
}
