package repositories

import (
	"bytes"
	"context"
	"errors"
	"log"
	"route-planner-service/internal/domain"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return rdb
}

func TestRedisHistoryRepository(t *testing.T) {
	testHistoryRepository(t, NewRedisHistoryRepository(newTestRedis(t), "test"))
}

func TestRedisFavoriteRepository(t *testing.T) {
	testFavoriteRepository(t, NewRedisFavoriteRepository(newTestRedis(t), "test"))
}

func TestRedisKeysArePrefixed(t *testing.T) {
	rdb := newTestRedis(t)
	h := NewRedisHistoryRepository(rdb, "planner")
	f := NewRedisFavoriteRepository(rdb, "planner")

	if h.key != "planner:history" || f.key != "planner:favorites" {
		t.Errorf("keys = %q, %q", h.key, f.key)
	}
}

func TestRedisRepositoriesLogEveryOperation(t *testing.T) {
	buf := &bytes.Buffer{}
	prev, flags := log.Writer(), log.Flags()
	log.SetOutput(buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prev)
		log.SetFlags(flags)
	})

	ctx := context.Background()
	rdb := newTestRedis(t)
	h := NewRedisHistoryRepository(rdb, "planner")
	f := NewRedisFavoriteRepository(rdb, "planner")

	if _, err := h.Last(ctx); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Last on empty = %v, want not found", err)
	}
	if err := h.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := f.List(ctx); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, op := range []string{"op=redis.history.Last", "op=redis.history.Clear", "op=redis.favorites.List"} {
		if !strings.Contains(out, op) {
			t.Errorf("log missing %s:\n%s", op, out)
		}
	}
	if !strings.Contains(out, "kind=not_found") {
		t.Errorf("empty Last not logged with its kind:\n%s", out)
	}
}
