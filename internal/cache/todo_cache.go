package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	dom "github.com/jagankumaroffl/todo-task-management/internal/domain"
)

const (
	keyVisible  = "todo:visible:"
	keyDueToday = "todo:due-today:"
	keyOverdue  = "todo:overdue:"
	keySearch   = "todo:search:"
)

// TodoCache caches per-user read results in Redis. Keys are scoped by user
// because the visible set differs per caller; a write invalidates the keys
// of every user the record is visible to.
type TodoCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTodoCache returns a new TodoCache.
func NewTodoCache(rdb *redis.Client, ttl time.Duration) *TodoCache {
	return &TodoCache{rdb: rdb, ttl: ttl}
}

// GetVisible returns the cached visible set for userID, or nil on miss.
func (c *TodoCache) GetVisible(ctx context.Context, userID uuid.UUID) ([]dom.Todo, error) {
	return c.get(ctx, keyVisible+userID.String())
}

// SetVisible stores the visible set for userID.
func (c *TodoCache) SetVisible(ctx context.Context, userID uuid.UUID, list []dom.Todo) error {
	return c.set(ctx, keyVisible+userID.String(), list)
}

// GetDueToday returns the cached due-today list, or nil on miss.
func (c *TodoCache) GetDueToday(ctx context.Context, userID uuid.UUID) ([]dom.Todo, error) {
	return c.get(ctx, keyDueToday+userID.String())
}

// SetDueToday stores the due-today list.
func (c *TodoCache) SetDueToday(ctx context.Context, userID uuid.UUID, list []dom.Todo) error {
	return c.set(ctx, keyDueToday+userID.String(), list)
}

// GetOverdue returns the cached overdue list, or nil on miss.
func (c *TodoCache) GetOverdue(ctx context.Context, userID uuid.UUID) ([]dom.Todo, error) {
	return c.get(ctx, keyOverdue+userID.String())
}

// SetOverdue stores the overdue list.
func (c *TodoCache) SetOverdue(ctx context.Context, userID uuid.UUID, list []dom.Todo) error {
	return c.set(ctx, keyOverdue+userID.String(), list)
}

// GetSearch returns the cached search result for query q, or nil on miss.
func (c *TodoCache) GetSearch(ctx context.Context, userID uuid.UUID, q string) ([]dom.Todo, error) {
	return c.get(ctx, searchKey(userID, q))
}

// SetSearch stores a search result.
func (c *TodoCache) SetSearch(ctx context.Context, userID uuid.UUID, q string, list []dom.Todo) error {
	return c.set(ctx, searchKey(userID, q), list)
}

// Invalidate removes all cached reads for the given users.
func (c *TodoCache) Invalidate(ctx context.Context, userIDs ...uuid.UUID) error {
	for _, id := range userIDs {
		uid := id.String()
		if err := c.rdb.Del(ctx, keyVisible+uid, keyDueToday+uid, keyOverdue+uid).Err(); err != nil {
			return err
		}
		iter := c.rdb.Scan(ctx, 0, keySearch+uid+":*", 100).Iterator()
		for iter.Next(ctx) {
			if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
				return err
			}
		}
		if err := iter.Err(); err != nil {
			return err
		}
	}
	return nil
}

func (c *TodoCache) get(ctx context.Context, key string) ([]dom.Todo, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Todo
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *TodoCache) set(ctx context.Context, key string, list []dom.Todo) error {
	if list == nil {
		// nil marshals as JSON null, which get would report as a miss;
		// an empty list must round-trip as [] so empty results stay cached.
		list = []dom.Todo{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err()
}

func searchKey(userID uuid.UUID, q string) string {
	return keySearch + userID.String() + ":" + strings.ToLower(strings.TrimSpace(q))
}
