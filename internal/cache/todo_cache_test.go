package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jagankumaroffl/todo-task-management/internal/cache"
	dom "github.com/jagankumaroffl/todo-task-management/internal/domain"
)

func newTestCache(t *testing.T) *cache.TodoCache {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return cache.NewTodoCache(rdb, time.Minute)
}

func todoWithID(owner uuid.UUID) dom.Todo {
	return dom.Todo{ID: uuid.New(), OwnerID: owner, Title: "t", Status: dom.StatusTodo, Priority: dom.PriorityLow}
}

func ids(list []dom.Todo) []uuid.UUID {
	out := make([]uuid.UUID, len(list))
	for i, t := range list {
		out[i] = t.ID
	}
	return out
}

func TestCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)
	user := uuid.New()
	stored := []dom.Todo{todoWithID(user), todoWithID(user)}

	require.NoError(t, c.SetVisible(context.Background(), user, stored))
	got, err := c.GetVisible(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, ids(stored), ids(got))
}

func TestCacheMissIsNil(t *testing.T) {
	c := newTestCache(t)
	got, err := c.GetVisible(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheEmptyListStaysCached(t *testing.T) {
	c := newTestCache(t)
	user := uuid.New()

	// an empty result must come back as a hit, not as a miss
	require.NoError(t, c.SetOverdue(context.Background(), user, nil))
	got, err := c.GetOverdue(context.Background(), user)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	require.NoError(t, c.SetSearch(context.Background(), user, "milk", []dom.Todo{}))
	got, err = c.GetSearch(context.Background(), user, "milk")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestInvalidateScopesToUser(t *testing.T) {
	c := newTestCache(t)
	alice := uuid.New()
	bob := uuid.New()

	require.NoError(t, c.SetVisible(context.Background(), alice, []dom.Todo{todoWithID(alice)}))
	require.NoError(t, c.SetDueToday(context.Background(), alice, nil))
	require.NoError(t, c.SetSearch(context.Background(), alice, "milk", nil))
	require.NoError(t, c.SetVisible(context.Background(), bob, []dom.Todo{todoWithID(bob)}))

	require.NoError(t, c.Invalidate(context.Background(), alice))

	for _, lookup := range []func() ([]dom.Todo, error){
		func() ([]dom.Todo, error) { return c.GetVisible(context.Background(), alice) },
		func() ([]dom.Todo, error) { return c.GetDueToday(context.Background(), alice) },
		func() ([]dom.Todo, error) { return c.GetSearch(context.Background(), alice, "milk") },
	} {
		got, err := lookup()
		require.NoError(t, err)
		assert.Nil(t, got)
	}

	got, err := c.GetVisible(context.Background(), bob)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
