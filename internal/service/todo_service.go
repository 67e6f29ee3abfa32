package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/jagankumaroffl/todo-task-management/internal/cache"
	"github.com/jagankumaroffl/todo-task-management/internal/repo"
)

// TodoService implements the todo read and write operations. Reads live in
// todo_query.go, writes in todo_mutation.go. Every operation takes the
// resolved caller identity; identity resolution itself happens before the
// service is reached.
type TodoService struct {
	todos repo.TodoRepo
	users repo.UserRepo
	cache *cache.TodoCache
	sf    singleflight.Group
}

// NewTodoService creates a TodoService. If c is nil, caching is disabled.
func NewTodoService(todos repo.TodoRepo, users repo.UserRepo, c *cache.TodoCache) *TodoService {
	return &TodoService{todos: todos, users: users, cache: c}
}

// invalidateCache drops cached reads for every user the todo is visible to.
func (s *TodoService) invalidateCache(ctx context.Context, ownerID uuid.UUID, shared []uuid.UUID) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Invalidate(ctx, append([]uuid.UUID{ownerID}, shared...)...)
}
