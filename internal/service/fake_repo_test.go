package service_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	dom "github.com/jagankumaroffl/todo-task-management/internal/domain"
	"github.com/jagankumaroffl/todo-task-management/internal/repo"
)

// fakeTodoRepo is an in-memory TodoRepo mirroring the Postgres
// implementation's semantics, including pgx.ErrNoRows for misses.
type fakeTodoRepo struct {
	mu    sync.Mutex
	todos map[uuid.UUID]dom.Todo
}

func newFakeTodoRepo() *fakeTodoRepo {
	return &fakeTodoRepo{todos: make(map[uuid.UUID]dom.Todo)}
}

func (f *fakeTodoRepo) Create(_ context.Context, t dom.Todo) (dom.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t.ID = uuid.New()
	f.todos[t.ID] = t
	return t, nil
}

func (f *fakeTodoRepo) GetByID(_ context.Context, id uuid.UUID) (dom.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.todos[id]
	if !ok {
		return dom.Todo{}, pgx.ErrNoRows
	}
	return t, nil
}

func (f *fakeTodoRepo) ListOwned(_ context.Context, ownerID uuid.UUID) ([]dom.Todo, error) {
	return f.collect(func(t dom.Todo) bool { return t.OwnerID == ownerID }), nil
}

func (f *fakeTodoRepo) ListSharedWith(_ context.Context, userID uuid.UUID) ([]dom.Todo, error) {
	return f.collect(func(t dom.Todo) bool { return t.IsSharedWith(userID) }), nil
}

func (f *fakeTodoRepo) ListDueBetween(_ context.Context, ownerID uuid.UUID, from, to time.Time) ([]dom.Todo, error) {
	return f.collect(func(t dom.Todo) bool {
		return t.OwnerID == ownerID && t.DueDate != nil &&
			!t.DueDate.Before(from) && t.DueDate.Before(to)
	}), nil
}

func (f *fakeTodoRepo) ListOverdue(_ context.Context, ownerID uuid.UUID, now time.Time) ([]dom.Todo, error) {
	return f.collect(func(t dom.Todo) bool {
		return t.OwnerID == ownerID && t.DueDate != nil &&
			t.DueDate.Before(now) && t.Status != dom.StatusCompleted
	}), nil
}

func (f *fakeTodoRepo) SearchByTitle(_ context.Context, ownerID uuid.UUID, term string, limit int) ([]dom.Todo, error) {
	matches := f.collect(func(t dom.Todo) bool {
		return t.OwnerID == ownerID && titleMatches(t.Title, term)
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// Update applies the patch column-wise under the lock, like the single
// UPDATE ... COALESCE statement does in Postgres.
func (f *fakeTodoRepo) Update(_ context.Context, id uuid.UUID, patch repo.TodoPatch) (dom.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.todos[id]
	if !ok {
		return dom.Todo{}, pgx.ErrNoRows
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		t.DueDate = patch.DueDate
	}
	t.UpdatedAt = patch.UpdatedAt
	f.todos[id] = t
	return t, nil
}

func (f *fakeTodoRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.todos, id)
	return nil
}

// AppendShare refuses a duplicate grantee with pgx.ErrNoRows, like the
// guarded UPDATE does when its WHERE clause matches nothing.
func (f *fakeTodoRepo) AppendShare(_ context.Context, id, granteeID uuid.UUID, updatedAt time.Time) (dom.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.todos[id]
	if !ok || t.IsSharedWith(granteeID) {
		return dom.Todo{}, pgx.ErrNoRows
	}
	t.SharedWith = append(t.SharedWith, granteeID)
	t.UpdatedAt = updatedAt
	f.todos[id] = t
	return t, nil
}

func (f *fakeTodoRepo) collect(match func(dom.Todo) bool) []dom.Todo {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []dom.Todo
	for _, t := range f.todos {
		if match(t) {
			list = append(list, t)
		}
	}
	// newest first, as the SQL queries order
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list
}

// titleMatches mimics word-prefix text search: every term word must prefix
// some title word.
func titleMatches(title, term string) bool {
	words := strings.Fields(strings.ToLower(title))
	for _, tw := range strings.Fields(strings.ToLower(term)) {
		ok := false
		for _, w := range words {
			if strings.HasPrefix(w, tw) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// fakeUserRepo is an in-memory UserRepo.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]dom.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]dom.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, email, name, passwordHash string) (dom.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := dom.User{ID: uuid.New(), Email: email, Name: name, PasswordHash: passwordHash, CreatedAt: time.Now()}
	f.users[email] = u
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (dom.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (dom.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}
