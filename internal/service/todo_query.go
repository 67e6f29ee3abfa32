package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	dom "github.com/jagankumaroffl/todo-task-management/internal/domain"
	"github.com/jagankumaroffl/todo-task-management/internal/policy"
)

// maxSearchResults caps the search operation; there is no pagination.
const maxSearchResults = 20

// Sort fields accepted by List.
type SortField string

const (
	SortByDueDate   SortField = "dueDate"
	SortByPriority  SortField = "priority"
	SortByCreatedAt SortField = "createdAt"
)

// Valid reports whether f is a known sort field.
func (f SortField) Valid() bool {
	switch f {
	case SortByDueDate, SortByPriority, SortByCreatedAt:
		return true
	}
	return false
}

// ListFilter narrows and orders the result of List. Zero values mean "no
// constraint"; Status and Priority are exact-match predicates applied
// conjunctively.
type ListFilter struct {
	Status   *dom.Status
	Priority *dom.Priority
	SortBy   SortField
	Desc     bool
}

// List returns the todos visible to userID: those they own plus those
// shared with them, filtered and ordered per f.
func (s *TodoService) List(ctx context.Context, userID uuid.UUID, f ListFilter) ([]dom.Todo, error) {
	visible, err := s.visibleSet(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dom.Todo, 0, len(visible))
	for _, t := range visible {
		if f.Status != nil && t.Status != *f.Status {
			continue
		}
		if f.Priority != nil && t.Priority != *f.Priority {
			continue
		}
		out = append(out, t)
	}

	if f.SortBy.Valid() {
		sortTodos(out, f.SortBy, f.Desc)
	}
	return out, nil
}

// DueToday returns the caller's own todos due within the current wall-clock
// day. Shared todos are not included.
func (s *TodoService) DueToday(ctx context.Context, userID uuid.UUID) ([]dom.Todo, error) {
	fetch := func() ([]dom.Todo, error) {
		now := time.Now()
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return s.todos.ListDueBetween(ctx, userID, start, start.Add(24*time.Hour))
	}
	if s.cache == nil {
		return fetch()
	}
	return s.collapse(ctx, "due-today:"+userID.String(),
		func() ([]dom.Todo, error) { return s.cache.GetDueToday(ctx, userID) },
		func(list []dom.Todo) error { return s.cache.SetDueToday(ctx, userID, list) },
		fetch,
	)
}

// Overdue returns the caller's own todos past their due date and not yet
// completed.
func (s *TodoService) Overdue(ctx context.Context, userID uuid.UUID) ([]dom.Todo, error) {
	fetch := func() ([]dom.Todo, error) {
		return s.todos.ListOverdue(ctx, userID, time.Now())
	}
	if s.cache == nil {
		return fetch()
	}
	return s.collapse(ctx, "overdue:"+userID.String(),
		func() ([]dom.Todo, error) { return s.cache.GetOverdue(ctx, userID) },
		func(list []dom.Todo) error { return s.cache.SetOverdue(ctx, userID, list) },
		fetch,
	)
}

// Search matches the caller's own todo titles by word prefix, relevance
// ordered, at most maxSearchResults. A blank term yields an empty result,
// not an error. Shared todos are out of scope here.
func (s *TodoService) Search(ctx context.Context, userID uuid.UUID, term string) ([]dom.Todo, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, nil
	}
	fetch := func() ([]dom.Todo, error) {
		return s.todos.SearchByTitle(ctx, userID, term, maxSearchResults)
	}
	if s.cache == nil {
		return fetch()
	}
	return s.collapse(ctx, "search:"+userID.String()+":"+strings.ToLower(term),
		func() ([]dom.Todo, error) { return s.cache.GetSearch(ctx, userID, term) },
		func(list []dom.Todo) error { return s.cache.SetSearch(ctx, userID, term, list) },
		fetch,
	)
}

// GetByID returns a single todo the caller may read.
func (s *TodoService) GetByID(ctx context.Context, userID, id uuid.UUID) (dom.Todo, error) {
	t, err := s.loadTodo(ctx, id)
	if err != nil {
		return dom.Todo{}, err
	}
	if !policy.CanRead(userID, t) {
		return dom.Todo{}, ErrForbidden
	}
	return t, nil
}

// visibleSet gathers owned plus shared todos, cached per user.
func (s *TodoService) visibleSet(ctx context.Context, userID uuid.UUID) ([]dom.Todo, error) {
	fetch := func() ([]dom.Todo, error) {
		owned, err := s.todos.ListOwned(ctx, userID)
		if err != nil {
			return nil, err
		}
		shared, err := s.todos.ListSharedWith(ctx, userID)
		if err != nil {
			return nil, err
		}
		return append(owned, shared...), nil
	}
	if s.cache == nil {
		return fetch()
	}
	return s.collapse(ctx, "visible:"+userID.String(),
		func() ([]dom.Todo, error) { return s.cache.GetVisible(ctx, userID) },
		func(list []dom.Todo) error { return s.cache.SetVisible(ctx, userID, list) },
		fetch,
	)
}

// collapse runs cache-get / fetch / cache-set behind singleflight so that
// concurrent identical reads hit the store once.
func (s *TodoService) collapse(
	_ context.Context,
	key string,
	get func() ([]dom.Todo, error),
	set func([]dom.Todo) error,
	fetch func() ([]dom.Todo, error),
) ([]dom.Todo, error) {
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		if list, err := get(); err == nil && list != nil {
			return list, nil
		}
		list, err := fetch()
		if err != nil {
			return nil, err
		}
		_ = set(list)
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dom.Todo), nil
}

// sortTodos orders list by the given field. A missing due date compares as
// the epoch, so undated items group at the low end. Priorities compare by
// their raw value. Equal keys fall back to ID order so the result is
// deterministic.
func sortTodos(list []dom.Todo, by SortField, desc bool) {
	sort.SliceStable(list, func(i, j int) bool {
		c := compareTodos(list[i], list[j], by)
		if desc {
			c = -c
		}
		if c == 0 {
			return list[i].ID.String() < list[j].ID.String()
		}
		return c < 0
	})
}

func compareTodos(a, b dom.Todo, by SortField) int {
	switch by {
	case SortByDueDate:
		return compareInt64(dueMillis(a), dueMillis(b))
	case SortByPriority:
		return strings.Compare(string(a.Priority), string(b.Priority))
	default:
		return compareInt64(a.CreatedAt.UnixMilli(), b.CreatedAt.UnixMilli())
	}
}

func dueMillis(t dom.Todo) int64 {
	if t.DueDate == nil {
		return 0
	}
	return t.DueDate.UnixMilli()
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
