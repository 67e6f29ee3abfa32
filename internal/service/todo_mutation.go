package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	dom "github.com/jagankumaroffl/todo-task-management/internal/domain"
	"github.com/jagankumaroffl/todo-task-management/internal/policy"
	"github.com/jagankumaroffl/todo-task-management/internal/repo"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 1000
)

// CreateInput carries the fields a caller supplies when creating a todo.
// Status is not among them: every todo starts as "todo".
type CreateInput struct {
	Title       string
	Description string
	Priority    dom.Priority
	DueDate     *time.Time
}

// UpdateInput is a partial patch; nil fields are left unchanged.
type UpdateInput struct {
	Title       *string
	Description *string
	Status      *dom.Status
	Priority    *dom.Priority
	DueDate     *time.Time
}

// Create validates in and inserts a new todo owned by userID.
func (s *TodoService) Create(ctx context.Context, userID uuid.UUID, in CreateInput) (dom.Todo, error) {
	title, err := validTitle(in.Title)
	if err != nil {
		return dom.Todo{}, err
	}
	desc, err := validDescription(in.Description)
	if err != nil {
		return dom.Todo{}, err
	}
	if !in.Priority.Valid() {
		return dom.Todo{}, fmt.Errorf("%w: unknown priority %q", ErrValidation, in.Priority)
	}

	now := time.Now()
	t, err := s.todos.Create(ctx, dom.Todo{
		OwnerID:     userID,
		Title:       title,
		Description: desc,
		Status:      dom.StatusTodo,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx, userID, nil)
	return t, nil
}

// Update applies a partial patch to the todo. Owner and shared members may
// edit; unspecified fields keep their values; UpdatedAt is refreshed even
// when nothing else changed. Status and priority move freely between values.
// Only the supplied columns are written, so a concurrent update to other
// fields is never reverted from this caller's snapshot.
func (s *TodoService) Update(ctx context.Context, userID, id uuid.UUID, in UpdateInput) (dom.Todo, error) {
	existing, err := s.loadTodo(ctx, id)
	if err != nil {
		return dom.Todo{}, err
	}
	if !policy.CanEdit(userID, existing) {
		return dom.Todo{}, ErrForbidden
	}

	var patch repo.TodoPatch
	if in.Title != nil {
		title, err := validTitle(*in.Title)
		if err != nil {
			return dom.Todo{}, err
		}
		patch.Title = &title
	}
	if in.Description != nil {
		desc, err := validDescription(*in.Description)
		if err != nil {
			return dom.Todo{}, err
		}
		patch.Description = &desc
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return dom.Todo{}, fmt.Errorf("%w: unknown status %q", ErrValidation, *in.Status)
		}
		patch.Status = in.Status
	}
	if in.Priority != nil {
		if !in.Priority.Valid() {
			return dom.Todo{}, fmt.Errorf("%w: unknown priority %q", ErrValidation, *in.Priority)
		}
		patch.Priority = in.Priority
	}
	if in.DueDate != nil {
		patch.DueDate = in.DueDate
	}
	patch.UpdatedAt = time.Now()

	t, err := s.todos.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx, t.OwnerID, t.SharedWith)
	return t, nil
}

// Delete removes the todo permanently. Owner only.
func (s *TodoService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	existing, err := s.loadTodo(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanDelete(userID, existing) {
		return ErrForbidden
	}
	if err := s.todos.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx, existing.OwnerID, existing.SharedWith)
	return nil
}

// Share grants the user registered under email access to the todo. Owner
// only; sharing is additive, nothing in this service revokes a grant.
func (s *TodoService) Share(ctx context.Context, userID, id uuid.UUID, email string) error {
	existing, err := s.loadTodo(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanShare(userID, existing) {
		return ErrForbidden
	}

	grantee, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}
	if grantee.ID == userID {
		return ErrSelfShare
	}
	if existing.IsSharedWith(grantee.ID) {
		return ErrAlreadyShared
	}

	t, err := s.todos.AppendShare(ctx, id, grantee.ID, time.Now())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// The guarded append matched no row: either the todo vanished
			// or a concurrent grant for the same user got there first.
			if _, reloadErr := s.todos.GetByID(ctx, id); errors.Is(reloadErr, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return ErrAlreadyShared
		}
		return err
	}
	s.invalidateCache(ctx, t.OwnerID, t.SharedWith)
	return nil
}

func (s *TodoService) loadTodo(ctx context.Context, id uuid.UUID) (dom.Todo, error) {
	t, err := s.todos.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	return t, nil
}

func validTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "", fmt.Errorf("%w: title cannot exceed %d characters", ErrValidation, maxTitleLen)
	}
	return title, nil
}

func validDescription(raw string) (string, error) {
	desc := strings.TrimSpace(raw)
	if utf8.RuneCountInString(desc) > maxDescriptionLen {
		return "", fmt.Errorf("%w: description cannot exceed %d characters", ErrValidation, maxDescriptionLen)
	}
	return desc, nil
}
