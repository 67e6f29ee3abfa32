package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status is the workflow state of a todo. Transitions are unrestricted:
// any status may move to any other.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Priority of a todo.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Todo is the domain entity. It does not depend on Gin, Postgres or Redis.
// OwnerID is set once at creation and never changes; SharedWith holds the
// users the owner granted access to (never the owner itself, no duplicates).
type Todo struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	Status      Status
	Priority    Priority
	DueDate     *time.Time
	SharedWith  []uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsSharedWith reports whether userID is in the todo's share list.
func (t Todo) IsSharedWith(userID uuid.UUID) bool {
	for _, id := range t.SharedWith {
		if id == userID {
			return true
		}
	}
	return false
}
