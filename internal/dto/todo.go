package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	dom "github.com/jagankumaroffl/todo-task-management/internal/domain"
)

// DueDate parses due_date from JSON as epoch milliseconds, a date-only
// string ("2006-01-02", stored as start of that day UTC) or RFC3339.
type DueDate struct{ t *time.Time }

func (d *DueDate) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		d.t = nil
		return nil
	}
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		parsed := time.UnixMilli(n)
		d.t = &parsed
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("due_date: use epoch milliseconds, a date (YYYY-MM-DD) or RFC3339 datetime")
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		d.t = nil
		return nil
	}
	layouts := []string{
		"2006-01-02",
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			if layout == "2006-01-02" {
				parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			}
			d.t = &parsed
			return nil
		}
	}
	return fmt.Errorf("due_date: use epoch milliseconds, a date (YYYY-MM-DD) or RFC3339 datetime")
}

// Ptr returns *time.Time for use in the service layer.
func (d DueDate) Ptr() *time.Time { return d.t }

type CreateTodoRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Priority    string  `json:"priority" binding:"required,oneof=low medium high"`
	DueDate     DueDate `json:"due_date"` // optional
}

type UpdateTodoRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Status      *string  `json:"status" binding:"omitempty,oneof=todo in-progress completed"`
	Priority    *string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *DueDate `json:"due_date"` // nil = keep current value
}

type ShareTodoRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type TodoResponse struct {
	ID          uuid.UUID   `json:"id"`
	OwnerID     uuid.UUID   `json:"owner_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Status      string      `json:"status"`
	Priority    string      `json:"priority"`
	DueDate     *time.Time  `json:"due_date"`
	SharedWith  []uuid.UUID `json:"shared_with,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type ListTodosResponse struct {
	Items []TodoResponse `json:"items"`
}

// FromTodo maps a domain todo to its response shape.
func FromTodo(t dom.Todo) TodoResponse {
	return TodoResponse{
		ID:          t.ID,
		OwnerID:     t.OwnerID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		SharedWith:  t.SharedWith,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// FromTodos maps a slice of domain todos.
func FromTodos(list []dom.Todo) []TodoResponse {
	out := make([]TodoResponse, len(list))
	for i := range list {
		out[i] = FromTodo(list[i])
	}
	return out
}
