package repo

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	dom "github.com/jagankumaroffl/todo-task-management/internal/domain"
)

// TodoRepo provides todo persistence. Every write is a single statement,
// so concurrent mutations on the same record never interleave partially.
type TodoRepo interface {
	Create(ctx context.Context, t dom.Todo) (dom.Todo, error)
	GetByID(ctx context.Context, id uuid.UUID) (dom.Todo, error)
	ListOwned(ctx context.Context, ownerID uuid.UUID) ([]dom.Todo, error)
	ListSharedWith(ctx context.Context, userID uuid.UUID) ([]dom.Todo, error)
	ListDueBetween(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]dom.Todo, error)
	ListOverdue(ctx context.Context, ownerID uuid.UUID, now time.Time) ([]dom.Todo, error)
	SearchByTitle(ctx context.Context, ownerID uuid.UUID, term string, limit int) ([]dom.Todo, error)
	Update(ctx context.Context, id uuid.UUID, patch TodoPatch) (dom.Todo, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AppendShare(ctx context.Context, id, granteeID uuid.UUID, updatedAt time.Time) (dom.Todo, error)
}

// TodoPatch is a column-level patch for Update. Nil fields keep the stored
// value; the single UPDATE statement touches only the supplied columns, so
// two concurrent patches to different fields both take effect.
type TodoPatch struct {
	Title       *string
	Description *string
	Status      *dom.Status
	Priority    *dom.Priority
	DueDate     *time.Time
	UpdatedAt   time.Time
}

const todoColumns = `id, owner_id, title, description, status, priority, due_date, shared_with, created_at, updated_at`

// PGTodoRepo implements TodoRepo with Postgres.
type PGTodoRepo struct {
	db *pgxpool.Pool
}

// NewPGTodoRepo returns a new PGTodoRepo.
func NewPGTodoRepo(db *pgxpool.Pool) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

func scanTodo(row pgx.Row) (dom.Todo, error) {
	var t dom.Todo
	err := row.Scan(
		&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.Status, &t.Priority,
		&t.DueDate, &t.SharedWith, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func collectTodos(rows pgx.Rows) ([]dom.Todo, error) {
	defer rows.Close()
	var list []dom.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTodoRepo) Create(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	query := `
		INSERT INTO todos (owner_id, title, description, status, priority, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING ` + todoColumns
	return scanTodo(r.db.QueryRow(ctx, query,
		t.OwnerID, t.Title, t.Description, t.Status, t.Priority, t.DueDate, t.CreatedAt,
	))
}

func (r *PGTodoRepo) GetByID(ctx context.Context, id uuid.UUID) (dom.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = $1`
	return scanTodo(r.db.QueryRow(ctx, query, id))
}

func (r *PGTodoRepo) ListOwned(ctx context.Context, ownerID uuid.UUID) ([]dom.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	return collectTodos(rows)
}

// ListSharedWith finds every todo granting access to userID. The GIN index
// on shared_with serves as the inverted grantee index, so this is not a
// full-collection scan.
func (r *PGTodoRepo) ListSharedWith(ctx context.Context, userID uuid.UUID) ([]dom.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE shared_with @> ARRAY[$1]::uuid[] ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectTodos(rows)
}

func (r *PGTodoRepo) ListDueBetween(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]dom.Todo, error) {
	query := `
		SELECT ` + todoColumns + `
		FROM todos
		WHERE owner_id = $1 AND due_date >= $2 AND due_date < $3
		ORDER BY due_date ASC`
	rows, err := r.db.Query(ctx, query, ownerID, from, to)
	if err != nil {
		return nil, err
	}
	return collectTodos(rows)
}

func (r *PGTodoRepo) ListOverdue(ctx context.Context, ownerID uuid.UUID, now time.Time) ([]dom.Todo, error) {
	query := `
		SELECT ` + todoColumns + `
		FROM todos
		WHERE owner_id = $1 AND due_date IS NOT NULL AND due_date < $2 AND status <> 'completed'
		ORDER BY due_date ASC`
	rows, err := r.db.Query(ctx, query, ownerID, now)
	if err != nil {
		return nil, err
	}
	return collectTodos(rows)
}

// SearchByTitle runs an owner-scoped prefix search over titles, ranked by
// text-search relevance.
func (r *PGTodoRepo) SearchByTitle(ctx context.Context, ownerID uuid.UUID, term string, limit int) ([]dom.Todo, error) {
	ts := prefixTSQuery(term)
	if ts == "" {
		return nil, nil
	}
	query := `
		SELECT ` + todoColumns + `
		FROM todos
		WHERE owner_id = $1 AND to_tsvector('simple', title) @@ to_tsquery('simple', $2)
		ORDER BY ts_rank(to_tsvector('simple', title), to_tsquery('simple', $2)) DESC, created_at DESC
		LIMIT $3`
	rows, err := r.db.Query(ctx, query, ownerID, ts, limit)
	if err != nil {
		return nil, err
	}
	return collectTodos(rows)
}

func (r *PGTodoRepo) Update(ctx context.Context, id uuid.UUID, patch TodoPatch) (dom.Todo, error) {
	query := `
		UPDATE todos
		SET title       = COALESCE($2, title),
		    description = COALESCE($3, description),
		    status      = COALESCE($4, status),
		    priority    = COALESCE($5, priority),
		    due_date    = COALESCE($6, due_date),
		    updated_at  = $7
		WHERE id = $1
		RETURNING ` + todoColumns
	return scanTodo(r.db.QueryRow(ctx, query,
		id, patch.Title, patch.Description, patch.Status, patch.Priority, patch.DueDate, patch.UpdatedAt,
	))
}

func (r *PGTodoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	return err
}

// AppendShare adds granteeID to shared_with in a single statement. The WHERE
// clause guards against a duplicate, so two concurrent grants for the same
// user cannot both append; the loser sees pgx.ErrNoRows, same as a missing
// id, and the caller disambiguates.
func (r *PGTodoRepo) AppendShare(ctx context.Context, id, granteeID uuid.UUID, updatedAt time.Time) (dom.Todo, error) {
	query := `
		UPDATE todos
		SET shared_with = array_append(shared_with, $2), updated_at = $3
		WHERE id = $1 AND NOT (shared_with @> ARRAY[$2]::uuid[])
		RETURNING ` + todoColumns
	return scanTodo(r.db.QueryRow(ctx, query, id, granteeID, updatedAt))
}

// prefixTSQuery turns free text into a tsquery matching each word as a
// prefix: "buy mi" -> "buy:* & mi:*". Characters with meaning to tsquery
// are dropped.
func prefixTSQuery(term string) string {
	var lexemes []string
	for _, word := range strings.Fields(term) {
		var b strings.Builder
		for _, r := range word {
			switch r {
			case '&', '|', '!', '(', ')', ':', '*', '\'', '\\', '<', '>':
				// skip
			default:
				b.WriteRune(r)
			}
		}
		if b.Len() > 0 {
			lexemes = append(lexemes, b.String()+":*")
		}
	}
	return strings.Join(lexemes, " & ")
}
