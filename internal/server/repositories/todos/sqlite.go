package todos

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dkovalev/todovault/internal/dbx"
	"github.com/dkovalev/todovault/internal/server/models"
	"github.com/dkovalev/todovault/internal/server/repositories/sqlerr"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create inserts a todo with a freshly generated id and echoes back the
// persisted row via RETURNING, so the caller observes the storage-assigned
// timestamps and defaults without a second read. A missing owner surfaces as
// common.ErrForeignKeyViolation, an empty or all-whitespace title as
// common.ErrCheckViolation.
func (r *SQLiteRepository) Create(ctx context.Context, todo *models.NewTodo) (*models.Todo, error) {
	completed := false
	if todo.Completed != nil {
		completed = *todo.Completed
	}

	query :=
		`INSERT INTO todos (id, user_id, title, description, completed)
		 VALUES (?, ?, ?, ?, ?)
		 RETURNING id, user_id, title, description, completed, created_at, updated_at
		 `

	row := &models.Todo{}
	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), todo.UserID, todo.Title, todo.Description, completed).
		Scan(&row.ID, &row.UserID, &row.Title, &row.Description, &row.Completed,
			&row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", sqlerr.Translate(err))
	}

	return row, nil
}

// ListByUser returns all todos owned by userID, most recent first. The rowid
// tie-break keeps insertion order stable when two rows share the same
// one-second created_at value.
func (r *SQLiteRepository) ListByUser(ctx context.Context, userID string) ([]models.Todo, error) {
	query :=
		`SELECT id, user_id, title, description, completed, created_at, updated_at
		 FROM todos
		 WHERE user_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Todo, 0)
	for rows.Next() {
		var item models.Todo
		if err := rows.Scan(&item.ID, &item.UserID, &item.Title, &item.Description,
			&item.Completed, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
