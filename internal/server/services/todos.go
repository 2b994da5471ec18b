package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dkovalev/todovault/internal/server/models"
	"github.com/dkovalev/todovault/internal/server/repositories/repomanager"
)

// TodoService exposes todo creation and user-scoped listing. Each operation
// is a single atomic statement against the shared connection; the service
// adds no caching and no cross-statement transactions.
type TodoService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTodoService constructs a TodoService bound to the shared database handle.
func NewTodoService(db *sql.DB, m repomanager.RepositoryManager) *TodoService {
	return &TodoService{db: db, repomanager: m}
}

// Create inserts a todo owned by todo.UserID and returns the persisted row.
// A user id that references nobody surfaces as common.ErrForeignKeyViolation,
// a blank title as common.ErrCheckViolation.
func (s *TodoService) Create(ctx context.Context, todo *models.NewTodo) (*models.Todo, error) {
	repo := s.repomanager.Todos(s.db)

	created, err := repo.Create(ctx, todo)
	if err != nil {
		return nil, fmt.Errorf("error creating todo: %w", err)
	}

	return created, nil
}

// ListByUser returns the user's todos, most recent first. Unknown users get
// an empty slice, same as users with no todos.
func (s *TodoService) ListByUser(ctx context.Context, userID string) ([]models.Todo, error) {
	repo := s.repomanager.Todos(s.db)

	list, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing todos: %w", err)
	}

	return list, nil
}
