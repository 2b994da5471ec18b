package todos

import (
	"context"

	"github.com/dkovalev/todovault/internal/server/models"
)

// Repository persists todo records scoped to an owning user. Create returns
// the full freshly-inserted row, including storage-assigned timestamps, in a
// single round trip. ListByUser returns an empty slice both for a user with
// zero todos and for an id that matches no user.
type Repository interface {
	Create(ctx context.Context, todo *models.NewTodo) (*models.Todo, error)
	ListByUser(ctx context.Context, userID string) ([]models.Todo, error)
}
