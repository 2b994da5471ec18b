package users

import (
	"context"

	"github.com/dkovalev/todovault/internal/server/models"
)

// Repository persists user identity records. The id is generated by the
// store at creation time, never supplied by the caller. Point lookups return
// (nil, nil) when no row matches: absence is not an error.
type Repository interface {
	Create(ctx context.Context, email, passwordHash string) (string, error)
	GetByEmail(ctx context.Context, email string) (*models.Credentials, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
