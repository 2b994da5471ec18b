package users

import (
	"context"
	"database/sql"
	"errors"
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

// Create inserts a user with a freshly generated id in a single statement.
// Email uniqueness is enforced by the schema, not pre-checked here; a
// duplicate surfaces as common.ErrUniqueViolation.
func (r *SQLiteRepository) Create(ctx context.Context, email, passwordHash string) (string, error) {
	query :=
		`INSERT INTO users (id, email, password_hash)
		 VALUES (?, ?, ?)
		 RETURNING id
		 `

	var id string
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), email, passwordHash).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("db error: %w", sqlerr.Translate(err))
	}

	return id, nil
}

// GetByEmail is a point lookup by the unique email key. The result carries
// only the id and the password hash, which is all a login flow needs.
func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*models.Credentials, error) {
	query :=
		`SELECT id, password_hash FROM users
		 WHERE email = ?
		 `

	creds := &models.Credentials{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(&creds.ID, &creds.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return creds, nil
}

// GetByID is a point lookup by primary key. The password hash is deliberately
// left out of the result shape.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query :=
		`SELECT id, email FROM users
		 WHERE id = ?
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
