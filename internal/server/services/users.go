// Package services contains server-side business logic. This file implements
// UserService, which handles registration and login on top of the users
// repository.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dkovalev/todovault/internal/common"
	"github.com/dkovalev/todovault/internal/server/auth"
	"github.com/dkovalev/todovault/internal/server/config"
	"github.com/dkovalev/todovault/internal/server/models"
	"github.com/dkovalev/todovault/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create users with a bcrypt-hashed password
// - Login: verify credentials and mint an access token
// - GetByID: resolve the identity behind a verified token
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a user and returns the generated id. The empty-password
// check runs before the hashing step: the schema constrains emails, not
// password content. Hashing is deliberately expensive; the scheduler keeps
// other requests progressing while it runs. A duplicate email surfaces as
// common.ErrUniqueViolation.
func (s *UserService) Register(ctx context.Context, email, password string) (string, error) {
	if password == "" {
		return "", common.ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	repo := s.repomanager.Users(s.db)
	id, err := repo.Create(ctx, email, string(hash))
	if err != nil {
		return "", fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// Login verifies the password against the stored hash and, on success,
// returns a signed access token. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	creds, err := repo.GetByEmail(ctx, email)
	if err != nil {
		return "", common.ErrInternal
	}
	if creds == nil {
		return "", common.ErrUnauthorized
	}

	if bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)) != nil {
		return "", common.ErrUnauthorized
	}

	token, err := auth.GenerateToken(creds.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrInternal
	}

	return token, nil
}

// GetByID returns the id and email behind a user id, or nil when the id
// matches no user. The password hash is never part of the result.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	return user, nil
}
