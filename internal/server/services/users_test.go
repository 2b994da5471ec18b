package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovalev/todovault/internal/common"
	"github.com/dkovalev/todovault/internal/server/auth"
	"github.com/dkovalev/todovault/internal/server/config"
	"github.com/dkovalev/todovault/internal/server/repositories/repomanager"
	"github.com/dkovalev/todovault/internal/server/storage"
)

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                   "test-secret",
		AccessTokenValidityDuration: time.Minute,
	}
}

func newUserService(t *testing.T) (*UserService, *sql.DB) {
	t.Helper()
	store, err := storage.OpenInMemory(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	m := repomanager.NewSQLiteRepositoryManager()
	return NewUserService(store.DB(), m, testConfig()), store.DB()
}

func TestRegister_Success(t *testing.T) {
	s, db := newUserService(t)
	ctx := context.Background()

	id, err := s.Register(ctx, "a@test.com", "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	// the plaintext password is never persisted
	var hash string
	require.NoError(t, db.QueryRow(`SELECT password_hash FROM users WHERE id = ?`, id).Scan(&hash))
	assert.NotEqual(t, "hunter2", hash)
	assert.NotEmpty(t, hash)
}

func TestRegister_EmptyPassword(t *testing.T) {
	s, db := newUserService(t)

	_, err := s.Register(context.Background(), "a@test.com", "")
	assert.ErrorIs(t, err, common.ErrEmptyPassword)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n))
	assert.Equal(t, 0, n, "rejected registration must create no row")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s, _ := newUserService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "a@test.com", "hunter2")
	require.NoError(t, err)

	_, err = s.Register(ctx, "a@test.com", "different")
	assert.ErrorIs(t, err, common.ErrUniqueViolation)
}

func TestLogin_Success(t *testing.T) {
	s, _ := newUserService(t)
	ctx := context.Background()

	id, err := s.Register(ctx, "a@test.com", "hunter2")
	require.NoError(t, err)

	token, err := s.Login(ctx, "a@test.com", "hunter2")
	require.NoError(t, err)

	subject, err := auth.GetUserIDFromToken(token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, id, subject, "token subject must be the user id")
}

func TestLogin_WrongPassword(t *testing.T) {
	s, _ := newUserService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "a@test.com", "hunter2")
	require.NoError(t, err)

	_, err = s.Login(ctx, "a@test.com", "wrong")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	s, _ := newUserService(t)

	_, err := s.Login(context.Background(), "ghost@test.com", "whatever")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestGetByID(t *testing.T) {
	s, _ := newUserService(t)
	ctx := context.Background()

	id, err := s.Register(ctx, "a@test.com", "hunter2")
	require.NoError(t, err)

	user, err := s.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "a@test.com", user.Email)

	absent, err := s.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, absent)
}
