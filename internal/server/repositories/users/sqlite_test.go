package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovalev/todovault/internal/common"
	"github.com/dkovalev/todovault/internal/server/storage"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	store, err := storage.OpenInMemory(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.DB()
}

func TestCreate_ReturnsGeneratedID(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	id, err := r.Create(ctx, "a@test.com", "hash-1")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	_, err = uuid.Parse(id)
	assert.NoError(t, err, "id must be a generated uuid")

	creds, err := r.GetByEmail(ctx, "a@test.com")
	require.NoError(t, err)
	require.NotNil(t, creds)
	assert.Equal(t, id, creds.ID)
	assert.Equal(t, "hash-1", creds.PasswordHash)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	first, err := r.Create(ctx, "a@test.com", "hash-1")
	require.NoError(t, err)

	_, err = r.Create(ctx, "a@test.com", "hash-2")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUniqueViolation)

	// the original row is unaffected
	creds, err := r.GetByEmail(ctx, "a@test.com")
	require.NoError(t, err)
	require.NotNil(t, creds)
	assert.Equal(t, first, creds.ID)
	assert.Equal(t, "hash-1", creds.PasswordHash)
}

func TestGetByEmail_Absent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	creds, err := r.GetByEmail(context.Background(), "ghost@test.com")
	require.NoError(t, err, "absence is not an error")
	assert.Nil(t, creds)
}

func TestGetByID(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	id, err := r.Create(ctx, "a@test.com", "hash-1")
	require.NoError(t, err)

	user, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "a@test.com", user.Email)
	assert.Empty(t, user.PasswordHash, "hash must not be loaded by id lookups")

	absent, err := r.GetByID(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestGetByEmail_DBError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+id,\s*password_hash\s+FROM\s+users`).
		WithArgs("a@test.com").
		WillReturnError(errors.New("db down"))

	r := NewSQLiteRepository(db)
	_, err = r.GetByEmail(context.Background(), "a@test.com")
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*db down`), err.Error())
}
