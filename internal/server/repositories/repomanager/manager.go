package repomanager

import (
	"context"
	"database/sql"

	"github.com/dkovalev/todovault/internal/dbx"
	"github.com/dkovalev/todovault/internal/server/repositories/todos"
	"github.com/dkovalev/todovault/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Todos(db dbx.DBTX) todos.Repository
}
