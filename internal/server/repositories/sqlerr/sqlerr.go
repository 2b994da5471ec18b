// Package sqlerr maps SQLite driver errors onto the shared constraint
// sentinels so repository callers can match violation categories with
// errors.Is instead of inspecting driver codes.
package sqlerr

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/dkovalev/todovault/internal/common"
)

// Translate wraps a sqlite3 constraint error with the matching sentinel.
// Errors that are not constraint violations pass through unchanged.
func Translate(err error) error {
	var se sqlite3.Error
	if !errors.As(err, &se) {
		return err
	}

	switch se.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return fmt.Errorf("%w: %v", common.ErrUniqueViolation, err)
	case sqlite3.ErrConstraintForeignKey:
		return fmt.Errorf("%w: %v", common.ErrForeignKeyViolation, err)
	case sqlite3.ErrConstraintCheck:
		return fmt.Errorf("%w: %v", common.ErrCheckViolation, err)
	}

	return err
}
