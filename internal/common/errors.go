// Package common defines shared sentinel errors used across the storage and
// service layers of TodoVault. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Storage-layer constraint violations. The repositories translate the
	// engine's violation category into one of these so callers never have to
	// inspect driver error codes themselves.
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrCheckViolation      = errors.New("check constraint violation")

	// Validation errors raised before the storage layer is reached.
	ErrEmptyPassword = errors.New("password must not be empty")

	// Service-level errors (generic/internal flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
