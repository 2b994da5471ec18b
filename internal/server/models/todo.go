package models

import "time"

// Todo is a task row owned by exactly one user. Timestamps are assigned by
// the storage layer at insert time; UpdatedAt is not maintained afterwards
// because no mutation operation exists.
type Todo struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTodo carries the caller-supplied fields for an insert. Description and
// Completed are optional; absent values fall back to NULL and false.
type NewTodo struct {
	UserID      string
	Title       string
	Description *string
	Completed   *bool
}
