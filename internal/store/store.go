package store

import (
	"context"
	"errors"

	"taskpad/internal/task"
)

var ErrNotFound = errors.New("task not found")

// Store is the persistence boundary for tasks. The database is the sole
// owner of persisted rows; every mutating call returns the row as the
// database holds it after the change.
type Store interface {
	// ListByOwner returns the owner's tasks ordered by created_at descending.
	ListByOwner(ctx context.Context, owner string) ([]task.Task, error)

	// Insert creates a task with is_complete=false, assigns id and
	// created_at, and returns the persisted row.
	Insert(ctx context.Context, owner, title string) (task.Task, error)

	// SetComplete updates the completion flag and returns the stored row.
	SetComplete(ctx context.Context, id string, complete bool) (task.Task, error)

	// SetTitle replaces the title and returns the stored row.
	SetTitle(ctx context.Context, id, title string) (task.Task, error)

	// Delete removes the task permanently.
	Delete(ctx context.Context, id string) error
}
