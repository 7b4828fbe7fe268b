package task

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrTaskNotFound is returned for tasks that do not exist and, identically,
// for tasks owned by another account. Keeping the two indistinguishable
// avoids leaking which ids exist.
var ErrTaskNotFound = errors.New("task not found")

// CreateTaskParams represents parameters for creating a task
type CreateTaskParams struct {
	Title       string
	Description string
	Status      Status
	OwnerID     uuid.UUID
}

// UpdateTaskParams represents a partial update; nil fields keep their
// current value.
type UpdateTaskParams struct {
	Title       *string
	Description *string
	Status      *Status
}

// TaskRepository defines the interface for task storage operations. Update
// and delete filter by owner in the same operation as the id match.
type TaskRepository interface {
	CreateTask(ctx context.Context, params CreateTaskParams) (Task, error)
	// FindTasksByOwner returns the owner's tasks in creation order
	FindTasksByOwner(ctx context.Context, ownerID uuid.UUID) ([]Task, error)
	UpdateTask(ctx context.Context, id, ownerID uuid.UUID, params UpdateTaskParams) (Task, error)
	DeleteTask(ctx context.Context, id, ownerID uuid.UUID) error
}
