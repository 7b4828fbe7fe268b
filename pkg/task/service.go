package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrTitleRequired is returned when creating or renaming a task with an
	// empty title
	ErrTitleRequired = errors.New("task title is required")
	// ErrInvalidStatus is returned for a status outside the known set
	ErrInvalidStatus = errors.New("invalid task status")
)

// TaskService provides owner-scoped task operations. The ownership filter
// lives in the repository queries; this layer validates input and applies
// defaults.
type TaskService struct {
	tasks TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(tasks TaskRepository) *TaskService {
	return &TaskService{
		tasks: tasks,
	}
}

// Create creates a task for the owner. Status defaults to To-Do.
func (s *TaskService) Create(ctx context.Context, ownerID uuid.UUID, title, description string, status Status) (Task, error) {
	if title == "" {
		return Task{}, ErrTitleRequired
	}
	if status == "" {
		status = StatusToDo
	}
	if !status.Valid() {
		return Task{}, ErrInvalidStatus
	}

	t, err := s.tasks.CreateTask(ctx, CreateTaskParams{
		Title:       title,
		Description: description,
		Status:      status,
		OwnerID:     ownerID,
	})
	if err != nil {
		return Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return t, nil
}

// List returns the owner's tasks in creation order, empty when none exist
func (s *TaskService) List(ctx context.Context, ownerID uuid.UUID) ([]Task, error) {
	tasks, err := s.tasks.FindTasksByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Update applies a partial update to the owner's task. A missing task and a
// task owned by someone else both return ErrTaskNotFound.
func (s *TaskService) Update(ctx context.Context, id, ownerID uuid.UUID, params UpdateTaskParams) (Task, error) {
	if params.Title != nil && *params.Title == "" {
		return Task{}, ErrTitleRequired
	}
	if params.Status != nil && !params.Status.Valid() {
		return Task{}, ErrInvalidStatus
	}

	t, err := s.tasks.UpdateTask(ctx, id, ownerID, params)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return Task{}, ErrTaskNotFound
		}
		return Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	return t, nil
}

// Delete removes the owner's task
func (s *TaskService) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	err := s.tasks.DeleteTask(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
