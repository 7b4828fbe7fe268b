package task

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemTaskRepository implements TaskRepository using an in-memory map
type InMemTaskRepository struct {
	tasks map[uuid.UUID]Task
	order []uuid.UUID
	mu    sync.Mutex
}

// NewInMemTaskRepository creates a new in-memory task repository
func NewInMemTaskRepository() *InMemTaskRepository {
	return &InMemTaskRepository{
		tasks: make(map[uuid.UUID]Task),
	}
}

// CreateTask creates a new task in memory
func (r *InMemTaskRepository) CreateTask(ctx context.Context, params CreateTaskParams) (Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	t := Task{
		ID:             uuid.New(),
		Title:          params.Title,
		Description:    params.Description,
		Status:         params.Status,
		OwnerID:        params.OwnerID,
		CreatedAt:      now,
		LastModifiedAt: now,
	}

	r.tasks[t.ID] = t
	r.order = append(r.order, t.ID)
	slog.Debug("Task created", "taskId", t.ID, "ownerId", t.OwnerID)
	return t, nil
}

// FindTasksByOwner returns the owner's tasks in creation order
func (r *InMemTaskRepository) FindTasksByOwner(ctx context.Context, ownerID uuid.UUID) ([]Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := []Task{}
	for _, id := range r.order {
		if t, exists := r.tasks[id]; exists && t.OwnerID == ownerID {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

// UpdateTask applies a partial update to the owner's task
func (r *InMemTaskRepository) UpdateTask(ctx context.Context, id, ownerID uuid.UUID, params UpdateTaskParams) (Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, exists := r.tasks[id]
	if !exists || t.OwnerID != ownerID {
		return Task{}, ErrTaskNotFound
	}

	if params.Title != nil {
		t.Title = *params.Title
	}
	if params.Description != nil {
		t.Description = *params.Description
	}
	if params.Status != nil {
		t.Status = *params.Status
	}
	t.LastModifiedAt = time.Now().UTC()

	r.tasks[id] = t
	return t, nil
}

// DeleteTask removes the owner's task
func (r *InMemTaskRepository) DeleteTask(ctx context.Context, id, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, exists := r.tasks[id]
	if !exists || t.OwnerID != ownerID {
		return ErrTaskNotFound
	}

	delete(r.tasks, id)
	for i, orderedID := range r.order {
		if orderedID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	slog.Debug("Task deleted", "taskId", id, "ownerId", t.OwnerID)
	return nil
}
