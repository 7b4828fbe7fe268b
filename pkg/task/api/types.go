package api

import "github.com/tasktitan/tasktitan/pkg/task"

// CreateTaskRequest is the body of POST /api/tasks. Status is optional and
// defaults to To-Do.
type CreateTaskRequest struct {
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Status      task.Status `json:"status,omitempty"`
}

// UpdateTaskRequest is the body of PUT /api/tasks/{id}; absent fields keep
// their current value
type UpdateTaskRequest struct {
	Title       *string      `json:"title,omitempty"`
	Description *string      `json:"description,omitempty"`
	Status      *task.Status `json:"status,omitempty"`
}

// MessageResponse is the generic message envelope
type MessageResponse struct {
	Message string `json:"message"`
}
