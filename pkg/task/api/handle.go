package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/tasktitan/tasktitan/pkg/client"
	"github.com/tasktitan/tasktitan/pkg/task"
)

// Handle exposes the task endpoints over the task service. Every route
// requires an authenticated account; the owner filter comes from the token,
// never the request body.
type Handle struct {
	taskService *task.TaskService
}

// NewHandle creates a new Handle
func NewHandle(taskService *task.TaskService) *Handle {
	return &Handle{
		taskService: taskService,
	}
}

// Routes mounts the task endpoints on r
func (h *Handle) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{taskId}", h.Update)
	r.Delete("/{taskId}", h.Delete)
}

// List handles GET /api/tasks
func (h *Handle) List(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := client.AccountID(r.Context())
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, MessageResponse{Message: "Unauthorized"})
		return
	}

	tasks, err := h.taskService.List(r.Context(), ownerID)
	if err != nil {
		slog.Error("Failed to list tasks", "ownerId", ownerID, "err", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, MessageResponse{Message: "failed to fetch tasks"})
		return
	}

	render.JSON(w, r, tasks)
}

// Create handles POST /api/tasks
func (h *Handle) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := client.AccountID(r.Context())
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, MessageResponse{Message: "Unauthorized"})
		return
	}

	data := CreateTaskRequest{}
	if err := render.DecodeJSON(r.Body, &data); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, MessageResponse{Message: "unable to parse body"})
		return
	}

	t, err := h.taskService.Create(r.Context(), ownerID, data.Title, data.Description, data.Status)
	if err != nil {
		if errors.Is(err, task.ErrTitleRequired) || errors.Is(err, task.ErrInvalidStatus) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, MessageResponse{Message: err.Error()})
			return
		}
		slog.Error("Failed to create task", "ownerId", ownerID, "err", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, MessageResponse{Message: "failed to create task"})
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, t)
}

// Update handles PUT /api/tasks/{taskId}
func (h *Handle) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := client.AccountID(r.Context())
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, MessageResponse{Message: "Unauthorized"})
		return
	}

	// An unparseable id cannot name an owned task
	taskID, err := uuid.Parse(chi.URLParam(r, "taskId"))
	if err != nil {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, MessageResponse{Message: "task not found"})
		return
	}

	data := UpdateTaskRequest{}
	if err := render.DecodeJSON(r.Body, &data); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, MessageResponse{Message: "unable to parse body"})
		return
	}

	t, err := h.taskService.Update(r.Context(), taskID, ownerID, task.UpdateTaskParams{
		Title:       data.Title,
		Description: data.Description,
		Status:      data.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, task.ErrTaskNotFound):
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, MessageResponse{Message: "task not found"})
		case errors.Is(err, task.ErrTitleRequired), errors.Is(err, task.ErrInvalidStatus):
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, MessageResponse{Message: err.Error()})
		default:
			slog.Error("Failed to update task", "taskId", taskID, "err", err)
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, MessageResponse{Message: "failed to update task"})
		}
		return
	}

	render.JSON(w, r, t)
}

// Delete handles DELETE /api/tasks/{taskId}
func (h *Handle) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := client.AccountID(r.Context())
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, MessageResponse{Message: "Unauthorized"})
		return
	}

	taskID, err := uuid.Parse(chi.URLParam(r, "taskId"))
	if err != nil {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, MessageResponse{Message: "task not found"})
		return
	}

	if err := h.taskService.Delete(r.Context(), taskID, ownerID); err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, MessageResponse{Message: "task not found"})
			return
		}
		slog.Error("Failed to delete task", "taskId", taskID, "err", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, MessageResponse{Message: "failed to delete task"})
		return
	}

	render.JSON(w, r, MessageResponse{Message: "task deleted"})
}
