package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	createTaskSQL = `INSERT INTO task (id, title, description, status, owner_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, description, status, owner_id, created_at, last_modified_at`
	findTasksByOwnerSQL = `SELECT id, title, description, status, owner_id, created_at, last_modified_at
		FROM task WHERE owner_id = $1 ORDER BY created_at, id`
	updateTaskSQL = `UPDATE task SET
			title = COALESCE($3, title),
			description = COALESCE($4, description),
			status = COALESCE($5, status),
			last_modified_at = now()
		WHERE id = $1 AND owner_id = $2
		RETURNING id, title, description, status, owner_id, created_at, last_modified_at`
	deleteTaskSQL = `DELETE FROM task WHERE id = $1 AND owner_id = $2`
)

// PostgresTaskRepository implements TaskRepository using PostgreSQL. The
// owner_id predicate rides along on every update and delete, so a wrong
// owner looks exactly like a missing row.
type PostgresTaskRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTaskRepository creates a new PostgreSQL-based task repository
func NewPostgresTaskRepository(pool *pgxpool.Pool) *PostgresTaskRepository {
	return &PostgresTaskRepository{
		pool: pool,
	}
}

// CreateTask creates a new task row
func (r *PostgresTaskRepository) CreateTask(ctx context.Context, params CreateTaskParams) (Task, error) {
	row := r.pool.QueryRow(ctx, createTaskSQL,
		uuid.New(), params.Title, params.Description, string(params.Status), params.OwnerID)

	t, err := scanTask(row)
	if err != nil {
		return Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return t, nil
}

// FindTasksByOwner returns the owner's tasks in creation order
func (r *PostgresTaskRepository) FindTasksByOwner(ctx context.Context, ownerID uuid.UUID) ([]Task, error) {
	rows, err := r.pool.Query(ctx, findTasksByOwnerSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tasks: %w", err)
	}
	defer rows.Close()

	tasks := []Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask applies a partial update to the owner's task
func (r *PostgresTaskRepository) UpdateTask(ctx context.Context, id, ownerID uuid.UUID, params UpdateTaskParams) (Task, error) {
	var status *string
	if params.Status != nil {
		s := string(*params.Status)
		status = &s
	}

	row := r.pool.QueryRow(ctx, updateTaskSQL, id, ownerID, params.Title, params.Description, status)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Task{}, ErrTaskNotFound
		}
		return Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	return t, nil
}

// DeleteTask removes the owner's task
func (r *PostgresTaskRepository) DeleteTask(ctx context.Context, id, ownerID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, deleteTaskSQL, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func scanTask(row pgx.Row) (Task, error) {
	var (
		t      Task
		status string
	)
	err := row.Scan(&t.ID, &t.Title, &t.Description, &status, &t.OwnerID, &t.CreatedAt, &t.LastModifiedAt)
	if err != nil {
		return Task{}, err
	}
	t.Status = Status(status)
	return t, nil
}
