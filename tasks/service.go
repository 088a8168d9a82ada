package tasks

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Bvqlz/Todo/apperror"
)

// TaskService is the repository over the tasks table. All operations are
// scoped to an owner: mutations include the owner in the WHERE predicate, so
// a non-owner's request matches zero rows instead of raising an authorization
// error, and the handler maps zero rows to a not-found response.
type TaskService struct {
	db *pgxpool.Pool
}

// NewTaskService creates a new TaskService.
func NewTaskService(db *pgxpool.Pool) *TaskService {
	return &TaskService{db: db}
}

// List returns all tasks owned by userID, ordered ascending by ID.
func (s *TaskService) List(ctx context.Context, userID int) ([]Task, error) {
	query := `SELECT id, description, status, user_id
	          FROM tasks
	          WHERE user_id = $1
	          ORDER BY id ASC`
	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		log.Printf("database error listing tasks for user %d: %v", userID, err)
		return nil, apperror.NewDatabaseError("failed to list tasks", err)
	}
	defer rows.Close()

	// Non-nil so an empty result serializes as [] rather than null.
	tasks := []Task{}
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.Description, &t.Status, &t.UserID); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan task", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read tasks", err)
	}

	return tasks, nil
}

// Get returns the task with the given ID if it is owned by userID.
// A task owned by someone else yields the same not-found error as a task that
// does not exist.
func (s *TaskService) Get(ctx context.Context, taskID, userID int) (*Task, error) {
	query := `SELECT id, description, status, user_id
	          FROM tasks
	          WHERE id = $1 AND user_id = $2`
	var t Task
	err := s.db.QueryRow(ctx, query, taskID, userID).Scan(&t.ID, &t.Description, &t.Status, &t.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("task not found", nil)
		}
		log.Printf("database error fetching task %d for user %d: %v", taskID, userID, err)
		return nil, apperror.NewDatabaseError("failed to get task", err)
	}
	return &t, nil
}

// Create inserts a new task owned by userID and returns it with the
// server-assigned ID.
func (s *TaskService) Create(ctx context.Context, description string, status Status, userID int) (*Task, error) {
	query := `INSERT INTO tasks (description, status, user_id)
	          VALUES ($1, $2, $3)
	          RETURNING id`
	var taskID int
	err := s.db.QueryRow(ctx, query, description, status.String(), userID).Scan(&taskID)
	if err != nil {
		log.Printf("database error creating task for user %d: %v", userID, err)
		return nil, apperror.NewDatabaseError("failed to create task", err)
	}

	return &Task{
		ID:          taskID,
		Description: description,
		Status:      status,
		UserID:      userID,
	}, nil
}

// Update applies the provided fields to the task. Nil fields are left
// unchanged. The boolean reports whether a row owned by userID was matched;
// the caller is responsible for ensuring at least one field is set.
func (s *TaskService) Update(ctx context.Context, taskID int, description *string, status *Status, userID int) (bool, error) {
	var setClauses []string
	var args []interface{}
	argID := 1

	if description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", argID))
		args = append(args, *description)
		argID++
	}
	if status != nil {
		setClauses = append(setClauses, fmt.Sprintf("status = $%d", argID))
		args = append(args, status.String())
		argID++
	}

	if len(setClauses) == 0 {
		return false, apperror.NewValidationError("no fields provided for update", nil)
	}

	args = append(args, taskID, userID)
	query := fmt.Sprintf(
		"UPDATE tasks SET %s WHERE id = $%d AND user_id = $%d",
		strings.Join(setClauses, ", "), argID, argID+1,
	)

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		log.Printf("database error updating task %d for user %d: %v", taskID, userID, err)
		return false, apperror.NewDatabaseError("failed to update task", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes the task if it is owned by userID and reports whether a row
// was removed.
func (s *TaskService) Delete(ctx context.Context, taskID, userID int) (bool, error) {
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	tag, err := s.db.Exec(ctx, query, taskID, userID)
	if err != nil {
		log.Printf("database error deleting task %d for user %d: %v", taskID, userID, err)
		return false, apperror.NewDatabaseError("failed to delete task", err)
	}
	return tag.RowsAffected() > 0, nil
}
