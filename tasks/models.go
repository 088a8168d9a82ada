// Package tasks implements the per-user to-do records: the status enum, the
// repository over the tasks table, and the HTTP handlers. Every query carries
// the owner's user ID in its WHERE clause, so a task that exists but belongs
// to someone else is indistinguishable from one that does not exist.
package tasks

import "github.com/Bvqlz/Todo/apperror"

// Status enumerates the lifecycle states of a task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "inprogress"
	StatusCompleted  Status = "completed"
)

// ParseStatus converts a wire string into a Status. Unknown values yield a
// validation error that names the accepted set; the offending input is not
// echoed back, so arbitrary client strings stay out of responses and logs.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusTodo, StatusInProgress, StatusCompleted:
		return Status(s), nil
	default:
		return "", apperror.NewValidationError("status must be one of: todo, inprogress, completed", nil)
	}
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// Task represents a to-do record owned by a single user. The owner is not
// serialized; clients only ever see their own tasks.
type Task struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Status      Status `json:"status"`
	UserID      int    `json:"-"`
}
