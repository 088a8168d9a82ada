package tasks

// CreateTaskRequest represents the payload for creating a task.
// Status is optional and defaults to "todo" when omitted.
type CreateTaskRequest struct {
	Description string `json:"description" example:"buy milk"`
	Status      string `json:"status,omitempty" example:"todo"`
}

// UpdateTaskRequest represents a partial update. Pointer fields distinguish
// "not provided" from "provided as empty"; at least one field must be set.
type UpdateTaskRequest struct {
	Description *string `json:"description,omitempty" example:"buy oat milk"`
	Status      *string `json:"status,omitempty" example:"completed"`
}

// TaskListResponse wraps the task collection returned by the list endpoint.
type TaskListResponse struct {
	Tasks []Task `json:"tasks"`
}
