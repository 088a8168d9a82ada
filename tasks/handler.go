package tasks

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Bvqlz/Todo/apperror"
	"github.com/Bvqlz/Todo/auth"
)

// TaskHandler handles HTTP requests for tasks.
type TaskHandler struct {
	service *TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(service *TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// RegisterRoutes registers the task API routes on a chi router. The router is
// expected to already be wrapped in the session middleware; every handler
// assumes an authenticated user in the context.
func (h *TaskHandler) RegisterRoutes(router chi.Router) {
	router.Get("/", h.listTasks)
	router.Post("/", h.createTask)
	router.Get("/{id}", h.getTask)
	router.Put("/{id}", h.updateTask)
	router.Delete("/{id}", h.deleteTask)
}

// requestUserID pulls the authenticated user from the context. A miss here
// means the middleware was not applied, which is a wiring bug, but it is
// still answered with 401 rather than a panic.
func requestUserID(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("authentication required", nil))
		return 0, false
	}
	return userID, true
}

// taskIDParam parses the {id} route parameter.
func taskIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	taskID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		auth.WriteError(w, r, apperror.NewNotFoundError("task not found", nil))
		return 0, false
	}
	return taskID, true
}

// listTasks godoc
// @Summary List tasks
// @Description Returns all tasks owned by the authenticated user, ascending by id.
// @Tags Tasks
// @Produce json
// @Success 200 {object} tasks.TaskListResponse "Tasks"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /tasks [get]
func (h *TaskHandler) listTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	taskList, err := h.service.List(r.Context(), userID)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	auth.WriteJSON(w, http.StatusOK, TaskListResponse{Tasks: taskList})
}

// getTask godoc
// @Summary Get a task
// @Description Returns a single task by id, if owned by the authenticated user.
// @Tags Tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} tasks.Task "Task"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 404 {object} apperror.ErrorResponse "Not Found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /tasks/{id} [get]
func (h *TaskHandler) getTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	taskID, ok := taskIDParam(w, r)
	if !ok {
		return
	}

	task, err := h.service.Get(r.Context(), taskID, userID)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	auth.WriteJSON(w, http.StatusOK, task)
}

// createTask godoc
// @Summary Create a task
// @Description Creates a task for the authenticated user. Status defaults to "todo".
// @Tags Tasks
// @Accept json
// @Produce json
// @Param taskBody body tasks.CreateTaskRequest true "Task to create"
// @Success 200 {object} tasks.Task "Created task"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Missing description or invalid status"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /tasks [post]
func (h *TaskHandler) createTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
		return
	}
	defer r.Body.Close()

	if req.Description == "" {
		auth.WriteError(w, r, apperror.NewValidationError("description is required", nil))
		return
	}

	status := StatusTodo
	if req.Status != "" {
		parsed, err := ParseStatus(req.Status)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		status = parsed
	}

	task, err := h.service.Create(r.Context(), req.Description, status, userID)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	auth.WriteJSON(w, http.StatusOK, task)
}

// updateTask godoc
// @Summary Update a task
// @Description Applies a partial update (description and/or status) to a task owned by the authenticated user.
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param taskBody body tasks.UpdateTaskRequest true "Fields to update"
// @Success 200 {object} tasks.Task "Updated task"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - No fields or invalid status"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 404 {object} apperror.ErrorResponse "Not Found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /tasks/{id} [put]
func (h *TaskHandler) updateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	taskID, ok := taskIDParam(w, r)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
		return
	}
	defer r.Body.Close()

	if req.Description == nil && req.Status == nil {
		auth.WriteError(w, r, apperror.NewValidationError("no fields to update were provided (expected description and/or status)", nil))
		return
	}

	var status *Status
	if req.Status != nil {
		parsed, err := ParseStatus(*req.Status)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		status = &parsed
	}

	updated, err := h.service.Update(r.Context(), taskID, req.Description, status, userID)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	if !updated {
		auth.WriteError(w, r, apperror.NewNotFoundError("task not found", nil))
		return
	}

	// Re-read so the response reflects the row as stored, including the
	// fields this update did not touch.
	task, err := h.service.Get(r.Context(), taskID, userID)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	auth.WriteJSON(w, http.StatusOK, task)
}

// deleteTask godoc
// @Summary Delete a task
// @Description Deletes a task owned by the authenticated user.
// @Tags Tasks
// @Param id path int true "Task ID"
// @Success 204 "Deleted"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 404 {object} apperror.ErrorResponse "Not Found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /tasks/{id} [delete]
func (h *TaskHandler) deleteTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	taskID, ok := taskIDParam(w, r)
	if !ok {
		return
	}

	deleted, err := h.service.Delete(r.Context(), taskID, userID)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	if !deleted {
		auth.WriteError(w, r, apperror.NewNotFoundError("task not found", nil))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
