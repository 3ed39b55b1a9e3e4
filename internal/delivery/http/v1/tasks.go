package v1

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-services/internal/models"
	"github.com/adanyl0v/go-task-services/internal/services"
)

type taskResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Username    string `json:"username"`
}

func newTaskResponse(task *models.Task) taskResponse {
	return taskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		Username:    task.Owner,
	}
}

type createTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	username, ok := UsernameFromContext(c)
	if !ok {
		h.logger.Error().Msg("no username found in context")
		abort(c, newUnauthorizedError(msgAuthorizationMissing))
		return
	}

	var req createTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(err.Error()))
		return
	}

	task, err := h.tasks.CreateTask(c, services.CreateTaskParams{
		Owner:       username,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		h.handleTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newTaskResponse(task))
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	username, ok := UsernameFromContext(c)
	if !ok {
		h.logger.Error().Msg("no username found in context")
		abort(c, newUnauthorizedError(msgAuthorizationMissing))
		return
	}

	tasks, err := h.tasks.GetTasksByOwner(c, username)
	if err != nil {
		h.handleTaskError(c, err)
		return
	}

	response := make([]taskResponse, len(tasks))
	for i, task := range tasks {
		response[i] = newTaskResponse(task)
	}
	c.JSON(http.StatusOK, response)
}

// updateTaskRequest has no id or username fields, so values sent for them
// are dropped during binding.
type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	username, ok := UsernameFromContext(c)
	if !ok {
		h.logger.Error().Msg("no username found in context")
		abort(c, newUnauthorizedError(msgAuthorizationMissing))
		return
	}

	taskID, ok := h.taskIDParam(c)
	if !ok {
		return
	}

	var req updateTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	task, err := h.tasks.UpdateTask(c, services.UpdateTaskParams{
		ID:    taskID,
		Owner: username,
		Patch: models.TaskPatch{
			Title:       req.Title,
			Description: req.Description,
			Completed:   req.Completed,
		},
	})
	if err != nil {
		h.handleTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	username, ok := UsernameFromContext(c)
	if !ok {
		h.logger.Error().Msg("no username found in context")
		abort(c, newUnauthorizedError(msgAuthorizationMissing))
		return
	}

	taskID, ok := h.taskIDParam(c)
	if !ok {
		return
	}

	err := h.tasks.DeleteTask(c, services.DeleteTaskParams{
		ID:    taskID,
		Owner: username,
	})
	if err != nil {
		h.handleTaskError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// taskIDParam parses the :id parameter. An id that is not a number can't
// match any task, so it is reported as not found.
func (h *handlerImpl) taskIDParam(c *gin.Context) (int64, bool) {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.logger.Error().
			Str("id", c.Param("id")).
			Msg("invalid task id")
		abort(c, newNotFoundError(msgTaskNotFound))
		return 0, false
	}
	return taskID, true
}

func (h *handlerImpl) handleTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		abort(c, newBadRequestError(err.Error()))
	case errors.Is(err, services.ErrTaskNotFound):
		abort(c, newNotFoundError(msgTaskNotFound))
	default:
		abort(c, newStatusTextError(http.StatusInternalServerError))
	}
}
