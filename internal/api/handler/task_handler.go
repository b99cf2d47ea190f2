package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/teamtrack/task-tracker/internal/api/metrics"
	"github.com/teamtrack/task-tracker/internal/core/domain"
	"github.com/teamtrack/task-tracker/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// List returns a filtered page of tasks.
//
// @Summary      List tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        page         query     int     false  "Page number (default 1)"
// @Param        per_page     query     int     false  "Items per page (default 20, max 100)"
// @Param        status       query     string  false  "Filter by status"
// @Param        urgency      query     string  false  "Filter by urgency"
// @Param        tester_id    query     string  false  "Filter by assigned tester"
// @Param        assigned_by  query     string  false  "Filter by creator"
// @Success      200          {array}   taskSummaryResponse
// @Failure      400          {object}  errorResponse
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var filter ports.TaskFilter
	if raw := c.QueryParam("status"); raw != "" {
		status, err := domain.ParseTaskStatus(raw)
		if err != nil {
			return err
		}
		filter.Status = &status
	}
	if raw := c.QueryParam("urgency"); raw != "" {
		urgency, err := domain.ParseTaskUrgency(raw)
		if err != nil {
			return err
		}
		filter.Urgency = &urgency
	}
	if raw := c.QueryParam("tester_id"); raw != "" {
		filter.TesterID = &raw
	}
	if raw := c.QueryParam("assigned_by"); raw != "" {
		filter.AssignedBy = &raw
	}

	tasks, err := h.service.List(c.Request().Context(), ident, ports.ListTasksInput{
		Filter:  filter,
		Page:    queryInt(c, "page", 1),
		PerPage: queryInt(c, "per_page", defaultPerPage),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newTaskSummaries(tasks))
}

// Get returns a single task with resolved user names.
//
// @Summary      Get a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task ID"
// @Success      200  {object}  taskResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	detail, err := h.service.Get(c.Request().Context(), ident, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newTaskResponse(detail))
}

// Create opens a new task with the caller as creator.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  taskResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.CreateTaskInput{
		Title:              req.Title,
		Description:        req.Description,
		TesterID:           req.TesterID,
		AcceptanceCriteria: req.AcceptanceCriteria,
		EvaluationCriteria: req.EvaluationCriteria,
		Comment:            req.Comment,
	}
	if req.Urgency != nil {
		urgency, err := domain.ParseTaskUrgency(*req.Urgency)
		if err != nil {
			return err
		}
		in.Urgency = &urgency
	}

	detail, err := h.service.Create(c.Request().Context(), ident, in)
	if err != nil {
		return err
	}

	metrics.TasksCreatedTotal.WithLabelValues(string(detail.Task.Urgency)).Inc()
	return c.JSON(http.StatusCreated, newTaskResponse(detail))
}

// Update applies a partial update to a task.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Task ID"
// @Param        body  body      updateTaskRequest  true  "Fields to update"
// @Success      200   {object}  taskResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.UpdateTaskInput{
		Title:              req.Title,
		Description:        req.Description,
		TesterID:           req.TesterID,
		AcceptanceCriteria: req.AcceptanceCriteria,
		EvaluationCriteria: req.EvaluationCriteria,
		Comment:            req.Comment,
	}
	if req.Status != nil {
		status, err := domain.ParseTaskStatus(*req.Status)
		if err != nil {
			return err
		}
		in.Status = &status
	}
	if req.Urgency != nil {
		urgency, err := domain.ParseTaskUrgency(*req.Urgency)
		if err != nil {
			return err
		}
		in.Urgency = &urgency
	}

	detail, err := h.service.Update(c.Request().Context(), ident, c.Param("id"), in)
	if err != nil {
		return err
	}

	metrics.TasksUpdatedTotal.WithLabelValues(string(detail.Task.Status)).Inc()
	return c.JSON(http.StatusOK, newTaskResponse(detail))
}

// Delete removes a task.
//
// @Summary      Delete a task
// @Tags         tasks
// @Security     BearerAuth
// @Param        id  path  string  true  "Task ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), ident, c.Param("id")); err != nil {
		return err
	}

	metrics.TasksDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// EmployeeStats returns per-tester task counts for every non-admin user.
//
// @Summary      Employee statistics
// @Tags         statistics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.EmployeeStatsRow
// @Failure      403  {object}  errorResponse
// @Router       /api/statistics/employees [get]
func (h *TaskHandler) EmployeeStats(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	rows, err := h.service.EmployeeStats(c.Request().Context(), ident)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}
