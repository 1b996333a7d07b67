package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hrms-service/internal/api/dto"
	"github.com/spec-kit/hrms-service/internal/auth"
	"github.com/spec-kit/hrms-service/internal/domain"
	"github.com/spec-kit/hrms-service/internal/service"
	apperrors "github.com/spec-kit/hrms-service/pkg/util"
)

// TasksHandler exposes task assignment endpoints.
type TasksHandler struct {
	tasks *service.TaskService
}

// NewTasksHandler constructs handler.
func NewTasksHandler(taskService *service.TaskService) *TasksHandler {
	return &TasksHandler{tasks: taskService}
}

// Assign handles POST /api/tasks.
func (h *TasksHandler) Assign(c *fiber.Ctx) error {
	var req dto.TaskAssignRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.EmployeeID <= 0 || req.Title == "" {
		return apperrors.NewValidationError("employeeId and title required")
	}

	task, err := h.tasks.Assign(c.UserContext(), service.AssignInput{
		EmployeeID:  req.EmployeeID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(taskResponse(task))
}

// List handles GET /api/tasks/:employeeId.
func (h *TasksHandler) List(c *fiber.Ctx) error {
	employeeID, err := parseIDParam(c, "employeeId")
	if err != nil {
		return err
	}

	tasks, err := h.tasks.ListByEmployee(c.UserContext(), employeeID)
	if err != nil {
		return err
	}
	resp := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		resp = append(resp, taskResponse(&tasks[i]))
	}
	return c.JSON(resp)
}

// UpdateStatus handles PUT /api/tasks/:id/status.
func (h *TasksHandler) UpdateStatus(c *fiber.Ctx) error {
	taskID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.TaskStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Status == "" {
		return apperrors.NewValidationError("status required")
	}

	if err := h.tasks.UpdateStatus(c.UserContext(), principal, taskID, domain.TaskStatus(req.Status)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Task status updated successfully"})
}

func taskResponse(t *domain.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:          t.ID,
		EmployeeID:  t.EmployeeID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
	}
}
