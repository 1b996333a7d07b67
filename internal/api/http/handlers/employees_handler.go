package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hrms-service/internal/api/dto"
	"github.com/spec-kit/hrms-service/internal/domain"
	"github.com/spec-kit/hrms-service/internal/service"
	apperrors "github.com/spec-kit/hrms-service/pkg/util"
)

// EmployeesHandler exposes employee record endpoints.
type EmployeesHandler struct {
	employees *service.EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employeeService *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{employees: employeeService}
}

// Register handles POST /api/employees/register.
func (h *EmployeesHandler) Register(c *fiber.Ctx) error {
	var req dto.EmployeeRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("firstName, lastName, email, password required")
	}

	employee, err := h.employees.Register(c.UserContext(), service.RegisterInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Password:   req.Password,
		Department: req.Department,
		Position:   req.Position,
		Salary:     req.Salary,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(employeeResponse(employee))
}

// List handles GET /api/employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	employees, err := h.employees.List(c.UserContext())
	if err != nil {
		return err
	}
	resp := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		resp = append(resp, employeeResponse(&employees[i]))
	}
	return c.JSON(resp)
}

// Get handles GET /api/employees/:id.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	employee, err := h.employees.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(employeeResponse(employee))
}

// Update handles PUT /api/employees/:employeeId.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "employeeId")
	if err != nil {
		return err
	}

	var req dto.EmployeeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		return apperrors.NewValidationError("firstName, lastName, email required")
	}

	if err := h.employees.Update(c.UserContext(), id, service.UpdateInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Department: req.Department,
		Position:   req.Position,
		Salary:     req.Salary,
	}); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Employee updated successfully"})
}

// Delete handles DELETE /api/employees/:employeeId.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "employeeId")
	if err != nil {
		return err
	}
	if err := h.employees.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Employee deleted successfully"})
}

func parseIDParam(c *fiber.Ctx, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid " + param)
	}
	return id, nil
}

func employeeResponse(e *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Email:      e.Email,
		Department: e.Department,
		Position:   e.Position,
		Salary:     e.Salary,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
