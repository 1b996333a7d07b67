package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hrms-service/internal/api/dto"
	"github.com/spec-kit/hrms-service/internal/domain"
	"github.com/spec-kit/hrms-service/internal/service"
	apperrors "github.com/spec-kit/hrms-service/pkg/util"
)

// PayrollHandler exposes payroll endpoints.
type PayrollHandler struct {
	payroll *service.PayrollService
}

// NewPayrollHandler constructs handler.
func NewPayrollHandler(payrollService *service.PayrollService) *PayrollHandler {
	return &PayrollHandler{payroll: payrollService}
}

// Save handles POST /api/payroll.
func (h *PayrollHandler) Save(c *fiber.Ctx) error {
	var req dto.PayrollSaveRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.EmployeeID <= 0 {
		return apperrors.NewValidationError("employeeId required")
	}
	if req.BasicSalary < 0 || req.Allowances < 0 || req.Deductions < 0 {
		return apperrors.NewValidationError("payroll amounts must not be negative")
	}

	if _, err := h.payroll.Save(c.UserContext(), service.PayrollInput{
		EmployeeID:  req.EmployeeID,
		BasicSalary: req.BasicSalary,
		Allowances:  req.Allowances,
		Deductions:  req.Deductions,
	}); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Payroll saved successfully"})
}

// Get handles GET /api/payroll/:employeeId.
func (h *PayrollHandler) Get(c *fiber.Ctx) error {
	employeeID, err := parseIDParam(c, "employeeId")
	if err != nil {
		return err
	}

	payroll, err := h.payroll.GetByEmployee(c.UserContext(), employeeID)
	if err != nil {
		return err
	}
	return c.JSON(payrollResponse(payroll))
}

func payrollResponse(p *domain.Payroll) dto.PayrollResponse {
	return dto.PayrollResponse{
		EmployeeID:  p.EmployeeID,
		BasicSalary: p.BasicSalary,
		Allowances:  p.Allowances,
		Deductions:  p.Deductions,
		NetSalary:   p.NetSalary,
		UpdatedAt:   p.UpdatedAt,
	}
}
