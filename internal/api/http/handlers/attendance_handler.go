package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hrms-service/internal/api/dto"
	"github.com/spec-kit/hrms-service/internal/domain"
	"github.com/spec-kit/hrms-service/internal/service"
	apperrors "github.com/spec-kit/hrms-service/pkg/util"
)

// AttendanceHandler exposes attendance endpoints.
type AttendanceHandler struct {
	attendance *service.AttendanceService
}

// NewAttendanceHandler constructs handler.
func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendanceService}
}

// Mark handles POST /api/mark-attendance.
func (h *AttendanceHandler) Mark(c *fiber.Ctx) error {
	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.EmployeeID <= 0 || req.Status == "" {
		return apperrors.NewValidationError("employeeId and status required")
	}

	if err := h.attendance.Mark(c.UserContext(), req.EmployeeID, domain.AttendanceStatus(req.Status)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Attendance marked successfully"})
}

// List handles GET /api/attendance/:employeeId.
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	employeeID, err := parseIDParam(c, "employeeId")
	if err != nil {
		return err
	}

	records, err := h.attendance.ListByEmployee(c.UserContext(), employeeID)
	if err != nil {
		return err
	}
	resp := make([]dto.AttendanceResponse, 0, len(records))
	for _, record := range records {
		resp = append(resp, dto.AttendanceResponse{
			Date:        record.Date,
			Status:      string(record.Status),
			CheckInTime: record.CheckInTime,
		})
	}
	return c.JSON(resp)
}
