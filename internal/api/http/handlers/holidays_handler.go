package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hrms-service/internal/api/dto"
	"github.com/spec-kit/hrms-service/internal/service"
	apperrors "github.com/spec-kit/hrms-service/pkg/util"
)

// HolidaysHandler exposes holiday list endpoints.
type HolidaysHandler struct {
	holidays *service.HolidayService
}

// NewHolidaysHandler constructs handler.
func NewHolidaysHandler(holidayService *service.HolidayService) *HolidaysHandler {
	return &HolidaysHandler{holidays: holidayService}
}

// List handles GET /api/holidays.
func (h *HolidaysHandler) List(c *fiber.Ctx) error {
	holidays, err := h.holidays.List(c.UserContext())
	if err != nil {
		return err
	}
	resp := make([]dto.HolidayResponse, 0, len(holidays))
	for _, holiday := range holidays {
		resp = append(resp, dto.HolidayResponse{ID: holiday.ID, Name: holiday.Name, Date: holiday.Date})
	}
	return c.JSON(resp)
}

// Create handles POST /api/holidays.
func (h *HolidaysHandler) Create(c *fiber.Ctx) error {
	var req dto.HolidayCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Name == "" || req.Date == "" {
		return apperrors.NewValidationError("name and date required")
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return apperrors.NewValidationError("date must be YYYY-MM-DD")
	}

	holiday, err := h.holidays.Create(c.UserContext(), req.Name, date)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.HolidayResponse{ID: holiday.ID, Name: holiday.Name, Date: holiday.Date})
}

// Delete handles DELETE /api/holidays/:id.
func (h *HolidaysHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.holidays.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Holiday deleted successfully"})
}
