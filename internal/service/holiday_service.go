package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hrms-service/internal/domain"
	"github.com/spec-kit/hrms-service/internal/repository"
	apperrors "github.com/spec-kit/hrms-service/pkg/util"
)

// HolidayService manages the company holiday list.
type HolidayService struct {
	holidays repository.HolidayRepository
}

// NewHolidayService builds the service.
func NewHolidayService(holidays repository.HolidayRepository) *HolidayService {
	return &HolidayService{holidays: holidays}
}

// List returns all holidays in date order.
func (s *HolidayService) List(ctx context.Context) ([]domain.Holiday, error) {
	holidays, err := s.holidays.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return holidays, nil
}

// Create adds a holiday.
func (s *HolidayService) Create(ctx context.Context, name string, date time.Time) (*domain.Holiday, error) {
	holiday := &domain.Holiday{Name: name, Date: date}
	if err := s.holidays.Create(ctx, holiday); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return holiday, nil
}

// Delete removes a holiday.
func (s *HolidayService) Delete(ctx context.Context, id int64) error {
	err := s.holidays.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("Holiday not found")
	}
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}
