package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/bavaria-hr/attendance-backend-go/internal/domain/holiday"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{HolidayRepository: holidayRepo}
}

// Create implements holiday.HolidayService.
func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	created, err := s.HolidayRepository.Create(ctx, holiday.Holiday{
		Date:        date,
		Type:        holiday.Type(req.Type),
		Name:        req.Name,
		Description: req.Description,
		IsRecurring: req.IsRecurring,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	return mapToResponse(created), nil
}

// Get implements holiday.HolidayService.
func (s *HolidayServiceImpl) Get(ctx context.Context, id string) (holiday.HolidayResponse, error) {
	h, err := s.HolidayRepository.GetByID(ctx, id)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return mapToResponse(h), nil
}

// ListByYear implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListByYear(ctx context.Context, year int) ([]holiday.HolidayResponse, error) {
	holidays, err := s.HolidayRepository.ListByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, mapToResponse(h))
	}
	return responses, nil
}

// Update implements holiday.HolidayService.
func (s *HolidayServiceImpl) Update(ctx context.Context, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	h, err := s.HolidayRepository.GetByID(ctx, req.ID)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return holiday.HolidayResponse{}, fmt.Errorf("failed to parse date: %w", err)
		}
		h.Date = date
	}
	if req.Type != nil {
		h.Type = holiday.Type(*req.Type)
	}
	if req.Name != nil {
		h.Name = *req.Name
	}
	if req.Description != nil {
		h.Description = *req.Description
	}
	if req.IsRecurring != nil {
		h.IsRecurring = *req.IsRecurring
	}

	if err := s.HolidayRepository.Update(ctx, h); err != nil {
		return holiday.HolidayResponse{}, err
	}

	return mapToResponse(h), nil
}

// Delete implements holiday.HolidayService.
func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	return s.HolidayRepository.Delete(ctx, id)
}

// MonthSet implements holiday.HolidayService.
func (s *HolidayServiceImpl) MonthSet(ctx context.Context, year int, month int) (holiday.MonthResponse, error) {
	persisted, err := s.HolidayRepository.ListForMonth(ctx, year, month)
	if err != nil {
		return holiday.MonthResponse{}, err
	}

	return holiday.MonthResponse{
		Year:           year,
		Month:          month,
		WeeklyRestDays: CountWeeklyRestDays(year, month),
		Holidays:       BuildMonthSet(year, month, persisted),
	}, nil
}

func mapToResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:          h.ID,
		Date:        h.Date.Format("2006-01-02"),
		Type:        string(h.Type),
		Name:        h.Name,
		Description: h.Description,
		IsRecurring: h.IsRecurring,
	}
}
