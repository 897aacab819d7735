package holiday

import (
	"context"
	"fmt"

	"github.com/staffhub-hr/workforce-backend-go/internal/domain/holiday"
	"github.com/staffhub-hr/workforce-backend-go/internal/pkg/validator"
)

// HolidayService is thin CRUD over the holiday calendar; no invariants
// beyond input validation.
type HolidayService interface {
	Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error)
	List(ctx context.Context) ([]holiday.HolidayResponse, error)
	Update(ctx context.Context, req holiday.UpdateHolidayRequest) error
	Delete(ctx context.Context, id string) error
}

type HolidayServiceImpl struct {
	holiday.HolidayRepository
}

func NewHolidayService(holidayRepository holiday.HolidayRepository) HolidayService {
	return &HolidayServiceImpl{HolidayRepository: holidayRepository}
}

// Create implements HolidayService.
func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	created, err := s.HolidayRepository.Create(ctx, holiday.Holiday{
		Name:        req.Name,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	return toHolidayResponse(created), nil
}

// List implements HolidayService.
func (s *HolidayServiceImpl) List(ctx context.Context) ([]holiday.HolidayResponse, error) {
	holidays, err := s.HolidayRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, toHolidayResponse(h))
	}
	return responses, nil
}

// Update implements HolidayService.
func (s *HolidayServiceImpl) Update(ctx context.Context, req holiday.UpdateHolidayRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	date, _ := validator.IsValidDate(req.Date)
	return s.HolidayRepository.Update(ctx, holiday.Holiday{
		ID:          req.ID,
		Name:        req.Name,
		Date:        date,
		Description: req.Description,
	})
}

// Delete implements HolidayService.
func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	return s.HolidayRepository.Delete(ctx, id)
}

func toHolidayResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		Date:        h.Date.Format(validator.DateLayout),
		Description: h.Description,
	}
}
