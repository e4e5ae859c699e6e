package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/port-russell/marina-service/internal/api/dto"
	"github.com/port-russell/marina-service/internal/domain"
	"github.com/port-russell/marina-service/internal/events"
	"github.com/port-russell/marina-service/internal/repository"
	apperrors "github.com/port-russell/marina-service/pkg/util"
)

// CatwayService coordinates berth CRUD.
type CatwayService struct {
	catways    repository.CatwayRepository
	dispatcher events.Dispatcher
}

// NewCatwayService builds the service.
func NewCatwayService(catways repository.CatwayRepository, dispatcher events.Dispatcher) *CatwayService {
	return &CatwayService{catways: catways, dispatcher: dispatcher}
}

// GetAll lists every berth.
func (s *CatwayService) GetAll(ctx context.Context) ([]domain.Catway, error) {
	catways, err := s.catways.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStoreFailure(err)
	}
	return catways, nil
}

// GetByID loads one berth.
func (s *CatwayService) GetByID(ctx context.Context, id string) (*domain.Catway, error) {
	catway, err := s.catways.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("catway-not-found")
		}
		return nil, apperrors.NewStoreFailure(err)
	}
	return catway, nil
}

// Create persists a new berth; the type arrives already case-normalized.
func (s *CatwayService) Create(ctx context.Context, in dto.CatwayCreate) (*domain.Catway, error) {
	catway := &domain.Catway{
		CatwayNumber: in.CatwayNumber,
		Type:         in.Type,
		CatwayState:  in.CatwayState,
	}
	if err := s.catways.Create(ctx, catway); err != nil {
		return nil, apperrors.NewStoreFailure(err)
	}

	_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventCatwayCreated, catway.ID, map[string]any{"catwayNumber": catway.CatwayNumber}))
	return catway, nil
}

// Update overwrites only the fields present in the patch.
func (s *CatwayService) Update(ctx context.Context, id string, patch dto.CatwayPatch) (*domain.Catway, error) {
	catway, err := s.catways.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("catway_not_found")
		}
		return nil, apperrors.NewStoreFailure(err)
	}

	if patch.CatwayNumber != nil {
		catway.CatwayNumber = *patch.CatwayNumber
	}
	if patch.Type != nil {
		catway.Type = *patch.Type
	}
	if patch.CatwayState != nil {
		catway.CatwayState = *patch.CatwayState
	}

	if err := s.catways.Update(ctx, catway); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("catway_not_found")
		}
		return nil, apperrors.NewStoreFailure(err)
	}
	return catway, nil
}

// Delete removes a berth. Deleting an already-absent id succeeds the same
// way.
func (s *CatwayService) Delete(ctx context.Context, id string) error {
	if err := s.catways.Delete(ctx, id); err != nil {
		return apperrors.NewStoreFailure(err)
	}
	_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventCatwayDeleted, id, nil))
	return nil
}
