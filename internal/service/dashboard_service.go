package service

import (
	"context"

	"github.com/port-russell/marina-service/internal/domain"
	"github.com/port-russell/marina-service/internal/repository"
	apperrors "github.com/port-russell/marina-service/pkg/util"
)

// DashboardData aggregates everything the dashboard view displays.
// CatwayID points at the first catway and anchors the reservation links.
type DashboardData struct {
	Users    []domain.User
	Catways  []domain.Catway
	Bookings []domain.Booking
	CatwayID string
}

// DashboardService assembles the aggregate listing. Reads go straight to
// the stores; mutations go through the APIClient instead.
type DashboardService struct {
	users    repository.UserRepository
	catways  repository.CatwayRepository
	bookings repository.BookingRepository
}

// NewDashboardService builds the service.
func NewDashboardService(users repository.UserRepository, catways repository.CatwayRepository, bookings repository.BookingRepository) *DashboardService {
	return &DashboardService{users: users, catways: catways, bookings: bookings}
}

// Overview loads all three resource listings plus the anchor catway id.
// Any failure, including an empty catways table, answers 500.
func (s *DashboardService) Overview(ctx context.Context) (*DashboardData, error) {
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	catways, err := s.catways.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	bookings, err := s.bookings.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	first, err := s.catways.GetFirst(ctx)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	return &DashboardData{
		Users:    users,
		Catways:  catways,
		Bookings: bookings,
		CatwayID: first.ID,
	}, nil
}

// UserForEdit loads the account shown in the edit form.
func (s *DashboardService) UserForEdit(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return user, nil
}

// CatwayForEdit loads the berth shown in the edit form.
func (s *DashboardService) CatwayForEdit(ctx context.Context, id string) (*domain.Catway, error) {
	catway, err := s.catways.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return catway, nil
}
