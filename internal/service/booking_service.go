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

// BookingService coordinates reservation CRUD. Every mutation resolves the
// parent catway from the URL first; the booking's catwayNumber always comes
// from that catway, never from caller input.
type BookingService struct {
	bookings   repository.BookingRepository
	catways    repository.CatwayRepository
	dispatcher events.Dispatcher
}

// NewBookingService builds the service.
func NewBookingService(bookings repository.BookingRepository, catways repository.CatwayRepository, dispatcher events.Dispatcher) *BookingService {
	return &BookingService{bookings: bookings, catways: catways, dispatcher: dispatcher}
}

// GetAll lists every reservation together with the catway named in the URL.
// An absent catway yields a nil catway, not an error; the listing renders
// regardless.
func (s *BookingService) GetAll(ctx context.Context, catwayID string) ([]domain.Booking, *domain.Catway, error) {
	bookings, err := s.bookings.GetAll(ctx)
	if err != nil {
		return nil, nil, apperrors.NewStoreFailure(err)
	}

	catway, err := s.catways.GetByID(ctx, catwayID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.NewStoreFailure(err)
		}
		catway = nil
	}
	return bookings, catway, nil
}

// GetByID loads one reservation. The parent catway must resolve first; the
// booking is not even looked up otherwise.
func (s *BookingService) GetByID(ctx context.Context, catwayID, bookingID string) (*domain.Booking, *domain.Catway, error) {
	catway, err := s.resolveCatway(ctx, catwayID)
	if err != nil {
		return nil, nil, err
	}

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.NewNotFound("booking_not_found")
		}
		return nil, nil, apperrors.NewStoreFailure(err)
	}
	return booking, catway, nil
}

// Create persists a new reservation under the catway named in the URL,
// copying its catwayNumber into the record.
func (s *BookingService) Create(ctx context.Context, catwayID string, in dto.BookingCreate) (*domain.Booking, error) {
	catway, err := s.resolveCatway(ctx, catwayID)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		BookingID:    in.BookingID,
		CatwayNumber: catway.CatwayNumber,
		ClientName:   in.ClientName,
		BoatName:     in.BoatName,
		CheckIn:      in.CheckIn,
		CheckOut:     in.CheckOut,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, apperrors.NewStoreFailure(err)
	}

	_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventBookingCreated, booking.ID, map[string]any{
		"bookingId":    booking.BookingID,
		"catwayNumber": booking.CatwayNumber,
	}))
	return booking, nil
}

// Update overwrites only the fields present in the patch. The catwayNumber
// is refreshed from the parent catway on every update.
func (s *BookingService) Update(ctx context.Context, catwayID, bookingID string, patch dto.BookingPatch) (*domain.Booking, error) {
	catway, err := s.resolveCatway(ctx, catwayID)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("booking_not_found")
		}
		return nil, apperrors.NewStoreFailure(err)
	}

	if patch.BookingID != nil {
		booking.BookingID = *patch.BookingID
	}
	if patch.ClientName != nil {
		booking.ClientName = *patch.ClientName
	}
	if patch.BoatName != nil {
		booking.BoatName = *patch.BoatName
	}
	if patch.CheckIn != nil {
		booking.CheckIn = *patch.CheckIn
	}
	if patch.CheckOut != nil {
		booking.CheckOut = *patch.CheckOut
	}
	booking.CatwayNumber = catway.CatwayNumber

	if err := s.bookings.Update(ctx, booking); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("booking_not_found")
		}
		return nil, apperrors.NewStoreFailure(err)
	}
	return booking, nil
}

// Delete removes a reservation after resolving the parent catway. Deleting
// an already-absent booking succeeds the same way.
func (s *BookingService) Delete(ctx context.Context, catwayID, bookingID string) error {
	if _, err := s.resolveCatway(ctx, catwayID); err != nil {
		return err
	}

	if err := s.bookings.Delete(ctx, bookingID); err != nil {
		return apperrors.NewStoreFailure(err)
	}
	_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventBookingDeleted, bookingID, nil))
	return nil
}

// Locate finds a reservation by record id and the catway owning its number.
// Dashboard links navigate through this indirection.
func (s *BookingService) Locate(ctx context.Context, bookingID string) (*domain.Booking, *domain.Catway, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}
	catway, err := s.catways.GetByNumber(ctx, booking.CatwayNumber)
	if err != nil {
		return nil, nil, err
	}
	return booking, catway, nil
}

func (s *BookingService) resolveCatway(ctx context.Context, catwayID string) (*domain.Catway, error) {
	catway, err := s.catways.GetByID(ctx, catwayID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("catway-not-found")
		}
		return nil, apperrors.NewStoreFailure(err)
	}
	return catway, nil
}
