package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/port-russell/marina-service/internal/api/dto"
	"github.com/port-russell/marina-service/internal/domain"
	"github.com/port-russell/marina-service/internal/events"
	"github.com/port-russell/marina-service/internal/service"
	"github.com/port-russell/marina-service/internal/testutil"
	apperrors "github.com/port-russell/marina-service/pkg/util"
)

func newBookingService(t *testing.T) (*service.BookingService, *testutil.FakeBookingRepo, *testutil.FakeCatwayRepo) {
	t.Helper()
	bookings := testutil.NewFakeBookingRepo()
	catways := testutil.NewFakeCatwayRepo()
	return service.NewBookingService(bookings, catways, events.NewInMemoryDispatcher()), bookings, catways
}

func TestBookingService_CreateCopiesCatwayNumber(t *testing.T) {
	svc, _, catways := newBookingService(t)
	catway := catways.Seed(domain.Catway{CatwayNumber: 7, Type: domain.CatwayTypeLong})

	booking, err := svc.Create(context.Background(), catway.ID, dto.BookingCreate{
		BookingID:  42,
		ClientName: "Jean Dupont",
		BoatName:   "La Sirène",
		CheckIn:    time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, 7, booking.CatwayNumber)
	assert.NotEmpty(t, booking.ID)
}

func TestBookingService_CreateUnknownCatwayAnswers404(t *testing.T) {
	svc, _, _ := newBookingService(t)

	_, err := svc.Create(context.Background(), "2f0c9f5e-9b1a-4f86-b7a4-000000000000", dto.BookingCreate{
		BookingID:  1,
		ClientName: "Jean Dupont",
		BoatName:   "La Sirène",
	})
	httpErr, ok := apperrors.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, 404, httpErr.Status)
	assert.Equal(t, "catway-not-found", httpErr.Payload)
}

func TestBookingService_UpdateRefreshesCatwayNumber(t *testing.T) {
	svc, bookings, catways := newBookingService(t)
	catway := catways.Seed(domain.Catway{CatwayNumber: 9, Type: domain.CatwayTypeShort})
	booking := bookings.Seed(domain.Booking{BookingID: 42, CatwayNumber: 3, ClientName: "Jean Dupont", BoatName: "La Sirène"})

	client := "Marie Curie"
	updated, err := svc.Update(context.Background(), catway.ID, booking.ID, dto.BookingPatch{ClientName: &client})
	require.NoError(t, err)

	assert.Equal(t, "Marie Curie", updated.ClientName)
	assert.Equal(t, 9, updated.CatwayNumber)
	assert.Equal(t, int64(42), updated.BookingID)
}

func TestBookingService_GetByIDResolvesCatwayFirst(t *testing.T) {
	svc, bookings, catways := newBookingService(t)
	booking := bookings.Seed(domain.Booking{BookingID: 42})

	t.Run("catway missing wins over booking present", func(t *testing.T) {
		_, _, err := svc.GetByID(context.Background(), "2f0c9f5e-9b1a-4f86-b7a4-000000000000", booking.ID)
		httpErr, ok := apperrors.AsHTTPError(err)
		require.True(t, ok)
		assert.Equal(t, "catway-not-found", httpErr.Payload)
	})

	t.Run("booking missing under a real catway", func(t *testing.T) {
		catway := catways.Seed(domain.Catway{CatwayNumber: 1, Type: domain.CatwayTypeLong})
		_, _, err := svc.GetByID(context.Background(), catway.ID, "2f0c9f5e-9b1a-4f86-b7a4-000000000000")
		httpErr, ok := apperrors.AsHTTPError(err)
		require.True(t, ok)
		assert.Equal(t, 404, httpErr.Status)
		assert.Equal(t, "booking_not_found", httpErr.Payload)
	})
}

func TestBookingService_GetAllToleratesMissingCatway(t *testing.T) {
	svc, bookings, _ := newBookingService(t)
	bookings.Seed(domain.Booking{BookingID: 1})
	bookings.Seed(domain.Booking{BookingID: 2})

	listed, catway, err := svc.GetAll(context.Background(), "2f0c9f5e-9b1a-4f86-b7a4-000000000000")
	require.NoError(t, err)
	assert.Nil(t, catway)
	assert.Len(t, listed, 2)
}

func TestBookingService_DeleteIsIdempotent(t *testing.T) {
	svc, bookings, catways := newBookingService(t)
	catway := catways.Seed(domain.Catway{CatwayNumber: 1, Type: domain.CatwayTypeLong})
	booking := bookings.Seed(domain.Booking{BookingID: 1, CatwayNumber: 1})

	require.NoError(t, svc.Delete(context.Background(), catway.ID, booking.ID))
	assert.NoError(t, svc.Delete(context.Background(), catway.ID, booking.ID))
}

func TestBookingService_Locate(t *testing.T) {
	svc, bookings, catways := newBookingService(t)
	catway := catways.Seed(domain.Catway{CatwayNumber: 5, Type: domain.CatwayTypeLong})
	booking := bookings.Seed(domain.Booking{BookingID: 42, CatwayNumber: 5})

	found, owner, err := svc.Locate(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, found.ID)
	assert.Equal(t, catway.ID, owner.ID)
}
