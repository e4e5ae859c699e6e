package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/port-russell/marina-service/internal/api/dto"
	"github.com/port-russell/marina-service/internal/service"
	apperrors "github.com/port-russell/marina-service/pkg/util"
)

// BookingsHandler exposes reservation CRUD nested under a catway.
type BookingsHandler struct {
	bookings *service.BookingService
}

// NewBookingsHandler constructs handler.
func NewBookingsHandler(bookings *service.BookingService) *BookingsHandler {
	return &BookingsHandler{bookings: bookings}
}

// GetAll handles GET /catways/:id/reservations and renders the listing.
func (h *BookingsHandler) GetAll(c *fiber.Ctx) error {
	bookings, catway, err := h.bookings.GetAll(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.Render("booking", fiber.Map{
		"Title":    "Réservations",
		"Bookings": bookings,
		"Catway":   catway,
	})
}

// GetByID handles GET /catways/:id/reservations/:idReservation and renders
// the detail page. The catway must resolve before the booking is looked up.
func (h *BookingsHandler) GetByID(c *fiber.Ctx) error {
	booking, catway, err := h.bookings.GetByID(c.Context(), c.Params("id"), c.Params("idReservation"))
	if err != nil {
		return err
	}
	return c.Render("booking_info", fiber.Map{
		"Title":   "Information réservation",
		"Booking": booking,
		"Catway":  catway,
	})
}

// Add handles POST /catways/:id/reservations and answers 201 with the
// created record. The catwayNumber always comes from the parent catway.
func (h *BookingsHandler) Add(c *fiber.Ctx) error {
	var req dto.BookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	in, fieldErrs := req.Validate()
	if fieldErrs != nil {
		return apperrors.NewValidation(fieldErrs)
	}

	booking, err := h.bookings.Create(c.Context(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(booking)
}

// Update handles PATCH /catways/:id/reservations/:idReservation.
func (h *BookingsHandler) Update(c *fiber.Ctx) error {
	var req dto.BookingUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	patch, fieldErrs := req.Validate()
	if fieldErrs != nil {
		return apperrors.NewValidation(fieldErrs)
	}

	booking, err := h.bookings.Update(c.Context(), c.Params("id"), c.Params("idReservation"), patch)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(booking)
}

// Delete handles DELETE /catways/:id/reservations/:idReservation. Always
// answers 204 delete_ok once the catway resolves.
func (h *BookingsHandler) Delete(c *fiber.Ctx) error {
	if err := h.bookings.Delete(c.Context(), c.Params("id"), c.Params("idReservation")); err != nil {
		return err
	}
	return c.Status(http.StatusNoContent).JSON("delete_ok")
}
