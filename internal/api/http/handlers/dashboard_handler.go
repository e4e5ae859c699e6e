package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/port-russell/marina-service/internal/auth"
	"github.com/port-russell/marina-service/internal/service"
	apperrors "github.com/port-russell/marina-service/pkg/util"
)

// DashboardHandler renders the admin views and proxies every mutation back
// through the JSON API with the caller's token.
type DashboardHandler struct {
	dashboard *service.DashboardService
	bookings  *service.BookingService
	api       *service.APIClient
	logger    *zap.Logger
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboard *service.DashboardService, bookings *service.BookingService, api *service.APIClient, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, bookings: bookings, api: api, logger: logger}
}

// Dashboard handles GET /tableau-de-bord.
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	data, err := h.dashboard.Overview(c.Context())
	if err != nil {
		return err
	}
	return c.Render("dashboard", fiber.Map{
		"Title":    "Tableau de bord",
		"Users":    data.Users,
		"Catways":  data.Catways,
		"Bookings": data.Bookings,
		"CatwayID": data.CatwayID,
	})
}

// UpdateUserForm handles POST /tableau-de-bord/updateUser and renders the
// edit form for the selected account.
func (h *DashboardHandler) UpdateUserForm(c *fiber.Ctx) error {
	user, err := h.dashboard.UserForEdit(c.Context(), c.FormValue("user"))
	if err != nil {
		return err
	}
	return c.Render("update_user", fiber.Map{
		"Title": "Update user",
		"User":  user,
	})
}

// UpdateUser handles POST /tableau-de-bord/updateUser/:id by proxying a
// PATCH to the API.
func (h *DashboardHandler) UpdateUser(c *fiber.Ctx) error {
	token, err := h.requireToken(c)
	if err != nil {
		return err
	}

	body := map[string]string{
		"name":     c.FormValue("name"),
		"email":    c.FormValue("email"),
		"password": c.FormValue("password"),
	}
	if err := h.api.UpdateUser(c.Context(), token, c.Params("id"), body); err != nil {
		return h.proxyFailure(c, "update user", err)
	}
	return c.Redirect(dashboardPath)
}

// DeleteUser handles GET /tableau-de-bord/deleteUser?user=<id> by proxying
// a DELETE to the API.
func (h *DashboardHandler) DeleteUser(c *fiber.Ctx) error {
	token, err := h.requireToken(c)
	if err != nil {
		return err
	}

	if err := h.api.DeleteUser(c.Context(), token, c.Query("user")); err != nil {
		return h.proxyFailure(c, "delete user", err)
	}
	return c.Redirect(dashboardPath)
}

// UpdateCatwayForm handles GET /tableau-de-bord/updateCatway/:id and
// renders the edit form for the selected berth.
func (h *DashboardHandler) UpdateCatwayForm(c *fiber.Ctx) error {
	catway, err := h.dashboard.CatwayForEdit(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.Render("update_catway", fiber.Map{
		"Title":  "Update Catway",
		"Catway": catway,
	})
}

// UpdateCatway handles POST /tableau-de-bord/updateCatway/:id by proxying a
// PATCH carrying the new state to the API.
func (h *DashboardHandler) UpdateCatway(c *fiber.Ctx) error {
	token, err := h.requireToken(c)
	if err != nil {
		return err
	}

	body := map[string]string{
		"catwayState": c.FormValue("catwayState"),
	}
	if err := h.api.UpdateCatway(c.Context(), token, c.Params("id"), body); err != nil {
		return h.proxyFailure(c, "update catway", err)
	}
	return c.Redirect(dashboardPath)
}

// DeleteCatway handles GET /tableau-de-bord/deleteCatway/:id by proxying a
// DELETE to the API.
func (h *DashboardHandler) DeleteCatway(c *fiber.Ctx) error {
	token, err := h.requireToken(c)
	if err != nil {
		return err
	}

	if err := h.api.DeleteCatway(c.Context(), token, c.Params("id")); err != nil {
		return h.proxyFailure(c, "delete catway", err)
	}
	return c.Redirect(dashboardPath)
}

// AddBooking handles POST /tableau-de-bord/addBooking by proxying the form
// to the reservation endpoint of the catway selected in the form.
func (h *DashboardHandler) AddBooking(c *fiber.Ctx) error {
	token, err := h.requireToken(c)
	if err != nil {
		return err
	}

	catwayID := c.FormValue("catway")
	body := map[string]string{
		"bookingId":  c.FormValue("bookingId"),
		"clientName": c.FormValue("clientName"),
		"boatName":   c.FormValue("boatName"),
		"checkIn":    c.FormValue("checkIn"),
		"checkOut":   c.FormValue("checkOut"),
	}
	if err := h.api.AddBooking(c.Context(), token, catwayID, body); err != nil {
		return h.proxyFailure(c, "add booking", err)
	}
	return c.Redirect(dashboardPath)
}

// BookingInfo handles GET /tableau-de-bord/getBookingInfo/:id. Dashboard
// rows only know the booking record id; the canonical reservation URL needs
// the catway owning its number, so resolve both and redirect.
func (h *DashboardHandler) BookingInfo(c *fiber.Ctx) error {
	booking, catway, err := h.bookings.Locate(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.NewInternal(err)
	}
	return c.Redirect(fmt.Sprintf("/catways/%s/reservations/%s", catway.ID, booking.ID))
}

// DeleteBooking handles GET /tableau-de-bord/deleteBooking/:id by resolving
// the booking's catway and proxying a DELETE to the API.
func (h *DashboardHandler) DeleteBooking(c *fiber.Ctx) error {
	token, err := h.requireToken(c)
	if err != nil {
		return err
	}

	booking, catway, err := h.bookings.Locate(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.NewInternal(err)
	}

	if err := h.api.DeleteBooking(c.Context(), token, catway.ID, booking.ID); err != nil {
		return h.proxyFailure(c, "delete booking", err)
	}
	return c.Redirect(dashboardPath)
}

// requireToken answers 401 before any outbound call when the session cookie
// is missing.
func (h *DashboardHandler) requireToken(c *fiber.Ctx) (string, error) {
	token := c.Cookies(auth.TokenCookie)
	if token == "" {
		return "", apperrors.NewMessage(http.StatusUnauthorized, "Unauthorized: Missing authorization token", nil)
	}
	return token, nil
}

// proxyFailure relays downstream failures as-is and collapses transport
// errors to a generic 500, logging the cause.
func (h *DashboardHandler) proxyFailure(c *fiber.Ctx, op string, err error) error {
	if httpErr, ok := apperrors.AsHTTPError(err); ok && httpErr.RawBody != nil {
		return err
	}
	h.logger.Error("proxy call failed", zap.String("op", op), zap.Error(err))
	return err
}
