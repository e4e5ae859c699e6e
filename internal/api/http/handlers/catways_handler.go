package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/port-russell/marina-service/internal/api/dto"
	"github.com/port-russell/marina-service/internal/service"
	apperrors "github.com/port-russell/marina-service/pkg/util"
)

// CatwaysHandler exposes berth CRUD, rendering the listing and detail
// pages.
type CatwaysHandler struct {
	catways *service.CatwayService
}

// NewCatwaysHandler constructs handler.
func NewCatwaysHandler(catways *service.CatwayService) *CatwaysHandler {
	return &CatwaysHandler{catways: catways}
}

// GetAll handles GET /catways and renders the listing page.
func (h *CatwaysHandler) GetAll(c *fiber.Ctx) error {
	catways, err := h.catways.GetAll(c.Context())
	if err != nil {
		return err
	}
	return c.Render("catways", fiber.Map{
		"Title":   "Embarquadaires",
		"Catways": catways,
	})
}

// GetByID handles GET /catways/:id and renders the detail page.
func (h *CatwaysHandler) GetByID(c *fiber.Ctx) error {
	catway, err := h.catways.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.Render("catway_info", fiber.Map{
		"Title":  "Info sur l'embarquadaire",
		"Catway": catway,
	})
}

// Add handles POST /catways: validate, create, redirect to the dashboard.
func (h *CatwaysHandler) Add(c *fiber.Ctx) error {
	var req dto.CatwayCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	in, fieldErrs := req.Validate()
	if fieldErrs != nil {
		return apperrors.NewValidation(fieldErrs)
	}

	if _, err := h.catways.Create(c.Context(), in); err != nil {
		return err
	}
	return c.Redirect(dashboardPath)
}

// Update handles PATCH /catways/:id. Only supplied, non-blank fields
// overwrite.
func (h *CatwaysHandler) Update(c *fiber.Ctx) error {
	var req dto.CatwayUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	patch, fieldErrs := req.Validate()
	if fieldErrs != nil {
		return apperrors.NewValidation(fieldErrs)
	}

	catway, err := h.catways.Update(c.Context(), c.Params("id"), patch)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(catway)
}

// Delete handles DELETE /catways/:id. Always answers 204 delete_ok.
func (h *CatwaysHandler) Delete(c *fiber.Ctx) error {
	if err := h.catways.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.Status(http.StatusNoContent).JSON("delete_ok")
}
