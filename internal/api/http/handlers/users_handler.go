package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/port-russell/marina-service/internal/api/dto"
	"github.com/port-russell/marina-service/internal/auth"
	"github.com/port-russell/marina-service/internal/service"
	apperrors "github.com/port-russell/marina-service/pkg/util"
)

const dashboardPath = "/tableau-de-bord"

// UsersHandler exposes account CRUD and authentication.
type UsersHandler struct {
	users  *service.UserService
	logger *zap.Logger
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *service.UserService, logger *zap.Logger) *UsersHandler {
	return &UsersHandler{users: users, logger: logger}
}

// GetByID handles GET /users/:id.
func (h *UsersHandler) GetByID(c *fiber.Ctx) error {
	user, err := h.users.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// Add handles POST /users: validate, create, redirect to the dashboard.
func (h *UsersHandler) Add(c *fiber.Ctx) error {
	var req dto.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	in, fieldErrs := req.Validate()
	if fieldErrs != nil {
		return apperrors.NewValidation(fieldErrs)
	}

	user, err := h.users.Create(c.Context(), in)
	if err != nil {
		return err
	}

	h.logger.Info("user created", zap.String("name", user.Name))
	return c.Redirect(dashboardPath)
}

// Update handles PATCH /users/:id. Only supplied, non-blank fields
// overwrite.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	patch, fieldErrs := req.Validate()
	if fieldErrs != nil {
		return apperrors.NewValidation(fieldErrs)
	}

	user, err := h.users.Update(c.Context(), c.Params("id"), patch)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(user)
}

// Delete handles DELETE /users/:id. Always answers 204 delete_ok, whether
// or not the record existed.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	if err := h.users.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.Status(http.StatusNoContent).JSON("delete_ok")
}

// Authenticate handles POST /users/authenticate. Success sets the httpOnly
// token cookie plus a bearer header and redirects to the dashboard.
func (h *UsersHandler) Authenticate(c *fiber.Ctx) error {
	var req dto.AuthenticateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	_, token, expiresAt, err := h.users.Authenticate(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     auth.TokenCookie,
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
	})
	c.Set(fiber.HeaderAuthorization, "Bearer "+token)
	return c.Redirect(dashboardPath)
}
