package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/port-russell/marina-service/pkg/util"
)

const identityKey = "auth_identity"

// TokenCookie is the cookie carrying the session token.
const TokenCookie = "token"

// Identity is the authenticated caller attached to the request.
type Identity struct {
	UserID string
	Name   string
	Email  string
}

// Middleware validates the session token carried in the token cookie or the
// Authorization header and re-issues a fresh token on every authorized
// request.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs the middleware.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handle enforces authentication for protected routes. A missing token
// answers 401 token_required, an invalid or expired one 401 token_not_valid.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	token := c.Cookies(TokenCookie)
	if token == "" {
		token = c.Get(fiber.HeaderAuthorization)
	}
	if after, ok := strings.CutPrefix(token, "Bearer "); ok {
		token = after
	}

	if token == "" {
		return apperrors.NewUnauthorized("token_required")
	}

	claims, err := m.tokens.ParseToken(token)
	if err != nil {
		return apperrors.NewUnauthorized("token_not_valid")
	}

	// Rolling refresh: every authorized request extends the session by a
	// fixed window, regardless of remaining validity.
	refreshed, _, err := m.tokens.GenerateRefreshToken(claims.User)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	c.Set(fiber.HeaderAuthorization, "Bearer "+refreshed)

	c.Locals(identityKey, Identity{
		UserID: claims.User.ID,
		Name:   claims.User.Name,
		Email:  claims.User.Email,
	})
	return c.Next()
}

// IdentityFromContext retrieves the authenticated caller.
func IdentityFromContext(c *fiber.Ctx) (Identity, bool) {
	identity, ok := c.Locals(identityKey).(Identity)
	return identity, ok
}
