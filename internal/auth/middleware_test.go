package auth_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/port-russell/marina-service/internal/auth"
	"github.com/port-russell/marina-service/internal/testutil"
)

func TestMiddleware_MissingToken(t *testing.T) {
	ts := testutil.NewTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/catways", nil)
	resp, err := ts.App.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `"token_required"`, string(body))
}

func TestMiddleware_InvalidToken(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name    string
		prepare func(req *http.Request)
	}{
		{
			name: "garbage cookie",
			prepare: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: auth.TokenCookie, Value: "garbage"})
			},
		},
		{
			name: "garbage bearer header",
			prepare: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer garbage")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/catways", nil)
			tt.prepare(req)

			resp, err := ts.App.Test(req, -1)
			require.NoError(t, err)

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)
			assert.JSONEq(t, `"token_not_valid"`, string(body))
		})
	}
}

func TestMiddleware_ValidCookieRefreshesToken(t *testing.T) {
	ts := testutil.NewTestServer(t)
	user := ts.SeedAccount(t, "Alice", "alice@example.com", "secret")
	cookie := ts.LoginCookie(t, user)

	req := httptest.NewRequest(http.MethodGet, "/catways", nil)
	req.AddCookie(cookie)

	resp, err := ts.App.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	refreshed := resp.Header.Get("Authorization")
	require.True(t, strings.HasPrefix(refreshed, "Bearer "))

	claims, err := ts.Tokens.ParseToken(strings.TrimPrefix(refreshed, "Bearer "))
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.User.ID)
	assert.Equal(t, user.Email, claims.User.Email)
}

func TestMiddleware_BearerHeaderAccepted(t *testing.T) {
	ts := testutil.NewTestServer(t)
	user := ts.SeedAccount(t, "Alice", "alice@example.com", "secret")
	cookie := ts.LoginCookie(t, user)

	req := httptest.NewRequest(http.MethodGet, "/catways", nil)
	req.Header.Set("Authorization", "Bearer "+cookie.Value)

	resp, err := ts.App.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
