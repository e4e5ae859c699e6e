package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/port-russell/marina-service/internal/domain"
	"github.com/port-russell/marina-service/internal/testutil"
)

func authedServer(t *testing.T) (*testutil.TestServer, *http.Cookie) {
	t.Helper()
	ts := testutil.NewTestServer(t)
	user := ts.SeedAccount(t, "Alice", "alice@example.com", "secret")
	return ts, ts.LoginCookie(t, user)
}

func TestCatwaysHandler_GetAllRendersListing(t *testing.T) {
	ts, cookie := authedServer(t)
	ts.Catways.Seed(domain.Catway{CatwayNumber: 4, Type: domain.CatwayTypeLong, CatwayState: "bon état"})

	req := httptest.NewRequest(http.MethodGet, "/catways", nil)
	req.AddCookie(cookie)

	resp, err := ts.App.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Embarquadaires")
	assert.Contains(t, string(body), "bon état")
}

func TestCatwaysHandler_Add(t *testing.T) {
	t.Run("type is case-normalized and the caller redirected", func(t *testing.T) {
		ts, cookie := authedServer(t)

		req := jsonRequest(http.MethodPost, "/catways", `{"catwayNumber":12,"type":"Long","catwayState":"ok"}`)
		req.AddCookie(cookie)

		resp, err := ts.App.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/tableau-de-bord", resp.Header.Get("Location"))

		stored, err := ts.Catways.GetByNumber(context.Background(), 12)
		require.NoError(t, err)
		assert.Equal(t, domain.CatwayTypeLong, stored.Type)
		assert.Equal(t, "ok", stored.CatwayState)
	})

	t.Run("invalid fields answer the ordered error list", func(t *testing.T) {
		ts, cookie := authedServer(t)

		req := jsonRequest(http.MethodPost, "/catways", `{"catwayNumber":"x","type":"bogus"}`)
		req.AddCookie(cookie)

		resp, err := ts.App.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body validationBody
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body.Errors, 2)
		assert.Equal(t, "catwayNumber", body.Errors[0].Field)
		assert.Equal(t, "type", body.Errors[1].Field)
	})
}

func TestCatwaysHandler_GetByID(t *testing.T) {
	ts, cookie := authedServer(t)
	catway := ts.Catways.Seed(domain.Catway{CatwayNumber: 7, Type: domain.CatwayTypeShort})

	t.Run("renders the detail page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/catways/"+catway.ID, nil)
		req.AddCookie(cookie)

		resp, err := ts.App.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "short")
	})

	t.Run("unknown id answers 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/catways/2f0c9f5e-9b1a-4f86-b7a4-000000000000", nil)
		req.AddCookie(cookie)

		resp, err := ts.App.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `"catway-not-found"`, string(body))
	})
}

func TestCatwaysHandler_Update(t *testing.T) {
	t.Run("zero catwayNumber is ignored", func(t *testing.T) {
		ts, cookie := authedServer(t)
		catway := ts.Catways.Seed(domain.Catway{CatwayNumber: 5, Type: domain.CatwayTypeLong})

		req := jsonRequest(http.MethodPatch, "/catways/"+catway.ID, `{"catwayNumber":0,"catwayState":"abîmé"}`)
		req.AddCookie(cookie)

		resp, err := ts.App.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		stored, err := ts.Catways.GetByID(context.Background(), catway.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, stored.CatwayNumber)
		assert.Equal(t, "abîmé", stored.CatwayState)
	})

	t.Run("unknown id answers the update sentinel", func(t *testing.T) {
		ts, cookie := authedServer(t)

		req := jsonRequest(http.MethodPatch, "/catways/2f0c9f5e-9b1a-4f86-b7a4-000000000000", `{"catwayState":"ok"}`)
		req.AddCookie(cookie)

		resp, err := ts.App.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `"catway_not_found"`, string(body))
	})
}

func TestCatwaysHandler_DeleteAlwaysAnswers204(t *testing.T) {
	ts, cookie := authedServer(t)
	catway := ts.Catways.Seed(domain.Catway{CatwayNumber: 1, Type: domain.CatwayTypeLong})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodDelete, "/catways/"+catway.ID, nil)
		req.AddCookie(cookie)

		resp, err := ts.App.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	}
}
