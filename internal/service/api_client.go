package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "github.com/port-russell/marina-service/pkg/util"
)

// APIClient re-issues dashboard mutations as HTTP calls against the JSON
// API, forwarding the caller's token as a bearer credential. Downstream
// failures relay their status and body; transport failures collapse to a
// generic 500.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a client for the given API base URL.
func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &APIClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// UpdateUser proxies PATCH /users/:id.
func (c *APIClient) UpdateUser(ctx context.Context, token, userID string, body map[string]string) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/users/%s", userID), token, body)
}

// DeleteUser proxies DELETE /users/:id.
func (c *APIClient) DeleteUser(ctx context.Context, token, userID string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%s", userID), token, nil)
}

// UpdateCatway proxies PATCH /catways/:id.
func (c *APIClient) UpdateCatway(ctx context.Context, token, catwayID string, body map[string]string) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/catways/%s", catwayID), token, body)
}

// DeleteCatway proxies DELETE /catways/:id.
func (c *APIClient) DeleteCatway(ctx context.Context, token, catwayID string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/catways/%s", catwayID), token, nil)
}

// AddBooking proxies POST /catways/:id/reservations.
func (c *APIClient) AddBooking(ctx context.Context, token, catwayID string, body map[string]string) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/catways/%s/reservations", catwayID), token, body)
}

// DeleteBooking proxies DELETE /catways/:id/reservations/:idReservation.
func (c *APIClient) DeleteBooking(ctx context.Context, token, catwayID, bookingID string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/catways/%s/reservations/%s", catwayID, bookingID), token, nil)
}

func (c *APIClient) do(ctx context.Context, method, path, token string, body map[string]string) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperrors.NewInternal(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	remoteBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	return apperrors.NewRemote(resp.StatusCode, remoteBody)
}
