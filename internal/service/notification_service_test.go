package service_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/port-russell/marina-service/internal/events"
	"github.com/port-russell/marina-service/internal/service"
)

func TestNotificationService_DeliversWebhook(t *testing.T) {
	var (
		mu       sync.Mutex
		received []events.Event
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var event events.Event
		require.NoError(t, json.Unmarshal(body, &event))
		mu.Lock()
		received = append(received, event)
		mu.Unlock()
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	dispatcher := events.NewInMemoryDispatcher()
	service.NewNotificationService(dispatcher, zap.NewNop(), server.URL).RegisterHandlers()

	require.NoError(t, dispatcher.Publish(context.Background(), events.NewEvent(events.EventUserCreated, "u-1", map[string]any{"email": "alice@example.com"})))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 1)
	assert.Equal(t, events.EventUserCreated, received[0].Type)
	assert.Equal(t, "u-1", received[0].ResourceID)
}

func TestNotificationService_DeliveryFailureNeverFailsPublish(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	service.NewNotificationService(dispatcher, zap.NewNop(), "http://127.0.0.1:1").RegisterHandlers()

	assert.NoError(t, dispatcher.Publish(context.Background(), events.NewEvent(events.EventCatwayDeleted, "c-1", nil)))
}
