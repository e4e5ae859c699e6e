package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/port-russell/marina-service/internal/events"
)

// NotificationService observes resource lifecycle events. Every event is
// logged; when a webhook URL is configured the event is also posted there.
// Delivery failures never affect the originating request.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	webhookURL string
	httpClient *http.Client
}

// NewNotificationService builds the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, webhookURL string) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// RegisterHandlers subscribes to every lifecycle event type.
func (s *NotificationService) RegisterHandlers() {
	for _, eventType := range []events.EventType{
		events.EventUserCreated,
		events.EventUserDeleted,
		events.EventCatwayCreated,
		events.EventCatwayDeleted,
		events.EventBookingCreated,
		events.EventBookingDeleted,
	} {
		s.dispatcher.Subscribe(eventType, s.handle)
	}
}

func (s *NotificationService) handle(ctx context.Context, event events.Event) error {
	s.logger.Info("resource event",
		zap.String("type", string(event.Type)),
		zap.String("resource_id", event.ResourceID),
	)

	if s.webhookURL == "" {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Warn("encode webhook payload", zap.Error(err))
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(payload))
	if err != nil {
		s.logger.Warn("build webhook request", zap.Error(err))
		return nil
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Warn("deliver webhook", zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		s.logger.Warn("webhook rejected", zap.Int("status", resp.StatusCode))
	}
	return nil
}
