package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/bookstore-service/internal/config"
	"github.com/spec-kit/bookstore-service/internal/events"
)

// NotificationService turns account lifecycle events into outbound
// notifications. Delivery is stubbed: messages are logged, never retried,
// and failures are invisible to the flows that triggered them.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
	baseURL    string
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig, baseURL string) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
		baseURL:    baseURL,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleUserRegistered)
	n.dispatcher.Subscribe(events.EventPasswordResetRequested, n.handlePasswordResetRequested)
	n.dispatcher.Subscribe(events.EventAccountConfirmed, n.handleAccountConfirmed)
	n.dispatcher.Subscribe(events.EventPasswordChanged, n.handlePasswordChanged)
}

func (n *NotificationService) handleUserRegistered(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.UserRegisteredPayload)
	if !ok {
		return fmt.Errorf("unexpected payload for %s", event.Type)
	}
	confirmationURL := fmt.Sprintf("%s/auth/confirm-account?token=%s", n.baseURL, payload.Token)
	n.sendEmailStub(event.Email, "Account Confirmation",
		"Please click the link below to activate your account:\n"+confirmationURL)
	return nil
}

func (n *NotificationService) handlePasswordResetRequested(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.PasswordResetRequestedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload for %s", event.Type)
	}
	resetURL := fmt.Sprintf("%s/auth/reset-password?token=%s", n.baseURL, payload.Token)
	n.sendEmailStub(event.Email, "Password Reset Request",
		"Click the link to reset your password:\n"+resetURL)
	return nil
}

func (n *NotificationService) handleAccountConfirmed(ctx context.Context, event events.Event) error {
	n.sendWebhookStub(ctx, event)
	return nil
}

func (n *NotificationService) handlePasswordChanged(ctx context.Context, event events.Event) error {
	n.sendWebhookStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailStub(to, subject, body string) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Info("sendEmailStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Int("body_len", len(body)))
}

func (n *NotificationService) sendWebhookStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("email", event.Email),
		zap.String("event_type", string(event.Type)))
}
