package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/hrms-service/internal/config"
	"github.com/spec-kit/hrms-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
// Email and webhook delivery are logged stubs; the OTP email path is the
// one consumer the reset flow depends on.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventOTPIssued, n.handleOTPIssued)
	n.dispatcher.Subscribe(events.EventEmployeeRegistered, n.handleEmployeeRegistered)
	n.dispatcher.Subscribe(events.EventTaskAssigned, n.handleTaskAssigned)
	n.dispatcher.Subscribe(events.EventPayrollSaved, n.handlePayrollSaved)
}

func (n *NotificationService) handleOTPIssued(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.OTPIssuedPayload)
	if !ok {
		return nil
	}
	n.logger.Info("OTPIssued", zap.String("email", payload.Email))
	n.sendEmailStub(ctx, payload.Email, "Your password reset code")
	return nil
}

func (n *NotificationService) handleEmployeeRegistered(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.EmployeeRegisteredPayload)
	if !ok {
		return nil
	}
	n.logger.Info("EmployeeRegistered", zap.Int64("employee_id", payload.EmployeeID))
	n.sendEmailStub(ctx, payload.Email, "Welcome aboard")
	return nil
}

func (n *NotificationService) handleTaskAssigned(ctx context.Context, event events.Event) error {
	n.logger.Info("TaskAssigned", zap.Any("payload", event.Payload))
	n.sendWebhookStub(ctx, event)
	return nil
}

func (n *NotificationService) handlePayrollSaved(ctx context.Context, event events.Event) error {
	n.logger.Info("PayrollSaved", zap.Any("payload", event.Payload))
	n.sendWebhookStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailStub(_ context.Context, to, subject string) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("to", to),
		zap.String("subject", subject))
}

func (n *NotificationService) sendWebhookStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)))
}
