package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/job-portal/internal/config"
	"github.com/spec-kit/job-portal/internal/events"
)

// NotificationService handles emitting notifications for domain events.
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
	n.dispatcher.Subscribe(events.EventJobCreated, n.handleJobCreated)
	n.dispatcher.Subscribe(events.EventApplicationSubmitted, n.handleApplicationSubmitted)
	n.dispatcher.Subscribe(events.EventApplicationStatusChanged, n.handleApplicationStatusChanged)
}

func (n *NotificationService) handleJobCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("JobCreated", zap.String("job_id", event.JobID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

// The recruiter hears about new applicants.
func (n *NotificationService) handleApplicationSubmitted(ctx context.Context, event events.Event) error {
	n.logger.Info("ApplicationSubmitted",
		zap.String("job_id", event.JobID),
		zap.String("application_id", event.ApplicationID),
		zap.Any("payload", event.Payload))
	recipient := ""
	if p, ok := event.Payload.(events.ApplicationSubmittedPayload); ok {
		recipient = p.HREmail
	}
	n.sendEmailNotificationStub(ctx, event, recipient)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

// The applicant hears about the review outcome.
func (n *NotificationService) handleApplicationStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("ApplicationStatusChanged",
		zap.String("job_id", event.JobID),
		zap.String("application_id", event.ApplicationID),
		zap.Any("payload", event.Payload))
	recipient := ""
	if p, ok := event.Payload.(events.ApplicationStatusChangedPayload); ok {
		recipient = p.ApplicantEmail
	}
	n.sendEmailNotificationStub(ctx, event, recipient)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event, to string) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" || strings.TrimSpace(to) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("to", to),
		zap.String("job_id", event.JobID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("job_id", event.JobID),
		zap.String("event_type", string(event.Type)))
}
