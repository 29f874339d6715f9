package worker

import (
	"context"

	"github.com/spec-kit/job-portal/internal/events"
	"github.com/spec-kit/job-portal/internal/observability"
	"github.com/spec-kit/job-portal/internal/service"
)

// StartNotificationWorker registers notification handlers.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}

// StartMetricsWorker counts accepted applications from the event stream.
func StartMetricsWorker(dispatcher events.Dispatcher, metrics *observability.Metrics) {
	if dispatcher == nil || metrics == nil {
		return
	}
	dispatcher.Subscribe(events.EventApplicationSubmitted, func(context.Context, events.Event) error {
		metrics.RecordApplication()
		return nil
	})
}
