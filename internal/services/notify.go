package services

import (
	"context"
	"log/slog"
	"time"

	"panelrecut/internal/domain"
)

type notificationDispatcher struct {
	settingsRepo domain.EmailSettingsRepository
	provider     domain.NotificationProvider
	logger       *slog.Logger
	timeout      time.Duration
}

// NewNotificationDispatcher creates the dispatcher. The provider may be
// nil when none is configured; dispatch then logs a warning and drops the
// event instead of failing the operation that triggered it.
func NewNotificationDispatcher(settingsRepo domain.EmailSettingsRepository, provider domain.NotificationProvider, logger *slog.Logger, timeout time.Duration) domain.NotificationDispatcher {
	return &notificationDispatcher{
		settingsRepo: settingsRepo,
		provider:     provider,
		logger:       logger,
		timeout:      timeout,
	}
}

// Dispatch decides whether the event should be delivered and routes it
// to the active provider. All failures end here: the triggering business
// operation has already committed.
func (d *notificationDispatcher) Dispatch(ctx context.Context, event domain.NotificationEvent) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	settings, err := d.settingsRepo.Get(ctx)
	if err != nil {
		d.logger.Error("notification dropped: could not load email settings", "type", event.Type, "err", err)
		return
	}
	if settings == nil {
		d.logger.Debug("notification skipped: no email settings configured", "type", event.Type)
		return
	}
	if !enabledFor(settings.Notifications, event.Type) {
		d.logger.Debug("notification skipped: event type disabled", "type", event.Type)
		return
	}
	if d.provider == nil {
		d.logger.Warn("notification dropped: no email provider configured", "type", event.Type)
		return
	}
	if len(settings.Recipients) == 0 {
		d.logger.Debug("notification skipped: no recipients configured", "type", event.Type)
		return
	}

	recipients := domain.EmailRecipients{
		To: settings.Recipients,
		Cc: settings.CcRecipients,
	}

	var ok bool
	switch event.Type {
	case domain.NotificationNewRequest:
		ok = d.provider.SendNewRequestNotification(ctx, event.Request, recipients)
	case domain.NotificationStatusUpdate:
		ok = d.provider.SendStatusUpdateNotification(ctx, event.Request, recipients)
	default:
		d.logger.Warn("notification dropped: unknown event type", "type", event.Type)
		return
	}
	if !ok {
		d.logger.Error("notification delivery failed",
			"type", event.Type, "order", event.Request.OrderNumber, "to", recipients.To)
		return
	}
	d.logger.Info("notification delivered", "type", event.Type, "order", event.Request.OrderNumber)
}

func enabledFor(toggles domain.NotificationToggles, eventType domain.NotificationType) bool {
	switch eventType {
	case domain.NotificationNewRequest:
		return toggles.NewRequest
	case domain.NotificationStatusUpdate:
		return toggles.StatusUpdate
	}
	return false
}
