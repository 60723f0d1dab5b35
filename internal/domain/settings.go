package domain

import "context"

// NotificationToggles are the per-event opt-ins for email notifications.
// swagger:model NotificationToggles
type NotificationToggles struct {
	NewRequest   bool `json:"newRequest"`
	StatusUpdate bool `json:"statusUpdate"`
	Completion   bool `json:"completion"`
}

// EmailSettings is the single active notification configuration.
// The store holds at most one record; Save replaces it wholesale.
// swagger:model EmailSettings
type EmailSettings struct {
	Recipients    []string            `json:"recipients"`
	CcRecipients  []string            `json:"ccRecipients"`
	Notifications NotificationToggles `json:"notifications"`
}

// DefaultEmailSettings is the fallback applied by callers when no record
// has been saved yet. The store itself never returns it.
func DefaultEmailSettings() *EmailSettings {
	return &EmailSettings{
		Recipients:   []string{},
		CcRecipients: []string{},
		Notifications: NotificationToggles{
			NewRequest:   true,
			StatusUpdate: true,
			Completion:   true,
		},
	}
}

// EmailSettingsRepository defines the interface for the singleton
// settings record. Get returns (nil, nil) when no record exists.
type EmailSettingsRepository interface {
	Get(ctx context.Context) (*EmailSettings, error)
	Save(ctx context.Context, settings *EmailSettings) (*EmailSettings, error)
	Delete(ctx context.Context) error
}

// EmailSettingsService validates and persists the notification
// configuration.
type EmailSettingsService interface {
	Get(ctx context.Context) (*EmailSettings, error)
	Save(ctx context.Context, settings *EmailSettings) (*EmailSettings, error)
	Delete(ctx context.Context) error
}
