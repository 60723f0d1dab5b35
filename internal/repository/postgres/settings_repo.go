package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"panelrecut/internal/domain"
)

type emailSettingsRepository struct {
	DB *sql.DB
}

func NewEmailSettingsRepository(db *sql.DB) domain.EmailSettingsRepository {
	return &emailSettingsRepository{DB: db}
}

// Get returns the most recently created settings record, or (nil, nil)
// when none has been saved yet.
func (r *emailSettingsRepository) Get(ctx context.Context) (*domain.EmailSettings, error) {
	query := `
		SELECT recipients, cc_recipients, notifications
		FROM email_settings
		ORDER BY created_at DESC
		LIMIT 1
	`
	var recipients, ccRecipients, notifications []byte
	err := r.DB.QueryRowContext(ctx, query).Scan(&recipients, &ccRecipients, &notifications)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return unmarshalSettings(recipients, ccRecipients, notifications)
}

// Save replaces the table contents with exactly one new row. The delete
// and insert run in a single transaction so a concurrent Get observes
// either the old row or the new one, never zero rows.
func (r *emailSettingsRepository) Save(ctx context.Context, settings *domain.EmailSettings) (*domain.EmailSettings, error) {
	recipients, err := json.Marshal(settings.Recipients)
	if err != nil {
		return nil, fmt.Errorf("marshal recipients: %w", err)
	}
	ccRecipients, err := json.Marshal(settings.CcRecipients)
	if err != nil {
		return nil, fmt.Errorf("marshal cc recipients: %w", err)
	}
	notifications, err := json.Marshal(settings.Notifications)
	if err != nil {
		return nil, fmt.Errorf("marshal notifications: %w", err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM email_settings`); err != nil {
		return nil, err
	}
	query := `
		INSERT INTO email_settings (recipients, cc_recipients, notifications, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING recipients, cc_recipients, notifications
	`
	var outRecipients, outCc, outNotifications []byte
	if err := tx.QueryRowContext(ctx, query, recipients, ccRecipients, notifications).
		Scan(&outRecipients, &outCc, &outNotifications); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return unmarshalSettings(outRecipients, outCc, outNotifications)
}

func (r *emailSettingsRepository) Delete(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM email_settings`)
	return err
}

func unmarshalSettings(recipients, ccRecipients, notifications []byte) (*domain.EmailSettings, error) {
	s := &domain.EmailSettings{}
	if err := json.Unmarshal(recipients, &s.Recipients); err != nil {
		return nil, fmt.Errorf("unmarshal recipients: %w", err)
	}
	if err := json.Unmarshal(ccRecipients, &s.CcRecipients); err != nil {
		return nil, fmt.Errorf("unmarshal cc recipients: %w", err)
	}
	if err := json.Unmarshal(notifications, &s.Notifications); err != nil {
		return nil, fmt.Errorf("unmarshal notifications: %w", err)
	}
	return s, nil
}
