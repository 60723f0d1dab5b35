package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"panelrecut/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type emailSettingsService struct {
	repo           domain.EmailSettingsRepository
	contextTimeout time.Duration
}

// NewEmailSettingsService creates the notification-settings service.
func NewEmailSettingsService(repo domain.EmailSettingsRepository, timeout time.Duration) domain.EmailSettingsService {
	return &emailSettingsService{repo: repo, contextTimeout: timeout}
}

// Get returns the active settings, or (nil, nil) when none have been
// saved. Callers fall back to domain.DefaultEmailSettings.
func (s *emailSettingsService) Get(ctx context.Context) (*domain.EmailSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch email settings: %w", err)
	}
	return settings, nil
}

// Save validates every address and replaces the stored record wholesale.
func (s *emailSettingsService) Save(ctx context.Context, settings *domain.EmailSettings) (*domain.EmailSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	normalized := &domain.EmailSettings{
		Recipients:    normalizeAddresses(settings.Recipients),
		CcRecipients:  normalizeAddresses(settings.CcRecipients),
		Notifications: settings.Notifications,
	}
	for _, addr := range normalized.Recipients {
		if !emailRegexp.MatchString(addr) {
			return nil, fmt.Errorf("%w: invalid recipient address %q", domain.ErrInvalidInput, addr)
		}
	}
	for _, addr := range normalized.CcRecipients {
		if !emailRegexp.MatchString(addr) {
			return nil, fmt.Errorf("%w: invalid cc address %q", domain.ErrInvalidInput, addr)
		}
	}

	saved, err := s.repo.Save(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to save email settings: %w", err)
	}
	return saved, nil
}

func (s *emailSettingsService) Delete(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete email settings: %w", err)
	}
	return nil
}

// normalizeAddresses trims whitespace, drops empties, and removes
// duplicates while preserving the first-seen order for display.
func normalizeAddresses(addrs []string) []string {
	out := make([]string, 0, len(addrs))
	seen := make(map[string]struct{}, len(addrs))
	for _, a := range addrs {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		key := strings.ToLower(a)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, a)
	}
	return out
}
