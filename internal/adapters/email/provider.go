package email

import (
	"context"
	"log/slog"
	"net/http"

	"panelrecut/internal/domain"
)

// ProviderConfig holds everything needed to build the active
// notification provider.
type ProviderConfig struct {
	// Provider is the selected backend: "script", "gmail", "outlook",
	// "ses", or "noop". Empty means no provider is configured.
	Provider    string
	CompanyName string
	FromAddress string

	ScriptURL string

	RelayURL           string
	GmailUser          string
	GmailAppPassword   string
	OutlookUser        string
	OutlookAppPassword string

	SES SESConfig
}

// NewProvider builds the provider named by config.Provider. An empty
// name returns nil (nothing configured); an unknown name falls back to
// the noop provider with a log line, so a bad setting never breaks the
// business operations that trigger notifications.
func NewProvider(config ProviderConfig, client *http.Client, logger *slog.Logger) domain.NotificationProvider {
	renderer := NewContentRenderer(config.CompanyName)
	switch config.Provider {
	case "":
		return nil
	case "script":
		return NewScriptProvider(config.ScriptURL, config.CompanyName, client, logger)
	case "gmail":
		return NewGmailRelayProvider(config.RelayURL, config.GmailUser, config.GmailAppPassword, renderer, client, logger)
	case "outlook":
		return NewOutlookRelayProvider(config.RelayURL, config.OutlookUser, config.OutlookAppPassword, renderer, client, logger)
	case "ses":
		sesCfg := config.SES
		if sesCfg.FromAddress == "" {
			sesCfg.FromAddress = config.FromAddress
		}
		if sesCfg.FromName == "" {
			sesCfg.FromName = config.CompanyName
		}
		return NewSESProvider(sesCfg, renderer, logger)
	case "noop":
		return NewNoopProvider(logger)
	default:
		logger.Warn("unknown email provider, using noop", "provider", config.Provider)
		return NewNoopProvider(logger)
	}
}

// noopProvider logs instead of delivering. Used when no real backend is
// wanted (development, tests).
type noopProvider struct {
	logger *slog.Logger
}

func NewNoopProvider(logger *slog.Logger) domain.NotificationProvider {
	return &noopProvider{logger: logger}
}

func (p *noopProvider) SendNewRequestNotification(ctx context.Context, req *domain.DamageRequest, recipients domain.EmailRecipients) bool {
	p.logger.Info("noop provider: new request notification would be sent", "order", req.OrderNumber, "to", recipients.To)
	return true
}

func (p *noopProvider) SendStatusUpdateNotification(ctx context.Context, req *domain.DamageRequest, recipients domain.EmailRecipients) bool {
	p.logger.Info("noop provider: status update notification would be sent", "order", req.OrderNumber, "status", req.Status, "to", recipients.To)
	return true
}

func (p *noopProvider) SendEmail(ctx context.Context, recipients domain.EmailRecipients, content domain.EmailContent) bool {
	p.logger.Info("noop provider: email would be sent", "to", recipients.To, "subject", content.Subject)
	return true
}

func (p *noopProvider) TestConnection(ctx context.Context) domain.ConnectionTestResult {
	return domain.ConnectionTestResult{Success: true, Message: "noop provider is always available"}
}
