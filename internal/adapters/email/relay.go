package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"panelrecut/internal/domain"
)

// relayProvider speaks to the local SMTP relay process over HTTP. The
// relay performs the actual SMTP handshake; this provider renders the
// email content locally and ships credentials plus the message.
type relayProvider struct {
	service     string // "gmail" or "outlook": the JSON credentials key
	sendPath    string
	user        string
	appPassword string
	baseURL     string
	renderer    domain.EmailContentRenderer
	client      *http.Client
	logger      *slog.Logger
}

// NewGmailRelayProvider returns the legacy Gmail SMTP relay provider.
func NewGmailRelayProvider(baseURL, user, appPassword string, renderer domain.EmailContentRenderer, client *http.Client, logger *slog.Logger) domain.NotificationProvider {
	return newRelayProvider("gmail", "/api/send-email", baseURL, user, appPassword, renderer, client, logger)
}

// NewOutlookRelayProvider returns the legacy Outlook SMTP relay provider.
func NewOutlookRelayProvider(baseURL, user, appPassword string, renderer domain.EmailContentRenderer, client *http.Client, logger *slog.Logger) domain.NotificationProvider {
	return newRelayProvider("outlook", "/api/send-outlook-email", baseURL, user, appPassword, renderer, client, logger)
}

func newRelayProvider(service, sendPath, baseURL, user, appPassword string, renderer domain.EmailContentRenderer, client *http.Client, logger *slog.Logger) domain.NotificationProvider {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &relayProvider{
		service:     service,
		sendPath:    sendPath,
		user:        user,
		appPassword: appPassword,
		baseURL:     baseURL,
		renderer:    renderer,
		client:      client,
		logger:      logger,
	}
}

// relayCredentials is the credentials block keyed by service name.
type relayCredentials struct {
	User        string `json:"user"`
	AppPassword string `json:"appPassword"`
}

// relayEmail is the message block of the relay POST body.
type relayEmail struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Cc      []string `json:"cc,omitempty"`
	Bcc     []string `json:"bcc,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
}

// relayHealth is the relay's GET /api/health response.
type relayHealth struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

func (p *relayProvider) SendNewRequestNotification(ctx context.Context, req *domain.DamageRequest, recipients domain.EmailRecipients) bool {
	content, err := p.renderer.RenderNewRequest(req)
	if err != nil {
		p.logger.Error("relay provider: render new request content failed", "service", p.service, "err", err)
		return false
	}
	return p.SendEmail(ctx, recipients, content)
}

func (p *relayProvider) SendStatusUpdateNotification(ctx context.Context, req *domain.DamageRequest, recipients domain.EmailRecipients) bool {
	content, err := p.renderer.RenderStatusUpdate(req)
	if err != nil {
		p.logger.Error("relay provider: render status update content failed", "service", p.service, "err", err)
		return false
	}
	return p.SendEmail(ctx, recipients, content)
}

func (p *relayProvider) SendEmail(ctx context.Context, recipients domain.EmailRecipients, content domain.EmailContent) bool {
	payload := map[string]any{
		p.service: relayCredentials{User: p.user, AppPassword: p.appPassword},
		"email": relayEmail{
			From:    p.user,
			To:      recipients.To,
			Cc:      recipients.Cc,
			Bcc:     recipients.Bcc,
			Subject: content.Subject,
			HTML:    content.HTML,
			Text:    content.Text,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("relay provider: marshal payload failed", "service", p.service, "err", err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+p.sendPath, bytes.NewReader(body))
	if err != nil {
		p.logger.Error("relay provider: create request failed", "service", p.service, "err", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Error("relay provider: relay unreachable", "service", p.service, "err", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		p.logger.Error("relay provider: relay reported failure",
			"service", p.service, "status", resp.StatusCode, "body", string(respBody))
		return false
	}
	p.logger.Info("relay provider: email sent", "service", p.service, "to", recipients.To)
	return true
}

// TestConnection checks the relay health endpoint.
func (p *relayProvider) TestConnection(ctx context.Context) domain.ConnectionTestResult {
	if p.user == "" || p.appPassword == "" {
		return domain.ConnectionTestResult{
			Success: false,
			Message: fmt.Sprintf("%s credentials are not configured", p.service),
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/api/health", nil)
	if err != nil {
		return domain.ConnectionTestResult{Success: false, Message: fmt.Sprintf("Connection error: %v", err)}
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return domain.ConnectionTestResult{
			Success: false,
			Message: fmt.Sprintf("Network error: the local email relay is not reachable at %s. Start the relay process and retry.", p.baseURL),
			Details: map[string]string{"error": err.Error()},
		}
	}
	defer resp.Body.Close()

	var health relayHealth
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil || health.Status != "OK" {
		return domain.ConnectionTestResult{
			Success: false,
			Message: "The relay responded but is not healthy",
			Details: health,
		}
	}
	return domain.ConnectionTestResult{
		Success: true,
		Message: fmt.Sprintf("Connected to %s relay successfully", health.Service),
		Details: health,
	}
}
