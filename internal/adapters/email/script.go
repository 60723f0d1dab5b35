package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"panelrecut/internal/domain"
)

// scriptProvider delivers notifications through a deployed remote script
// web app that both sends the email and appends a spreadsheet row.
type scriptProvider struct {
	url         string
	companyName string
	client      *http.Client
	logger      *slog.Logger
}

// NewScriptProvider returns the remote-script notification provider.
// A nil client falls back to a client with a 30s timeout.
func NewScriptProvider(url, companyName string, client *http.Client, logger *slog.Logger) domain.NotificationProvider {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &scriptProvider{
		url:         url,
		companyName: companyName,
		client:      client,
		logger:      logger,
	}
}

// scriptPayload is the POST body the script endpoint expects.
type scriptPayload struct {
	Type        domain.NotificationType `json:"type"`
	Request     *domain.DamageRequest   `json:"request,omitempty"`
	Recipients  *domain.EmailRecipients `json:"recipients,omitempty"`
	Content     *domain.EmailContent    `json:"content,omitempty"`
	RequestedBy string                  `json:"requestedBy,omitempty"`
	CompanyName string                  `json:"companyName,omitempty"`
	Timestamp   string                  `json:"timestamp,omitempty"`
}

// scriptResponse is the JSON body the script endpoint returns. Data is
// only populated for get_requests.
type scriptResponse struct {
	Success        bool            `json:"success"`
	Error          string          `json:"error,omitempty"`
	SheetRowNumber int             `json:"sheetRowNumber,omitempty"`
	SubmissionID   string          `json:"submissionId,omitempty"`
	Data           json.RawMessage `json:"data,omitempty"`
}

func (p *scriptProvider) SendNewRequestNotification(ctx context.Context, req *domain.DamageRequest, recipients domain.EmailRecipients) bool {
	result, err := p.post(ctx, scriptPayload{
		Type:        domain.NotificationNewRequest,
		Request:     req,
		Recipients:  &recipients,
		RequestedBy: req.RequestedBy,
		CompanyName: p.companyName,
	})
	if err != nil {
		p.logger.Error("script provider: new request notification failed", "order", req.OrderNumber, "err", err)
		return false
	}
	p.logger.Info("script provider: new request notification sent",
		"order", req.OrderNumber, "sheetRow", result.SheetRowNumber, "submissionId", result.SubmissionID)
	return true
}

func (p *scriptProvider) SendStatusUpdateNotification(ctx context.Context, req *domain.DamageRequest, recipients domain.EmailRecipients) bool {
	_, err := p.post(ctx, scriptPayload{
		Type:        domain.NotificationStatusUpdate,
		Request:     req,
		Recipients:  &recipients,
		RequestedBy: req.RequestedBy,
		CompanyName: p.companyName,
	})
	if err != nil {
		p.logger.Error("script provider: status update notification failed", "order", req.OrderNumber, "err", err)
		return false
	}
	p.logger.Info("script provider: status update notification sent", "order", req.OrderNumber, "status", req.Status)
	return true
}

func (p *scriptProvider) SendEmail(ctx context.Context, recipients domain.EmailRecipients, content domain.EmailContent) bool {
	_, err := p.post(ctx, scriptPayload{
		Type:        domain.NotificationCustomEmail,
		Recipients:  &recipients,
		Content:     &content,
		CompanyName: p.companyName,
	})
	if err != nil {
		p.logger.Error("script provider: custom email failed", "err", err)
		return false
	}
	return true
}

// FetchAllRequests reads back the request rows the remote script has
// appended to its spreadsheet. Reconciliation utility; delivery never
// depends on it.
func (p *scriptProvider) FetchAllRequests(ctx context.Context) ([]domain.DamageRequest, error) {
	result, err := p.post(ctx, scriptPayload{
		Type: domain.NotificationGetRequests,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch requests: %w", err)
	}

	var requests []domain.DamageRequest
	if len(result.Data) > 0 {
		if err := json.Unmarshal(result.Data, &requests); err != nil {
			return nil, fmt.Errorf("decode request rows: %w", err)
		}
	}
	return requests, nil
}

// TestConnection tries a GET first and falls back to a connection_test
// POST, classifying failures into a human-readable diagnostic.
func (p *scriptProvider) TestConnection(ctx context.Context) domain.ConnectionTestResult {
	if p.url == "" {
		return domain.ConnectionTestResult{Success: false, Message: "Script URL is not configured"}
	}

	if result, ok := p.tryGet(ctx); ok {
		return result
	}

	resp, err := p.post(ctx, scriptPayload{
		Type:        domain.NotificationConnectionTest,
		CompanyName: p.companyName,
		Timestamp:   time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return domain.ConnectionTestResult{
			Success: false,
			Message: classifyConnectionError(err),
			Details: map[string]string{"error": err.Error(), "scriptUrl": p.url},
		}
	}
	return domain.ConnectionTestResult{
		Success: true,
		Message: "Connected to script endpoint successfully (POST)",
		Details: resp,
	}
}

func (p *scriptProvider) tryGet(ctx context.Context) (domain.ConnectionTestResult, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return domain.ConnectionTestResult{}, false
	}
	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Debug("script provider: GET test failed, trying POST", "err", err)
		return domain.ConnectionTestResult{}, false
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.ConnectionTestResult{}, false
	}

	body, _ := io.ReadAll(resp.Body)
	var parsed scriptResponse
	if err := json.Unmarshal(body, &parsed); err == nil {
		return domain.ConnectionTestResult{
			Success: true,
			Message: "Connected to script endpoint successfully (GET)",
			Details: parsed,
		}, true
	}
	return domain.ConnectionTestResult{
		Success: true,
		Message: "Connected to script endpoint successfully (GET - non-JSON response)",
		Details: map[string]string{"text": string(body)},
	}, true
}

// post sends the payload and returns an error on transport failure,
// non-2xx status, or a remote-reported success:false.
func (p *scriptProvider) post(ctx context.Context, payload scriptPayload) (*scriptResponse, error) {
	if p.url == "" {
		return nil, fmt.Errorf("script URL is not configured")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post to script endpoint: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("script endpoint responded with status %d: %s", resp.StatusCode, respBody)
	}

	var result scriptResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("decode script response: %w", err)
	}
	if !result.Success {
		if result.Error != "" {
			return nil, fmt.Errorf("script endpoint reported failure: %s", result.Error)
		}
		return nil, fmt.Errorf("script endpoint reported failure")
	}
	return &result, nil
}

// classifyConnectionError maps common failure text to actionable
// messages. Heuristic: CORS wording is only a hint, not a guarantee.
func classifyConnectionError(err error) string {
	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "cors") || strings.Contains(lower, "origin"):
		return "CORS error: the script web app may not be deployed with public access, or needs to be redeployed with updated code."
	case strings.Contains(lower, "no such host") || strings.Contains(lower, "connection refused") || strings.Contains(lower, "timeout") || strings.Contains(lower, "deadline exceeded"):
		return "Network error: unable to reach the script endpoint. Check the URL and ensure the web app is deployed and accessible."
	default:
		return fmt.Sprintf("Connection error: %s", msg)
	}
}
