package domain

import "context"

// NotificationType identifies a notification event on the wire.
type NotificationType string

const (
	NotificationNewRequest     NotificationType = "new_request"
	NotificationStatusUpdate   NotificationType = "status_update"
	NotificationCustomEmail    NotificationType = "custom_email"
	NotificationConnectionTest NotificationType = "connection_test"
	NotificationGetRequests    NotificationType = "get_requests"
)

// NotificationEvent is the transient event emitted after a successful
// request mutation. It is consumed once by the dispatcher and never stored.
type NotificationEvent struct {
	Type    NotificationType
	Request *DamageRequest
}

// EmailRecipients are the resolved to/cc/bcc lists for one delivery.
type EmailRecipients struct {
	To  []string `json:"to"`
	Cc  []string `json:"cc,omitempty"`
	Bcc []string `json:"bcc,omitempty"`
}

// EmailContent is a fully rendered message. HTML and Text are always
// generated together from the same request snapshot.
type EmailContent struct {
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text"`
}

// ConnectionTestResult is the outcome of a provider connectivity check,
// with a human-readable diagnostic message.
type ConnectionTestResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// NotificationProvider is the pluggable delivery backend. Send methods
// return false on any failure (transport or remote-reported) and never an
// error the caller is expected to act on; delivery is best-effort.
type NotificationProvider interface {
	SendNewRequestNotification(ctx context.Context, req *DamageRequest, recipients EmailRecipients) bool
	SendStatusUpdateNotification(ctx context.Context, req *DamageRequest, recipients EmailRecipients) bool
	SendEmail(ctx context.Context, recipients EmailRecipients, content EmailContent) bool
	TestConnection(ctx context.Context) ConnectionTestResult
}

// RequestFetcher is implemented by providers whose backend keeps its own
// copy of submitted requests (the remote script appends a spreadsheet row
// per notification) and can read those rows back for reconciliation.
type RequestFetcher interface {
	FetchAllRequests(ctx context.Context) ([]DamageRequest, error)
}

// EmailContentRenderer renders notification bodies from a request
// snapshot. Both HTML and plain text come from the same snapshot.
type EmailContentRenderer interface {
	RenderNewRequest(req *DamageRequest) (EmailContent, error)
	RenderStatusUpdate(req *DamageRequest) (EmailContent, error)
}

// NotificationDispatcher decides whether an event should be delivered and
// routes it to the active provider. Dispatch never returns an error for
// delivery failures; the triggering business operation has already
// committed.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, event NotificationEvent)
}
