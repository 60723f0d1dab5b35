package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors shared across repositories and services.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrIllegalTransition = errors.New("illegal status transition")
)

// Status is the workflow state of a damage request.
// The workflow is forward-only: Pending -> In Progress -> Done.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
)

// Valid reports whether s is one of the known workflow states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to next is a legal
// forward step. Done is terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusInProgress
	case StatusInProgress:
		return next == StatusDone
	}
	return false
}

// Side identifies which side(s) of the glider a panel belongs to.
type Side string

const (
	SideLeft         Side = "Left Side"
	SideRight        Side = "Right Side"
	SideLeftAndRight Side = "Left & Right Side"
)

// Valid reports whether s is one of the known side values.
func (s Side) Valid() bool {
	switch s {
	case SideLeft, SideRight, SideLeftAndRight:
		return true
	}
	return false
}

// PanelInfo describes one fabric panel to be recut. Panels are owned by
// their parent DamageRequest and have no independent identity.
// swagger:model PanelInfo
type PanelInfo struct {
	PanelType   string `json:"panelType"`
	PanelNumber string `json:"panelNumber"`
	Material    string `json:"material"`
	Quantity    int    `json:"quantity"`
	Side        Side   `json:"side"`
}

// DamageRequest is a recorded panel recut work order.
// swagger:model DamageRequest
type DamageRequest struct {
	ID          string      `json:"id"`
	GliderName  string      `json:"gliderName"`
	OrderNumber string      `json:"orderNumber"`
	Reason      string      `json:"reason"`
	RequestedBy string      `json:"requestedBy"`
	Panels      []PanelInfo `json:"panels"`
	Status      Status      `json:"status"`
	SubmittedAt time.Time   `json:"submittedAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	Notes       string      `json:"notes,omitempty"`
}

// CreateDamageRequestData carries the submitter-supplied fields for a new
// request. ID, status and timestamps are assigned by the service.
type CreateDamageRequestData struct {
	GliderName  string
	OrderNumber string
	Reason      string
	RequestedBy string
	Panels      []PanelInfo
	Notes       string
}

// Validate returns ErrInvalidInput (wrapped) when a required field is
// missing or a panel is malformed.
func (d CreateDamageRequestData) Validate() error {
	if d.GliderName == "" || d.OrderNumber == "" || d.Reason == "" || d.RequestedBy == "" {
		return ErrInvalidInput
	}
	if len(d.Panels) == 0 {
		return ErrInvalidInput
	}
	for _, p := range d.Panels {
		if p.PanelType == "" || p.PanelNumber == "" || p.Material == "" {
			return ErrInvalidInput
		}
		if p.Quantity < 1 || !p.Side.Valid() {
			return ErrInvalidInput
		}
	}
	return nil
}

// DamageRequestRepository defines the interface for request storage
type DamageRequestRepository interface {
	Create(ctx context.Context, req *DamageRequest) error
	List(ctx context.Context) ([]*DamageRequest, error)
	GetByID(ctx context.Context, id string) (*DamageRequest, error)
	UpdateStatus(ctx context.Context, id string, status Status, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

// DamageRequestService is the request lifecycle surface used by the
// delivery layer.
type DamageRequestService interface {
	Create(ctx context.Context, data CreateDamageRequestData) (*DamageRequest, error)
	List(ctx context.Context) ([]*DamageRequest, error)
	GetByID(ctx context.Context, id string) (*DamageRequest, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
}
