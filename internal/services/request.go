package services

import (
	"context"
	"fmt"
	"time"

	"panelrecut/internal/domain"
)

type damageRequestService struct {
	repo           domain.DamageRequestRepository
	dispatcher     domain.NotificationDispatcher
	contextTimeout time.Duration
}

// NewDamageRequestService creates the request lifecycle service. The
// dispatcher may be nil when notifications are disabled entirely.
func NewDamageRequestService(repo domain.DamageRequestRepository, dispatcher domain.NotificationDispatcher, timeout time.Duration) domain.DamageRequestService {
	return &damageRequestService{
		repo:           repo,
		dispatcher:     dispatcher,
		contextTimeout: timeout,
	}
}

// Create persists a new request and emits a NewRequest notification
// event. The event is fire-and-forget: a delivery failure never fails
// or rolls back the create.
func (s *damageRequestService) Create(ctx context.Context, data domain.CreateDamageRequestData) (*domain.DamageRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := data.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	req := &domain.DamageRequest{
		GliderName:  data.GliderName,
		OrderNumber: data.OrderNumber,
		Reason:      data.Reason,
		RequestedBy: data.RequestedBy,
		Panels:      data.Panels,
		Status:      domain.StatusPending,
		SubmittedAt: now,
		UpdatedAt:   now,
		Notes:       data.Notes,
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to create damage request: %w", err)
	}

	s.notify(domain.NotificationEvent{Type: domain.NotificationNewRequest, Request: req})
	return req, nil
}

func (s *damageRequestService) List(ctx context.Context) ([]*domain.DamageRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	requests, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list damage requests: %w", err)
	}
	return requests, nil
}

func (s *damageRequestService) GetByID(ctx context.Context, id string) (*domain.DamageRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.repo.GetByID(ctx, id)
}

// UpdateStatus enforces the forward-only workflow (Pending -> In
// Progress -> Done) and emits a StatusUpdate event on success.
func (s *damageRequestService) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !current.Status.CanTransitionTo(status) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrIllegalTransition, current.Status, status)
	}

	now := time.Now()
	if err := s.repo.UpdateStatus(ctx, id, status, now); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	snapshot := *current
	snapshot.Status = status
	snapshot.UpdatedAt = now
	s.notify(domain.NotificationEvent{Type: domain.NotificationStatusUpdate, Request: &snapshot})
	return nil
}

// Delete removes a request. Deleting an id that does not exist is a
// silent success.
func (s *damageRequestService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete damage request: %w", err)
	}
	return nil
}

// notify hands the event to the dispatcher on its own goroutine. The
// dispatcher owns its context so an abandoned HTTP request cannot cancel
// an in-flight delivery.
func (s *damageRequestService) notify(event domain.NotificationEvent) {
	if s.dispatcher == nil {
		return
	}
	go s.dispatcher.Dispatch(context.Background(), event)
}
