package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"panelrecut/internal/domain"
)

// fakeRequestService implements domain.DamageRequestService for handler tests.
type fakeRequestService struct {
	createErr     error
	listErr       error
	getErr        error
	updateErr     error
	deleteErr     error
	lastCreate    domain.CreateDamageRequestData
	lastUpdateID  string
	lastStatus    domain.Status
	lastDeletedID string
	requests      []*domain.DamageRequest
}

func (f *fakeRequestService) Create(ctx context.Context, data domain.CreateDamageRequestData) (*domain.DamageRequest, error) {
	f.lastCreate = data
	if f.createErr != nil {
		return nil, f.createErr
	}
	now := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	return &domain.DamageRequest{
		ID:          "req-created",
		GliderName:  data.GliderName,
		OrderNumber: data.OrderNumber,
		Reason:      data.Reason,
		RequestedBy: data.RequestedBy,
		Panels:      data.Panels,
		Notes:       data.Notes,
		Status:      domain.StatusPending,
		SubmittedAt: now,
		UpdatedAt:   now,
	}, nil
}

func (f *fakeRequestService) List(ctx context.Context) ([]*domain.DamageRequest, error) {
	return f.requests, f.listErr
}

func (f *fakeRequestService) GetByID(ctx context.Context, id string) (*domain.DamageRequest, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, r := range f.requests {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRequestService) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	f.lastUpdateID = id
	f.lastStatus = status
	return f.updateErr
}

func (f *fakeRequestService) Delete(ctx context.Context, id string) error {
	f.lastDeletedID = id
	return f.deleteErr
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var env map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

const validCreateJSON = `{
	"gliderName": "Aqua Pro XC 2",
	"orderNumber": "ORD-4417",
	"reason": "Tree landing tear",
	"requestedBy": "M. Keller",
	"panels": [
		{"panelType": "Top Panel", "panelNumber": "T-12", "material": "Dominico N20D", "quantity": 1, "side": "Left Side"}
	],
	"notes": "Rush order"
}`

func TestRequestController_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		fakeErr    error
		wantStatus int
	}{
		{
			name:       "success",
			body:       validCreateJSON,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid json",
			body:       `{not json`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing glider name",
			body:       `{"orderNumber":"ORD-1","reason":"tear","requestedBy":"x","panels":[{"panelType":"Top","panelNumber":"1","material":"m","quantity":1,"side":"Left Side"}]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no panels",
			body:       `{"gliderName":"g","orderNumber":"ORD-1","reason":"tear","requestedBy":"x","panels":[]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "service rejects input",
			body:       validCreateJSON,
			fakeErr:    domain.ErrInvalidInput,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "service failure",
			body:       validCreateJSON,
			fakeErr:    errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeRequestService{createErr: tt.fakeErr}
			ctrl := NewRequestController(testLogger(), svc)

			req := httptest.NewRequest(http.MethodPost, "/requests", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			ctrl.Create(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			if tt.wantStatus == http.StatusCreated {
				var created domain.DamageRequest
				require.NoError(t, json.Unmarshal(env["data"], &created))
				assert.Equal(t, "req-created", created.ID)
				assert.Equal(t, domain.StatusPending, created.Status)
				assert.Equal(t, "Aqua Pro XC 2", svc.lastCreate.GliderName)
				assert.Len(t, svc.lastCreate.Panels, 1)
				assert.Equal(t, domain.SideLeft, svc.lastCreate.Panels[0].Side)
			} else {
				assert.Equal(t, "null", string(env["data"]))
			}
		})
	}
}

func TestRequestController_List(t *testing.T) {
	svc := &fakeRequestService{requests: []*domain.DamageRequest{
		{ID: "r2", Status: domain.StatusInProgress},
		{ID: "r1", Status: domain.StatusPending},
	}}
	ctrl := NewRequestController(testLogger(), svc)

	rec := httptest.NewRecorder()
	ctrl.List(rec, httptest.NewRequest(http.MethodGet, "/requests", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	var got []*domain.DamageRequest
	require.NoError(t, json.Unmarshal(env["data"], &got))
	require.Len(t, got, 2)
	assert.Equal(t, "r2", got[0].ID)
}

func TestRequestController_List_EmptyIsArray(t *testing.T) {
	ctrl := NewRequestController(testLogger(), &fakeRequestService{})

	rec := httptest.NewRecorder()
	ctrl.List(rec, httptest.NewRequest(http.MethodGet, "/requests", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[],"error":null}`, rec.Body.String())
}

func TestRequestController_GetByID(t *testing.T) {
	svc := &fakeRequestService{requests: []*domain.DamageRequest{{ID: "r1", GliderName: "Aqua Pro"}}}
	ctrl := NewRequestController(testLogger(), svc)

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/requests/r1", nil)
		req.SetPathValue("requestID", "r1")
		rec := httptest.NewRecorder()
		ctrl.GetByID(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		var got domain.DamageRequest
		require.NoError(t, json.Unmarshal(env["data"], &got))
		assert.Equal(t, "Aqua Pro", got.GliderName)
	})

	t.Run("missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/requests/nope", nil)
		req.SetPathValue("requestID", "nope")
		rec := httptest.NewRecorder()
		ctrl.GetByID(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRequestController_UpdateStatus(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		fakeErr    error
		wantStatus int
	}{
		{
			name:       "success",
			body:       `{"status":"In Progress"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "empty status",
			body:       `{"status":""}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown status value",
			body:       `{"status":"Archived"}`,
			fakeErr:    domain.ErrInvalidInput,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "backwards transition",
			body:       `{"status":"Pending"}`,
			fakeErr:    domain.ErrIllegalTransition,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "missing request",
			body:       `{"status":"Done"}`,
			fakeErr:    domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeRequestService{updateErr: tt.fakeErr}
			ctrl := NewRequestController(testLogger(), svc)

			req := httptest.NewRequest(http.MethodPatch, "/requests/r1/status", bytes.NewBufferString(tt.body))
			req.SetPathValue("requestID", "r1")
			rec := httptest.NewRecorder()
			ctrl.UpdateStatus(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "r1", svc.lastUpdateID)
				assert.Equal(t, domain.StatusInProgress, svc.lastStatus)
			}
		})
	}
}

func TestRequestController_Delete(t *testing.T) {
	svc := &fakeRequestService{}
	ctrl := NewRequestController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodDelete, "/requests/r9", nil)
	req.SetPathValue("requestID", "r9")
	rec := httptest.NewRecorder()
	ctrl.Delete(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "r9", svc.lastDeletedID)
}
