package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"panelrecut/internal/delivery/http/helpers"
	"panelrecut/internal/domain"
)

type RequestController struct {
	Logger  *slog.Logger
	Service domain.DamageRequestService
}

func NewRequestController(logger *slog.Logger, svc domain.DamageRequestService) *RequestController {
	return &RequestController{
		Logger:  logger,
		Service: svc,
	}
}

// PanelInput is one damaged panel line in a create request.
type PanelInput struct {
	PanelType   string `json:"panelType"`
	PanelNumber string `json:"panelNumber"`
	Material    string `json:"material"`
	Quantity    int    `json:"quantity"`
	Side        string `json:"side"`
}

// CreateRequestBody is the request body for POST /requests.
type CreateRequestBody struct {
	GliderName  string       `json:"gliderName"`
	OrderNumber string       `json:"orderNumber"`
	Reason      string       `json:"reason"`
	RequestedBy string       `json:"requestedBy"`
	Panels      []PanelInput `json:"panels"`
	Notes       string       `json:"notes"`
}

func (b CreateRequestBody) Validate() []string {
	var errs []string
	if strings.TrimSpace(b.GliderName) == "" {
		errs = append(errs, "gliderName is required")
	}
	if strings.TrimSpace(b.OrderNumber) == "" {
		errs = append(errs, "orderNumber is required")
	}
	if strings.TrimSpace(b.Reason) == "" {
		errs = append(errs, "reason is required")
	}
	if strings.TrimSpace(b.RequestedBy) == "" {
		errs = append(errs, "requestedBy is required")
	}
	if len(b.Panels) == 0 {
		errs = append(errs, "at least one panel is required")
	}
	return errs
}

// UpdateStatusBody is the request body for PATCH /requests/{requestID}/status.
type UpdateStatusBody struct {
	Status string `json:"status"`
}

func (b UpdateStatusBody) Validate() []string {
	if strings.TrimSpace(b.Status) == "" {
		return []string{"status is required"}
	}
	return nil
}

// RequestSuccessResponse is the success envelope for single-request endpoints.
type RequestSuccessResponse struct {
	Data  *domain.DamageRequest `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// RequestListSuccessResponse is the success envelope for GET /requests.
type RequestListSuccessResponse struct {
	Data  []*domain.DamageRequest `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// Create godoc
// @Summary Submit a damage recut request
// @Description Records a new recut request with its damaged panels. The request starts in Pending status; notification delivery happens in the background and never affects this response.
// @Tags requests
// @Accept json
// @Produce json
// @Param request body controllers.CreateRequestBody true "New request"
// @Success 201 {object} controllers.RequestSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /requests [post]
func (c *RequestController) Create(w http.ResponseWriter, r *http.Request) {
	var body CreateRequestBody
	if !helpers.DecodeAndValidate(w, r, &body) {
		return
	}

	data := domain.CreateDamageRequestData{
		GliderName:  body.GliderName,
		OrderNumber: body.OrderNumber,
		Reason:      body.Reason,
		RequestedBy: body.RequestedBy,
		Notes:       body.Notes,
	}
	for _, p := range body.Panels {
		data.Panels = append(data.Panels, domain.PanelInfo{
			PanelType:   p.PanelType,
			PanelNumber: p.PanelNumber,
			Material:    p.Material,
			Quantity:    p.Quantity,
			Side:        domain.Side(p.Side),
		})
	}

	req, err := c.Service.Create(r.Context(), data)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, req)
}

// List godoc
// @Summary List all recut requests
// @Description Returns every recut request, newest first.
// @Tags requests
// @Produce json
// @Success 200 {object} controllers.RequestListSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /requests [get]
func (c *RequestController) List(w http.ResponseWriter, r *http.Request) {
	requests, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if requests == nil {
		requests = []*domain.DamageRequest{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, requests)
}

// GetByID godoc
// @Summary Fetch one recut request
// @Tags requests
// @Produce json
// @Param requestID path string true "Request ID"
// @Success 200 {object} controllers.RequestSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /requests/{requestID} [get]
func (c *RequestController) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("requestID")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing requestID")
		return
	}

	req, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "request not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, req)
}

// UpdateStatus godoc
// @Summary Advance a request's workflow status
// @Description Moves a request forward in the Pending, In Progress, Done workflow. Transitions only move forward one step; Done is terminal.
// @Tags requests
// @Accept json
// @Produce json
// @Param requestID path string true "Request ID"
// @Param request body controllers.UpdateStatusBody true "Target status"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /requests/{requestID}/status [patch]
func (c *RequestController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("requestID")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing requestID")
		return
	}

	var body UpdateStatusBody
	if !helpers.DecodeAndValidate(w, r, &body) {
		return
	}

	err := c.Service.UpdateStatus(r.Context(), id, domain.Status(body.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "request not found")
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		case errors.Is(err, domain.ErrIllegalTransition):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"id": id, "status": body.Status})
}

// Delete godoc
// @Summary Delete a recut request
// @Description Removes a request permanently. Deleting an ID that does not exist still returns 200.
// @Tags requests
// @Produce json
// @Param requestID path string true "Request ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /requests/{requestID} [delete]
func (c *RequestController) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("requestID")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing requestID")
		return
	}

	if err := c.Service.Delete(r.Context(), id); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"id": id})
}
