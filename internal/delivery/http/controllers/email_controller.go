package controllers

import (
	"log/slog"
	"net/http"

	"panelrecut/internal/delivery/http/helpers"
	"panelrecut/internal/domain"
)

type EmailController struct {
	Logger   *slog.Logger
	Provider domain.NotificationProvider
}

func NewEmailController(logger *slog.Logger, provider domain.NotificationProvider) *EmailController {
	return &EmailController{
		Logger:   logger,
		Provider: provider,
	}
}

// TestConnectionSuccessResponse is the success envelope for POST /email/test.
type TestConnectionSuccessResponse struct {
	Data  *domain.ConnectionTestResult `json:"data"`
	Error *helpers.APIError            `json:"error"`
}

// TestConnection godoc
// @Summary Probe the configured email provider
// @Description Sends a connection test to the configured provider and reports whether it is reachable. A failed probe is still a 200; the result body carries the outcome.
// @Tags email
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.TestConnectionSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 503 {object} helpers.APIResponse "error.code: internal_error"
// @Router /email/test [post]
func (c *EmailController) TestConnection(w http.ResponseWriter, r *http.Request) {
	if c.Provider == nil {
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeInternalError, "no email provider configured")
		return
	}

	result := c.Provider.TestConnection(r.Context())
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}
