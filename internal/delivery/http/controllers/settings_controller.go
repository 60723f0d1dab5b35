package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"panelrecut/internal/delivery/http/helpers"
	"panelrecut/internal/domain"
)

type SettingsController struct {
	Logger  *slog.Logger
	Service domain.EmailSettingsService
}

func NewSettingsController(logger *slog.Logger, svc domain.EmailSettingsService) *SettingsController {
	return &SettingsController{
		Logger:  logger,
		Service: svc,
	}
}

// SaveSettingsBody is the request body for PUT /settings.
type SaveSettingsBody struct {
	Recipients    []string                   `json:"recipients"`
	CcRecipients  []string                   `json:"ccRecipients"`
	Notifications domain.NotificationToggles `json:"notifications"`
}

// SettingsSuccessResponse is the success envelope for settings endpoints.
type SettingsSuccessResponse struct {
	Data  *domain.EmailSettings `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// Get godoc
// @Summary Fetch notification settings
// @Description Returns the saved notification settings. When nothing has been saved yet, returns the defaults with all notification types enabled and no recipients.
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.SettingsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /settings [get]
func (c *SettingsController) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := c.Service.Get(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if settings == nil {
		settings = domain.DefaultEmailSettings()
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, settings)
}

// Save godoc
// @Summary Replace notification settings
// @Description Saves the notification settings, replacing any previous record. Addresses are trimmed and deduplicated; an invalid address rejects the whole request.
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param settings body controllers.SaveSettingsBody true "Settings"
// @Success 200 {object} controllers.SettingsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /settings [put]
func (c *SettingsController) Save(w http.ResponseWriter, r *http.Request) {
	var body SaveSettingsBody
	if !helpers.DecodeAndValidate(w, r, &body) {
		return
	}

	saved, err := c.Service.Save(r.Context(), &domain.EmailSettings{
		Recipients:    body.Recipients,
		CcRecipients:  body.CcRecipients,
		Notifications: body.Notifications,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, saved)
}

// Delete godoc
// @Summary Reset notification settings
// @Description Deletes the saved settings so subsequent reads return the defaults.
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /settings [delete]
func (c *SettingsController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context()); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}
