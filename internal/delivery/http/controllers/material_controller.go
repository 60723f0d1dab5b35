package controllers

import (
	"log/slog"
	"net/http"

	"panelrecut/internal/delivery/http/helpers"
	"panelrecut/internal/domain"
)

type MaterialController struct {
	Logger *slog.Logger
}

func NewMaterialController(logger *slog.Logger) *MaterialController {
	return &MaterialController{Logger: logger}
}

// Search godoc
// @Summary Autocomplete panel materials
// @Description Returns up to 10 material names matching the query. Prefix matches rank before substring matches; an empty query returns the full list head.
// @Tags materials
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {object} helpers.APIResponse
// @Router /materials [get]
func (c *MaterialController) Search(w http.ResponseWriter, r *http.Request) {
	matches := domain.FilterMaterials(r.URL.Query().Get("q"))
	helpers.WriteJSONSuccess(w, http.StatusOK, matches)
}
