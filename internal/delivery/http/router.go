package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"panelrecut/internal/delivery/http/controllers"
	"panelrecut/internal/delivery/http/middleware"
	"panelrecut/internal/domain"
)

// RouterDeps bundles everything the router mounts.
type RouterDeps struct {
	Logger        *slog.Logger
	TokenVerifier domain.TokenVerifier

	Requests  *controllers.RequestController
	Settings  *controllers.SettingsController
	Auth      *controllers.AuthController
	Email     *controllers.EmailController
	Materials *controllers.MaterialController
}

// NewRouter initializes the HTTP router with all application routes.
// Settings and provider-test routes require a Bearer token.
func NewRouter(deps RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(deps.TokenVerifier, deps.Logger)

	// Recut requests
	mux.HandleFunc("POST /requests", deps.Requests.Create)
	mux.HandleFunc("GET /requests", deps.Requests.List)
	mux.HandleFunc("GET /requests/{requestID}", deps.Requests.GetByID)
	mux.HandleFunc("PATCH /requests/{requestID}/status", deps.Requests.UpdateStatus)
	mux.HandleFunc("DELETE /requests/{requestID}", deps.Requests.Delete)

	// Notification settings (staff only)
	mux.HandleFunc("GET /settings", requireAuth(deps.Settings.Get))
	mux.HandleFunc("PUT /settings", requireAuth(deps.Settings.Save))
	mux.HandleFunc("DELETE /settings", requireAuth(deps.Settings.Delete))

	// Email provider probe (staff only)
	mux.HandleFunc("POST /email/test", requireAuth(deps.Email.TestConnection))

	// Material autocomplete
	mux.HandleFunc("GET /materials", deps.Materials.Search)

	// Auth
	mux.HandleFunc("POST /auth/signup", deps.Auth.SignUp)
	mux.HandleFunc("POST /auth/login", deps.Auth.Login)

	// Health
	mux.HandleFunc("GET /health", healthHandler)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "OK",
		"service": "panel-recut-api",
	})
}
