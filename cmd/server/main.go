package main

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	_ "github.com/lib/pq"

	_ "panelrecut/docs"

	"panelrecut/config"
	"panelrecut/internal/adapters/auth"
	"panelrecut/internal/adapters/email"
	delivery "panelrecut/internal/delivery/http"
	"panelrecut/internal/delivery/http/controllers"
	"panelrecut/internal/delivery/http/middleware"
	"panelrecut/internal/repository/postgres"
	"panelrecut/internal/services"
)

// @title Panel Recut API
// @version 1.0
// @description Damage recut request tracking and notification service for paraglider manufacturing.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to reach database", "err", err)
		os.Exit(1)
	}

	requestRepo := postgres.NewDamageRequestRepository(db)
	settingsRepo := postgres.NewEmailSettingsRepository(db)
	userRepo := postgres.NewUserRepository(db)

	httpClient := &http.Client{Timeout: 30 * time.Second}
	provider := email.NewProvider(email.ProviderConfig{
		Provider:           cfg.Email.Provider,
		CompanyName:        cfg.Email.CompanyName,
		FromAddress:        cfg.Email.FromAddress,
		ScriptURL:          cfg.Email.ScriptURL,
		RelayURL:           cfg.Email.RelayURL,
		GmailUser:          cfg.Email.GmailUser,
		GmailAppPassword:   cfg.Email.GmailAppPassword,
		OutlookUser:        cfg.Email.OutlookUser,
		OutlookAppPassword: cfg.Email.OutlookAppPassword,
		SES: email.SESConfig{
			Region:             cfg.Email.SESRegion,
			AccessKeyID:        cfg.Email.SESAccessKeyID,
			SecretAccessKey:    cfg.Email.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Email.InsecureSkipVerify,
		},
	}, httpClient, logger)

	dispatcher := services.NewNotificationDispatcher(settingsRepo, provider, logger, cfg.ContextTimeout)
	requestService := services.NewDamageRequestService(requestRepo, dispatcher, cfg.ContextTimeout)
	settingsService := services.NewEmailSettingsService(settingsRepo, cfg.ContextTimeout)

	tokens := auth.NewJWT(cfg.JWTSecret)
	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	authService := services.NewAuthService(userRepo, hasher, tokens, cfg.JWTExpiry)

	mux := delivery.NewRouter(delivery.RouterDeps{
		Logger:        logger,
		TokenVerifier: tokens,
		Requests:      controllers.NewRequestController(logger, requestService),
		Settings:      controllers.NewSettingsController(logger, settingsService),
		Auth:          controllers.NewAuthController(logger, authService),
		Email:         controllers.NewEmailController(logger, provider),
		Materials:     controllers.NewMaterialController(logger),
	})

	handler := middleware.CORS(cfg.AllowedOrigins, middleware.Logging(logger, mux))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server starting",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"email_provider", cfg.Email.Provider,
	)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
