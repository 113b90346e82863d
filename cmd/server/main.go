package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/brightsite/backend/internal/config"
	"github.com/brightsite/backend/internal/handler"
	"github.com/brightsite/backend/internal/logging"
	"github.com/brightsite/backend/internal/notify"
	"github.com/brightsite/backend/internal/repository"
	"github.com/brightsite/backend/internal/service"
	"github.com/brightsite/backend/pkg/auth"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("invalid configuration", "error", err)
	}

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		logging.Fatal("schema initialization failed", "error", err)
	}

	submissionRepo := repository.NewPgSubmissionRepository(pool)
	adminRepo := repository.NewPgAdminRepository(pool)
	sessionRepo := repository.NewPgSessionRepository(pool)
	contactService := service.NewContactService(submissionRepo)
	authService := service.NewAuthService(adminRepo, sessionRepo)

	// A failed bootstrap is not fatal: the site keeps accepting submissions,
	// admin login stays unavailable until the next successful restart.
	if err := service.EnsureAdmin(ctx, adminRepo, cfg.AdminUser, cfg.AdminPass); err != nil {
		slog.Error("admin bootstrap failed", "error", err)
	} else {
		slog.Info("admin account ensured", "username", cfg.AdminUser)
	}

	var notifier notify.Notifier
	if cfg.HasSMTP() {
		n, err := notify.NewSMTPNotifier(notify.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPass,
			From:     cfg.FromEmail,
		})
		if err != nil {
			slog.Error("smtp notifier setup failed, notifications disabled", "error", err)
		} else {
			notifier = n
			slog.Info("smtp notifier enabled", "host", cfg.SMTPHost)
		}
	}

	h := handler.New(pool, cfg.FrontendURL)
	contactHandler := handler.NewContactHandler(contactService, notifier)
	adminHandler := handler.NewAdminHandler(authService, contactService)
	static := handler.NewStaticHandler(cfg.PublicDir)
	requireAdmin := auth.RequireAdmin(authService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)
	mux.HandleFunc("POST /api/admin/login", adminHandler.Login)
	mux.HandleFunc("POST /api/admin/logout", adminHandler.Logout)
	mux.Handle("GET /api/admin/contacts", requireAdmin(http.HandlerFunc(adminHandler.Contacts)))
	mux.Handle("GET /api/admin/stats", requireAdmin(http.HandlerFunc(adminHandler.Stats)))

	// Static site: admin page plus SPA-friendly fallback
	mux.HandleFunc("GET /admin", static.Admin)
	mux.HandleFunc("GET /", static.Site)

	limiter := handler.NewRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)
	root := handler.RequestLogger(handler.SecurityHeaders(limiter.Middleware(h.CORS(mux))))

	server := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Port),
		Handler:      root,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
