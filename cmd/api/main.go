package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/signoff/internal/approval"
	approvalStore "github.com/MrJamesThe3rd/signoff/internal/approval/store"
	"github.com/MrJamesThe3rd/signoff/internal/auth"
	"github.com/MrJamesThe3rd/signoff/internal/config"
	"github.com/MrJamesThe3rd/signoff/internal/database"
	"github.com/MrJamesThe3rd/signoff/internal/deliverable"
	deliverableStore "github.com/MrJamesThe3rd/signoff/internal/deliverable/store"
	signoffHttp "github.com/MrJamesThe3rd/signoff/internal/http"
	deliverableHandler "github.com/MrJamesThe3rd/signoff/internal/http/deliverable"
	portalHandler "github.com/MrJamesThe3rd/signoff/internal/http/portal"
	projectHandler "github.com/MrJamesThe3rd/signoff/internal/http/project"
	scopeHandler "github.com/MrJamesThe3rd/signoff/internal/http/scope"
	"github.com/MrJamesThe3rd/signoff/internal/invoice"
	invoiceStore "github.com/MrJamesThe3rd/signoff/internal/invoice/store"
	"github.com/MrJamesThe3rd/signoff/internal/portal"
	"github.com/MrJamesThe3rd/signoff/internal/project"
	projectStore "github.com/MrJamesThe3rd/signoff/internal/project/store"
	"github.com/MrJamesThe3rd/signoff/internal/scope"
	scopeStore "github.com/MrJamesThe3rd/signoff/internal/scope/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.DB.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			slog.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}

		slog.Info("database migrated")
	}

	var (
		projectService     = project.NewService(projectStore.New(db))
		scopeService       = scope.NewService(scopeStore.New(db))
		deliverableService = deliverable.NewService(deliverableStore.New(db))
		invoiceService     = invoice.NewService(invoiceStore.New(db))
		approvalService    = approval.NewService(approvalStore.New(db))
		portalService      = portal.NewService(projectService, scopeService, deliverableService)
	)

	var (
		projectH     = projectHandler.NewHandler(projectService, scopeService, deliverableService, invoiceService)
		scopeH       = scopeHandler.NewHandler(scopeService)
		deliverableH = deliverableHandler.NewHandler(deliverableService)
		portalH      = portalHandler.NewHandler(portalService, approvalService)
	)

	router := signoffHttp.New(signoffHttp.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Verifier:       auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer),
		Owners:         projectService,
	}, projectH, scopeH, deliverableH, portalH)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.Timeout,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	drained := make(chan struct{})

	go func() {
		defer close(drained)

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server", "app", cfg.App.Name, "addr", srv.Addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}

	<-drained
	slog.Info("server stopped")
}
