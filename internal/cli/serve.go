// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"technogroop/internal/cms"
	"technogroop/internal/contact"
	"technogroop/internal/database"
	"technogroop/internal/design"
	"technogroop/internal/handlers"
	"technogroop/internal/i18n"
	"technogroop/internal/mail"
	"technogroop/internal/middleware"
	"technogroop/internal/render"
	"technogroop/internal/router"
	"technogroop/internal/store"
	"technogroop/internal/turnstile"
)

// API rate limit per client IP.
const (
	apiRequestLimit  = 10
	apiRequestWindow = time.Minute
)

func (a *app) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
}

// serve connects to the backing services, applies migrations and runs the
// HTTP server until ctx is cancelled, then drains connections.
func (a *app) serve(ctx context.Context) error {
	cfg := a.cfg
	slog.Info("configuration loaded", "env", cfg.Env, "addr", cfg.Addr(), "site_url", cfg.SiteURL)

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	tr, err := i18n.New()
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}
	renderer, err := render.New(tr, cfg.SiteURL, cfg.TurnstileSiteKey)
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	client := cms.New(
		store.NewServiceStore(db),
		store.NewProjectStore(db),
		store.NewSiteSettingStore(db),
		store.NewReviewStore(db),
		store.NewVacancyStore(db),
	)

	// A nil *ResendSender must not become a non-nil mail.Sender.
	var sender mail.Sender
	if rs := mail.NewResend(cfg.ResendAPIKey); rs != nil {
		sender = rs
	}
	if cfg.TurnstileSecretKey == "" {
		slog.Warn("turnstile secret not configured, contact submissions will be rejected")
	}
	contactService := contact.NewService(turnstile.New(cfg.TurnstileSecretKey), sender, cfg.ContactEmailFrom, cfg.ContactEmailTo)

	runner, cleanup, err := a.seedRunner(db)
	if err != nil {
		return err
	}
	defer cleanup()
	if cfg.CMSSecret == "" {
		slog.Warn("CMS_SECRET not set, seed endpoint disabled")
	}

	limiter := middleware.NewRateLimiter(apiRequestLimit, apiRequestWindow)
	defer limiter.Stop()

	mediaDir := cfg.MediaDir
	if _, err := os.Stat(mediaDir); err != nil {
		slog.Warn("media directory not found, /media disabled", "dir", mediaDir)
		mediaDir = ""
	}

	r := router.New(router.Deps{
		Site:     handlers.NewSite(client, renderer),
		API:      handlers.NewAPI(contactService, runner, cfg.CMSSecret),
		Sitemap:  handlers.NewSitemap(client, cfg.SiteURL),
		Design:   design.NewStore(cfg.SecureCookies()),
		Limiter:  limiter,
		MediaDir: mediaDir,
		HSTS:     cfg.SecureCookies(),
	})

	// The seed endpoint uploads images and runs one long transaction, so
	// the write timeout is generous.
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      5 * time.Minute,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
