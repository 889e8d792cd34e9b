// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"technogroop/internal/contact"
	"technogroop/internal/middleware"
	"technogroop/internal/seed"
)

// maxContactBody bounds the contact request body.
const maxContactBody = 64 << 10

// Seeder replaces CMS content with the baseline data set.
type Seeder interface {
	Run(ctx context.Context) ([]string, error)
}

// API groups the JSON endpoints.
type API struct {
	contact    *contact.Service
	seeder     Seeder
	seedSecret string
}

// NewAPI creates the JSON handlers. An empty seedSecret disables seeding.
func NewAPI(contactService *contact.Service, seeder Seeder, seedSecret string) *API {
	return &API{contact: contactService, seeder: seeder, seedSecret: seedSecret}
}

// Contact accepts a contact form submission and forwards it by email.
func (a *API) Contact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)

	var req contact.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	id, err := a.contact.Submit(r.Context(), req, middleware.ClientIP(r))
	if err != nil {
		var cerr *contact.Error
		switch {
		case errors.As(err, &cerr) && cerr.Client():
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": cerr.Message})
		case errors.As(err, &cerr):
			slog.Error("contact delivery failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": cerr.Message})
		default:
			slog.Error("contact submit failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "id": id})
}

// SeedUsage describes how to trigger a seed.
func (a *API) SeedUsage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Send POST request to seed the database",
		"usage":   "POST /api/seed?secret=YOUR_CMS_SECRET",
	})
}

// Seed replaces CMS content with the baseline data when ?secret matches the
// configured secret.
func (a *API) Seed(w http.ResponseWriter, r *http.Request) {
	if !a.authorized(r.URL.Query().Get("secret")) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		return
	}

	results, err := a.seeder.Run(r.Context())
	if errors.Is(err, seed.ErrInProgress) {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "Seed already running"})
		return
	}
	if err != nil {
		slog.Error("seed failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Seed failed",
			"details": err.Error(),
		})
		return
	}

	slog.Info("seed completed", "steps", len(results))
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Seed completed successfully",
		"results": results,
	})
}

func (a *API) authorized(secret string) bool {
	if a.seedSecret == "" || a.seeder == nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(a.seedSecret)) == 1
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
