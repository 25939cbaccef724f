// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"webbuilder/internal/archive"
	"webbuilder/internal/export"
	"webbuilder/internal/ledger"
	"webbuilder/internal/middleware"
	"webbuilder/internal/models"
)

// Export groups the export and preview HTTP handlers.
type Export struct {
	orchestrator *export.Orchestrator
}

// NewExport creates a new Export handler group.
func NewExport(orchestrator *export.Orchestrator) *Export {
	return &Export{orchestrator: orchestrator}
}

// exportRequest is the optional export body. An absent or empty framework
// means the project's saved selection.
type exportRequest struct {
	Framework models.CSSFramework `json:"framework"`
}

// Download runs the paid export flow and streams the resulting zip. The
// charge commits before the first response byte; a client that aborts the
// download mid-stream has still paid for a committed export.
func (h *Export) Download(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Geçersiz proje kimliği.")
		return
	}

	// The body is optional; an empty POST exports with the saved framework.
	var req exportRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "Geçersiz istek gövdesi.")
			return
		}
	}
	if req.Framework != "" && !req.Framework.Valid() {
		respondError(w, http.StatusBadRequest, "Geçersiz CSS çatısı seçimi.")
		return
	}

	result, err := h.orchestrator.Export(r.Context(), sess.UserID, projectID, req.Framework)
	if err != nil {
		h.writeExportError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", result.Filename))

	if err := archive.Write(w, result.Bundle); err != nil {
		// Headers are gone; all we can do is log. The export record and
		// debit are committed — the user can re-download from history
		// support flow without a second charge.
		slog.Error("archive stream failed",
			"project_id", projectID, "export_id", result.Record.ID, "error", err)
	}
}

// writeExportError maps orchestrator errors onto the JSON envelope.
func (h *Export) writeExportError(w http.ResponseWriter, err error) {
	var insufficient *ledger.InsufficientCreditsError
	switch {
	case errors.Is(err, export.ErrProjectNotFound):
		respondError(w, http.StatusNotFound, "Proje bulunamadı.")
	case errors.Is(err, export.ErrInvalidContent):
		respondError(w, http.StatusInternalServerError, "Proje içeriği okunamadı.")
	case errors.As(err, &insufficient):
		respondError(w, http.StatusForbidden, fmt.Sprintf(
			"Yetersiz kredi: %d kredi gerekli, bakiyeniz %d.",
			insufficient.Required, insufficient.Current))
	default:
		respondInternal(w, "export failed", err)
	}
}

// Preview returns the generated bundle as JSON without charging credits.
// An optional ?framework= query overrides the project's saved selection.
func (h *Export) Preview(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Geçersiz proje kimliği.")
		return
	}

	override := models.CSSFramework(r.URL.Query().Get("framework"))
	bundle, fw, err := h.orchestrator.Preview(r.Context(), sess.UserID, projectID, override)
	if err != nil {
		h.writeExportError(w, err)
		return
	}

	respondData(w, http.StatusOK, map[string]any{
		"html":      bundle.HTML,
		"css":       bundle.CSS,
		"js":        bundle.JS,
		"framework": fw,
	})
}

// History lists the user's committed exports, newest first.
func (h *Export) History(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	items, err := h.orchestrator.History(sess.UserID)
	if err != nil {
		respondInternal(w, "export history failed", err)
		return
	}
	if items == nil {
		items = []models.ExportWithProject{}
	}

	respondData(w, http.StatusOK, map[string]any{
		"exports":     items,
		"export_cost": h.orchestrator.Cost(),
	})
}
