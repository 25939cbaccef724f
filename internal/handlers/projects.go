// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"webbuilder/internal/middleware"
	"webbuilder/internal/models"
	"webbuilder/internal/slug"
	"webbuilder/internal/store"
)

// Projects groups the project CRUD handlers.
type Projects struct {
	projectStore *store.ProjectStore
	exportStore  *store.ExportStore
}

// NewProjects creates a new Projects handler group.
func NewProjects(projectStore *store.ProjectStore, exportStore *store.ExportStore) *Projects {
	return &Projects{projectStore: projectStore, exportStore: exportStore}
}

// projectRequest is the shared create/update payload.
type projectRequest struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Content      json.RawMessage `json:"content"`
	CSSFramework string          `json:"css_framework"`
}

// validate normalizes the request and returns the first error found.
func (req *projectRequest) validate() string {
	req.Name = strings.TrimSpace(req.Name)
	if msg := validateProject(req.Name, req.Description, string(req.Content)); msg != "" {
		return msg
	}
	if req.CSSFramework == "" {
		req.CSSFramework = string(models.FrameworkTailwind)
	}
	if !models.CSSFramework(req.CSSFramework).Valid() {
		return "Geçersiz CSS çatısı seçimi."
	}
	if len(req.Content) > 0 {
		content := &models.PageContent{}
		if err := json.Unmarshal(req.Content, content); err != nil {
			return "Sayfa içeriği çözümlenemedi."
		}
	}
	return ""
}

// List returns the user's projects, newest first.
func (h *Projects) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	items, err := h.projectStore.ListByUser(sess.UserID)
	if err != nil {
		respondInternal(w, "list projects failed", err)
		return
	}
	if items == nil {
		items = []models.Project{}
	}

	respondData(w, http.StatusOK, map[string]any{"projects": items})
}

// Get returns one project owned by the user, with its committed export count.
func (h *Projects) Get(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	project, ok := h.loadOwned(w, r, sess.UserID)
	if !ok {
		return
	}

	exportCount, err := h.exportStore.CountByProject(project.ID)
	if err != nil {
		respondInternal(w, "count exports failed", err)
		return
	}

	respondData(w, http.StatusOK, map[string]any{
		"project":      project,
		"export_count": exportCount,
	})
}

// Create inserts a new project for the user.
func (h *Projects) Create(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req projectRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Geçersiz istek gövdesi.")
		return
	}
	if msg := req.validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	project := &models.Project{
		UserID:       sess.UserID,
		Name:         req.Name,
		Slug:         slug.Generate(req.Name),
		Content:      req.Content,
		CSSFramework: models.CSSFramework(req.CSSFramework),
	}
	if req.Description != "" {
		project.Description = &req.Description
	}

	created, err := h.projectStore.Create(project)
	if err != nil {
		respondInternal(w, "create project failed", err)
		return
	}

	respondMessage(w, http.StatusCreated, "Proje oluşturuldu.", created)
}

// Update modifies an existing project owned by the user.
func (h *Projects) Update(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	project, ok := h.loadOwned(w, r, sess.UserID)
	if !ok {
		return
	}

	var req projectRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Geçersiz istek gövdesi.")
		return
	}
	if msg := req.validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	project.Name = req.Name
	project.Slug = slug.Generate(req.Name)
	project.Content = req.Content
	project.CSSFramework = models.CSSFramework(req.CSSFramework)
	project.Description = nil
	if req.Description != "" {
		project.Description = &req.Description
	}

	if err := h.projectStore.Update(project); err != nil {
		respondInternal(w, "update project failed", err)
		return
	}

	respondMessage(w, http.StatusOK, "Proje güncellendi.", project)
}

// Delete removes a project owned by the user.
func (h *Projects) Delete(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	project, ok := h.loadOwned(w, r, sess.UserID)
	if !ok {
		return
	}

	if err := h.projectStore.Delete(project.ID, sess.UserID); err != nil {
		respondInternal(w, "delete project failed", err)
		return
	}

	respondMessage(w, http.StatusOK, "Proje silindi.", nil)
}

// loadOwned parses the URL param and loads the project, writing the error
// response itself when the project is missing or owned by someone else.
func (h *Projects) loadOwned(w http.ResponseWriter, r *http.Request, userID uuid.UUID) (*models.Project, bool) {
	projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Geçersiz proje kimliği.")
		return nil, false
	}

	project, err := h.projectStore.FindByIDForUser(projectID, userID)
	if err != nil {
		respondInternal(w, "find project failed", err)
		return nil, false
	}
	if project == nil {
		respondError(w, http.StatusNotFound, "Proje bulunamadı.")
		return nil, false
	}
	return project, true
}
