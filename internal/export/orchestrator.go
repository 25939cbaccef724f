// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package export drives a paid export from request to download. The flow
// is strictly ordered: ownership check, affordability pre-check, code
// generation, then a single SQL transaction holding the debit, the export
// record, and the project's exported flag. Generation happens before any
// money moves, so a generation failure can never leave a charge behind,
// and a failed commit leaves no partial rows.
package export

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"webbuilder/internal/archive"
	"webbuilder/internal/cache"
	"webbuilder/internal/generator"
	"webbuilder/internal/ledger"
	"webbuilder/internal/models"
	"webbuilder/internal/store"
)

var (
	// ErrProjectNotFound covers both a missing project and one owned by
	// another user. Handlers must not distinguish the two.
	ErrProjectNotFound = errors.New("project not found")

	// ErrInvalidContent means the stored content tree could not be parsed.
	// No credits are charged.
	ErrInvalidContent = errors.New("project content is invalid")
)

// Result is a completed export ready for delivery.
type Result struct {
	Bundle   generator.Bundle
	Filename string
	Record   *models.ExportRecord
}

// Orchestrator coordinates the stores, the ledger, and the generator.
type Orchestrator struct {
	db       *sql.DB
	projects *store.ProjectStore
	exports  *store.ExportStore
	ledger   *ledger.Ledger
	preview  *cache.PreviewCache
	cost     int64
	now      func() time.Time
}

// New creates an Orchestrator. cost is the credit price of one export;
// preview may be nil to disable preview caching.
func New(db *sql.DB, projects *store.ProjectStore, exports *store.ExportStore, lg *ledger.Ledger, preview *cache.PreviewCache, cost int64) *Orchestrator {
	return &Orchestrator{
		db:       db,
		projects: projects,
		exports:  exports,
		ledger:   lg,
		preview:  preview,
		cost:     cost,
		now:      time.Now,
	}
}

// Cost returns the credit price of one export.
func (o *Orchestrator) Cost() int64 { return o.cost }

// Export runs the full paid export flow for one project. framework
// overrides the project's saved selection when valid; the committed record
// stores whichever framework was actually generated. On success the
// returned Result carries the generated bundle, the download filename, and
// the committed export record. Sentinel errors: ErrProjectNotFound,
// ErrInvalidContent, and *ledger.InsufficientCreditsError.
func (o *Orchestrator) Export(ctx context.Context, userID, projectID uuid.UUID, framework models.CSSFramework) (*Result, error) {
	project, err := o.projects.FindByIDForUser(projectID, userID)
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	fw := project.CSSFramework
	if framework.Valid() {
		fw = framework
	}

	// Cheap read before the expensive generation step. The authoritative
	// check happens again under the row lock inside the transaction.
	balance, err := o.ledger.Balance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check balance: %w", err)
	}
	if balance < o.cost {
		return nil, &ledger.InsufficientCreditsError{Required: o.cost, Current: balance}
	}

	content, err := project.PageContent()
	if err != nil {
		slog.Warn("export rejected, content unparseable",
			"project_id", project.ID, "error", err)
		return nil, ErrInvalidContent
	}

	bundle := generator.Generate(content, fw, project.Name, o.now())

	tx, err := o.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin export: %w", err)
	}
	defer tx.Rollback()

	ref := project.ID.String()
	if _, err := o.ledger.TryDebitTx(ctx, tx, userID, o.cost,
		fmt.Sprintf("Site dışa aktarma: %s", project.Name), &ref); err != nil {
		return nil, err
	}

	record, err := o.exports.CreateTx(ctx, tx, &models.ExportRecord{
		ProjectID:    project.ID,
		UserID:       userID,
		Format:       "zip",
		CSSFramework: fw,
		CreditsUsed:  o.cost,
	})
	if err != nil {
		return nil, err
	}

	if err := o.projects.MarkExportedTx(ctx, tx, project.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit export: %w", err)
	}

	slog.Info("export committed",
		"project_id", project.ID,
		"user_id", userID,
		"framework", fw,
		"credits_used", o.cost,
	)

	return &Result{
		Bundle:   bundle,
		Filename: archive.Filename(project.Name),
		Record:   record,
	}, nil
}

// Preview generates the bundle for a project without charging or recording
// anything. framework overrides the project's saved selection when valid,
// letting the editor compare frameworks before committing to one. The
// resolved framework is returned alongside the bundle. Results are cached
// per (project, framework, updated-at) when a cache is wired.
func (o *Orchestrator) Preview(ctx context.Context, userID, projectID uuid.UUID, framework models.CSSFramework) (*generator.Bundle, models.CSSFramework, error) {
	project, err := o.projects.FindByIDForUser(projectID, userID)
	if err != nil {
		return nil, "", fmt.Errorf("load project: %w", err)
	}
	if project == nil {
		return nil, "", ErrProjectNotFound
	}

	fw := project.CSSFramework
	if framework.Valid() {
		fw = framework
	}

	var key string
	if o.preview != nil {
		key = cache.Key(project.ID, fw, project.UpdatedAt)
		if bundle, ok := o.preview.Get(ctx, key); ok {
			return bundle, fw, nil
		}
	}

	content, err := project.PageContent()
	if err != nil {
		return nil, "", ErrInvalidContent
	}

	bundle := generator.Generate(content, fw, project.Name, o.now())
	if o.preview != nil {
		o.preview.Set(ctx, key, &bundle)
	}
	return &bundle, fw, nil
}

// History returns the user's committed exports, newest first.
func (o *Orchestrator) History(userID uuid.UUID) ([]models.ExportWithProject, error) {
	return o.exports.ListByUser(userID)
}
