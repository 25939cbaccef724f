// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"webbuilder/internal/models"
)

// historyLimit caps the export history listing.
const historyLimit = 50

// ExportStore handles the export records table.
type ExportStore struct {
	db *sql.DB
}

// NewExportStore creates a new ExportStore with the given database connection.
func NewExportStore(db *sql.DB) *ExportStore {
	return &ExportStore{db: db}
}

// CreateTx inserts the export record inside the caller's transaction —
// the record must commit atomically with the credit debit.
func (s *ExportStore) CreateTx(ctx context.Context, tx *sql.Tx, r *models.ExportRecord) (*models.ExportRecord, error) {
	created := &models.ExportRecord{}
	err := tx.QueryRowContext(ctx, `
		INSERT INTO exports (project_id, user_id, format, css_framework, credits_used)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, project_id, user_id, format, css_framework, credits_used, created_at
	`, r.ProjectID, r.UserID, r.Format, r.CSSFramework, r.CreditsUsed).Scan(
		&created.ID, &created.ProjectID, &created.UserID, &created.Format,
		&created.CSSFramework, &created.CreditsUsed, &created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create export record: %w", err)
	}
	return created, nil
}

// ListByUser returns the user's export history joined with project names,
// newest first, capped at 50 entries.
func (s *ExportStore) ListByUser(userID uuid.UUID) ([]models.ExportWithProject, error) {
	rows, err := s.db.Query(`
		SELECT e.id, e.project_id, e.user_id, e.format, e.css_framework, e.credits_used, e.created_at,
		       p.name
		FROM exports e
		JOIN projects p ON p.id = e.project_id
		WHERE e.user_id = $1
		ORDER BY e.created_at DESC
		LIMIT $2
	`, userID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("list exports: %w", err)
	}
	defer rows.Close()

	var items []models.ExportWithProject
	for rows.Next() {
		var e models.ExportWithProject
		if err := rows.Scan(
			&e.ID, &e.ProjectID, &e.UserID, &e.Format,
			&e.CSSFramework, &e.CreditsUsed, &e.CreatedAt, &e.ProjectName,
		); err != nil {
			return nil, fmt.Errorf("scan export: %w", err)
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

// CountByProject returns the number of committed exports for a project.
func (s *ExportStore) CountByProject(projectID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM exports WHERE project_id = $1`, projectID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count exports: %w", err)
	}
	return count, nil
}
