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

const projectColumns = `id, user_id, name, slug, description, content, css_framework, is_exported, created_at, updated_at`

// ProjectStore handles all project-related database operations.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore creates a new ProjectStore with the given database connection.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

func scanProject(row interface{ Scan(...any) error }) (*models.Project, error) {
	p := &models.Project{}
	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Slug, &p.Description, &p.Content,
		&p.CSSFramework, &p.IsExported, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListByUser returns the user's projects, newest first.
func (s *ProjectStore) ListByUser(userID uuid.UUID) ([]models.Project, error) {
	rows, err := s.db.Query(`
		SELECT `+projectColumns+`
		FROM projects
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var items []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByIDForUser retrieves a project only when it belongs to the given
// user. Returns nil if absent or owned by someone else — callers cannot
// distinguish the two, by construction.
func (s *ProjectStore) FindByIDForUser(id, userID uuid.UUID) (*models.Project, error) {
	p, err := scanProject(s.db.QueryRow(`
		SELECT `+projectColumns+`
		FROM projects
		WHERE id = $1 AND user_id = $2
	`, id, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project: %w", err)
	}
	return p, nil
}

// Create inserts a new project and returns it with generated fields.
func (s *ProjectStore) Create(p *models.Project) (*models.Project, error) {
	created, err := scanProject(s.db.QueryRow(`
		INSERT INTO projects (user_id, name, slug, description, content, css_framework)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+projectColumns+`
	`, p.UserID, p.Name, p.Slug, p.Description, p.Content, p.CSSFramework))
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return created, nil
}

// Update modifies a project's name, content, and framework selection.
func (s *ProjectStore) Update(p *models.Project) error {
	_, err := s.db.Exec(`
		UPDATE projects SET
			name = $1, slug = $2, description = $3, content = $4,
			css_framework = $5, updated_at = NOW()
		WHERE id = $6 AND user_id = $7
	`, p.Name, p.Slug, p.Description, p.Content, p.CSSFramework, p.ID, p.UserID)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// Delete removes a project owned by the user.
func (s *ProjectStore) Delete(id, userID uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM projects WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

// MarkExportedTx flags a project as exported inside the caller's
// transaction, so the flag commits together with the debit and the export
// record.
func (s *ProjectStore) MarkExportedTx(ctx context.Context, tx *sql.Tx, id uuid.UUID) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE projects SET is_exported = TRUE, updated_at = NOW() WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("mark exported: %w", err)
	}
	return nil
}
