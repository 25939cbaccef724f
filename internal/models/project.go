// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CSSFramework selects the markup/class conventions of a generated site.
type CSSFramework string

const (
	FrameworkTailwind  CSSFramework = "tailwind"
	FrameworkBootstrap CSSFramework = "bootstrap"
	FrameworkVanilla   CSSFramework = "vanilla"
)

// Valid reports whether f is one of the supported frameworks.
func (f CSSFramework) Valid() bool {
	switch f {
	case FrameworkTailwind, FrameworkBootstrap, FrameworkVanilla:
		return true
	}
	return false
}

// Label returns the human-readable name of the framework.
func (f CSSFramework) Label() string {
	switch f {
	case FrameworkBootstrap:
		return "Bootstrap 5"
	case FrameworkVanilla:
		return "Saf CSS (Vanilla)"
	default:
		return "Tailwind CSS"
	}
}

// Project represents one website draft owned by a user. Content holds the
// editor's component tree and style settings as JSONB.
type Project struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"user_id"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	Description  *string         `json:"description,omitempty"`
	Content      json.RawMessage `json:"content"`
	CSSFramework CSSFramework    `json:"css_framework"`
	IsExported   bool            `json:"is_exported"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// PageContent decodes the stored content column into the structured tree.
// A NULL or empty column yields an empty tree (default layout applies); a
// present but unparseable column is an error — the row is corrupt.
func (p *Project) PageContent() (*PageContent, error) {
	pc := &PageContent{}
	if len(p.Content) == 0 || string(p.Content) == "null" {
		return pc, nil
	}
	if err := json.Unmarshal(p.Content, pc); err != nil {
		return nil, fmt.Errorf("decode project content: %w", err)
	}
	return pc, nil
}
