// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ExportRecord is the durable proof that a specific charge corresponds to a
// specific generated bundle. Exactly one row per committed export.
type ExportRecord struct {
	ID           uuid.UUID    `json:"id"`
	ProjectID    uuid.UUID    `json:"project_id"`
	UserID       uuid.UUID    `json:"user_id"`
	Format       string       `json:"format"`
	CSSFramework CSSFramework `json:"css_framework"`
	CreditsUsed  int64        `json:"credits_used"`
	CreatedAt    time.Time    `json:"created_at"`
}

// ExportWithProject joins an export record with its project's name for the
// history listing.
type ExportWithProject struct {
	ExportRecord
	ProjectName string `json:"project_name"`
}
