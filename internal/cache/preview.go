// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// preview.go provides a Valkey-backed cache for preview bundles. Previews
// are free and read-heavy while a user iterates in the editor, so repeated
// requests for an unchanged project skip generation entirely. The key
// includes the project's updated-at timestamp — any save invalidates the
// cached entry implicitly.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"webbuilder/internal/generator"
	"webbuilder/internal/models"
)

const (
	// previewKeyPrefix namespaces preview keys in Valkey.
	previewKeyPrefix = "preview:"

	// DefaultPreviewTTL is how long a cached preview bundle stays valid.
	DefaultPreviewTTL = 5 * time.Minute
)

// PreviewCache stores generated preview bundles in Valkey.
type PreviewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPreviewCache creates a preview cache backed by the given Valkey client.
func NewPreviewCache(client *redis.Client, ttl time.Duration) *PreviewCache {
	if ttl == 0 {
		ttl = DefaultPreviewTTL
	}
	return &PreviewCache{client: client, ttl: ttl}
}

// Key builds the cache key for a project preview. The updated-at timestamp
// makes stale entries unreachable after any project save.
func Key(projectID uuid.UUID, fw models.CSSFramework, updatedAt time.Time) string {
	return fmt.Sprintf("%s:%s:%d", projectID, fw, updatedAt.UnixNano())
}

// Get retrieves a cached bundle. Returns false on miss or decode failure.
func (pc *PreviewCache) Get(ctx context.Context, key string) (*generator.Bundle, bool) {
	payload, err := pc.client.Get(ctx, previewKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("preview cache get error", "key", key, "error", err)
		return nil, false
	}

	var bundle generator.Bundle
	if err := json.Unmarshal(payload, &bundle); err != nil {
		slog.Warn("preview cache decode error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("preview cache hit", "key", key)
	return &bundle, true
}

// Set stores a bundle under the key with the configured TTL.
func (pc *PreviewCache) Set(ctx context.Context, key string, bundle *generator.Bundle) {
	payload, err := json.Marshal(bundle)
	if err != nil {
		slog.Warn("preview cache encode error", "key", key, "error", err)
		return
	}
	if err := pc.client.Set(ctx, previewKeyPrefix+key, payload, pc.ttl).Err(); err != nil {
		slog.Warn("preview cache set error", "key", key, "error", err)
	}
}
