// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// orchestrator_test.go runs the export flow against a real PostgreSQL —
// the whole point of the orchestrator is its commit atomicity. Tests are
// skipped if the database is unavailable.
package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"webbuilder/internal/database"
	"webbuilder/internal/ledger"
	"webbuilder/internal/models"
	"webbuilder/internal/store"
)

const testCost = 200

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "webbuilder")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "webbuilder")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testEnv bundles the orchestrator with its stores and a funded user.
type testEnv struct {
	db           *sql.DB
	orchestrator *Orchestrator
	ledger       *ledger.Ledger
	projects     *store.ProjectStore
	exports      *store.ExportStore
	userID       uuid.UUID
}

func newTestEnv(t *testing.T, email string, credits int64) *testEnv {
	t.Helper()

	db := testDB(t)

	db.Exec("DELETE FROM users WHERE email = $1", email)
	var userID uuid.UUID
	err := db.QueryRow(`
		INSERT INTO users (email, password_hash, display_name)
		VALUES ($1, 'x', 'Export Test') RETURNING id
	`, email).Scan(&userID)
	if err != nil {
		t.Fatalf("insert test user: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM users WHERE id = $1", userID) })

	lg := ledger.New(db)
	if credits > 0 {
		if _, err := lg.RecordBonus(context.Background(), userID, credits, "Bonus"); err != nil {
			t.Fatalf("fund test user: %v", err)
		}
	}

	projects := store.NewProjectStore(db)
	exports := store.NewExportStore(db)
	return &testEnv{
		db:           db,
		orchestrator: New(db, projects, exports, lg, nil, testCost),
		ledger:       lg,
		projects:     projects,
		exports:      exports,
		userID:       userID,
	}
}

func (e *testEnv) createProject(t *testing.T, name string, content json.RawMessage) *models.Project {
	t.Helper()

	project, err := e.projects.Create(&models.Project{
		UserID:       e.userID,
		Name:         name,
		Slug:         "export-" + uuid.NewString()[:8],
		Content:      content,
		CSSFramework: models.FrameworkTailwind,
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	return project
}

func TestExportCommitsEverythingTogether(t *testing.T) {
	env := newTestEnv(t, "export-ok@test.local", 500)
	project := env.createProject(t, "Kafe Sitesi",
		json.RawMessage(`{"components":[{"type":"hero","data":{"title":"Merhaba"}}]}`))

	ctx := context.Background()
	result, err := env.orchestrator.Export(ctx, env.userID, project.ID, "")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	if result.Filename != "kafe-sitesi.zip" {
		t.Errorf("Filename = %q, want kafe-sitesi.zip", result.Filename)
	}
	if !strings.Contains(result.Bundle.HTML, "Merhaba") {
		t.Error("bundle should contain the project content")
	}
	if result.Record.CreditsUsed != testCost {
		t.Errorf("CreditsUsed = %d, want %d", result.Record.CreditsUsed, testCost)
	}

	balance, _ := env.ledger.Balance(ctx, env.userID)
	if balance != 500-testCost {
		t.Errorf("balance = %d, want %d", balance, 500-testCost)
	}

	history, err := env.exports.ListByUser(env.userID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("got %d export records, want 1", len(history))
	}

	after, _ := env.projects.FindByIDForUser(project.ID, env.userID)
	if !after.IsExported {
		t.Error("project should be flagged exported")
	}
}

func TestExportFrameworkOverrideRecorded(t *testing.T) {
	env := newTestEnv(t, "export-override@test.local", 500)
	project := env.createProject(t, "Seçmeli Site", nil)

	ctx := context.Background()
	result, err := env.orchestrator.Export(ctx, env.userID, project.ID, models.FrameworkVanilla)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	if strings.Contains(result.Bundle.HTML, "cdn.tailwindcss.com") {
		t.Error("vanilla override should drop the Tailwind CDN")
	}
	if result.Record.CSSFramework != models.FrameworkVanilla {
		t.Errorf("record framework = %s, want the generated vanilla", result.Record.CSSFramework)
	}

	// The project keeps its saved selection; the override is per-export.
	after, _ := env.projects.FindByIDForUser(project.ID, env.userID)
	if after.CSSFramework != models.FrameworkTailwind {
		t.Errorf("saved framework = %s, want untouched tailwind", after.CSSFramework)
	}
}

func TestExportInsufficientCreditsChangesNothing(t *testing.T) {
	env := newTestEnv(t, "export-poor@test.local", testCost-1)
	project := env.createProject(t, "Fakir Site", nil)

	ctx := context.Background()
	_, err := env.orchestrator.Export(ctx, env.userID, project.ID, "")
	var insufficient *ledger.InsufficientCreditsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientCreditsError, got %v", err)
	}

	balance, _ := env.ledger.Balance(ctx, env.userID)
	if balance != testCost-1 {
		t.Errorf("balance = %d, want untouched %d", balance, testCost-1)
	}
	history, _ := env.exports.ListByUser(env.userID)
	if len(history) != 0 {
		t.Errorf("refused export must not leave a record, got %d", len(history))
	}
	after, _ := env.projects.FindByIDForUser(project.ID, env.userID)
	if after.IsExported {
		t.Error("refused export must not flag the project")
	}
}

func TestExportProjectNotFound(t *testing.T) {
	env := newTestEnv(t, "export-missing@test.local", 500)

	_, err := env.orchestrator.Export(context.Background(), env.userID, uuid.New(), "")
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestExportForeignProjectLooksMissing(t *testing.T) {
	owner := newTestEnv(t, "export-owner@test.local", 500)
	thief := newTestEnv(t, "export-thief@test.local", 500)
	project := owner.createProject(t, "Gizli Site", nil)

	_, err := thief.orchestrator.Export(context.Background(), thief.userID, project.ID, "")
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("foreign project must look missing, got %v", err)
	}

	balance, _ := thief.ledger.Balance(context.Background(), thief.userID)
	if balance != 500 {
		t.Errorf("thief balance = %d, want untouched 500", balance)
	}
}

func TestExportInvalidContentNotCharged(t *testing.T) {
	// A JSON string is valid JSONB but not a content tree.
	env := newTestEnv(t, "export-corrupt@test.local", 500)
	project := env.createProject(t, "Bozuk Site", json.RawMessage(`"bozuk"`))

	ctx := context.Background()
	_, err := env.orchestrator.Export(ctx, env.userID, project.ID, "")
	if !errors.Is(err, ErrInvalidContent) {
		t.Fatalf("expected ErrInvalidContent, got %v", err)
	}

	balance, _ := env.ledger.Balance(ctx, env.userID)
	if balance != 500 {
		t.Errorf("balance = %d, want untouched 500", balance)
	}
}

// TestExportConcurrentSingleCharge funds exactly one export and fires
// several concurrently: exactly one commits, the rest are refused, and the
// export history shows a single record.
func TestExportConcurrentSingleCharge(t *testing.T) {
	env := newTestEnv(t, "export-race@test.local", testCost)
	project := env.createProject(t, "Yarış Sitesi", nil)

	const workers = 4
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		refused   int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.orchestrator.Export(context.Background(), env.userID, project.ID, "")

			mu.Lock()
			defer mu.Unlock()
			var ice *ledger.InsufficientCreditsError
			switch {
			case err == nil:
				succeeded++
			case errors.As(err, &ice):
				refused++
			default:
				t.Errorf("unexpected export error: %v", err)
			}
		}()
	}
	wg.Wait()

	if succeeded != 1 {
		t.Errorf("%d exports succeeded, want exactly 1", succeeded)
	}
	if refused != workers-1 {
		t.Errorf("%d exports refused, want %d", refused, workers-1)
	}

	history, _ := env.exports.ListByUser(env.userID)
	if len(history) != 1 {
		t.Errorf("got %d export records, want 1", len(history))
	}
	balance, _ := env.ledger.Balance(context.Background(), env.userID)
	if balance != 0 {
		t.Errorf("final balance = %d, want 0", balance)
	}
}

func TestPreviewDoesNotCharge(t *testing.T) {
	env := newTestEnv(t, "export-preview@test.local", 500)
	project := env.createProject(t, "Önizleme", nil)

	ctx := context.Background()
	bundle, fw, err := env.orchestrator.Preview(ctx, env.userID, project.ID, "")
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if fw != models.FrameworkTailwind {
		t.Errorf("resolved framework = %s, want the saved tailwind", fw)
	}
	if !strings.Contains(bundle.HTML, "cdn.tailwindcss.com") {
		t.Error("preview should use the project's saved framework")
	}

	// Framework override changes the output without touching the project.
	vanilla, fw, err := env.orchestrator.Preview(ctx, env.userID, project.ID, models.FrameworkVanilla)
	if err != nil {
		t.Fatalf("Preview override: %v", err)
	}
	if fw != models.FrameworkVanilla {
		t.Errorf("resolved framework = %s, want the vanilla override", fw)
	}
	if strings.Contains(vanilla.HTML, "cdn.tailwindcss.com") {
		t.Error("override to vanilla should drop the Tailwind CDN")
	}

	balance, _ := env.ledger.Balance(ctx, env.userID)
	if balance != 500 {
		t.Errorf("preview must be free, balance = %d", balance)
	}
	history, _ := env.exports.ListByUser(env.userID)
	if len(history) != 0 {
		t.Errorf("preview must not create export records, got %d", len(history))
	}
}
