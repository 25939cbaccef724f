// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL or Valkey are
// unavailable.
package handlers

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"webbuilder/internal/database"
	"webbuilder/internal/export"
	"webbuilder/internal/ledger"
	"webbuilder/internal/middleware"
	"webbuilder/internal/payments"
	"webbuilder/internal/session"
	"webbuilder/internal/store"
)

const (
	testExportCost   = 200
	testWelcomeBonus = 500
)

// failingGateway rejects every charge, for purchase failure tests.
type failingGateway struct{}

func (failingGateway) Charge(context.Context, uuid.UUID, string, int64) (*payments.ChargeResult, error) {
	return nil, errors.New("gateway declined")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
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
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		for _, pattern := range []string{"session:*", "preview:*"} {
			keys, _ := client.Keys(ctx, pattern).Result()
			if len(keys) > 0 {
				client.Del(ctx, keys...)
			}
		}
		client.Close()
	})

	return client
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB       *sql.DB
	Valkey   *redis.Client
	Sessions *session.Store
	Users    *store.UserStore
	Projects *store.ProjectStore
	Exports  *store.ExportStore
	Ledger   *ledger.Ledger
	Auth     *Auth
	Project  *Projects
	Export   *Export
	Credits  *Credits
}

// newTestEnv creates a complete test environment with all handler dependencies.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	sessions := session.NewStore(vk, false)
	users := store.NewUserStore(db)
	projects := store.NewProjectStore(db)
	exports := store.NewExportStore(db)
	lg := ledger.New(db)
	orchestrator := export.New(db, projects, exports, lg, nil, testExportCost)

	return &testEnv{
		DB:       db,
		Valkey:   vk,
		Sessions: sessions,
		Users:    users,
		Projects: projects,
		Exports:  exports,
		Ledger:   lg,
		Auth:     NewAuth(sessions, users, lg, testWelcomeBonus),
		Project:  NewProjects(projects, exports),
		Export:   NewExport(orchestrator),
		Credits:  NewCredits(lg, payments.SimulatedGateway{}),
	}
}

// registerUser creates a user through the handler flow and returns its ID.
func (e *testEnv) registerUser(t *testing.T, email string) uuid.UUID {
	t.Helper()

	e.DB.Exec("DELETE FROM users WHERE email = $1", email)
	user, err := e.Users.Create(email, "parola-123", "Test User")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	t.Cleanup(func() { e.DB.Exec("DELETE FROM users WHERE id = $1", user.ID) })
	return user.ID
}

// testSession creates session data for a fully authenticated user.
func testSession(userID uuid.UUID, email string) *session.Data {
	return &session.Data{
		UserID:      userID,
		Email:       email,
		DisplayName: "Test User",
	}
}

// withSession attaches session data to a request context.
func withSession(r *http.Request, sess *session.Data) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.SessionKey, sess)
	return r.WithContext(ctx)
}

// withURLParamAndSession adds both a chi URL param and session data.
func withURLParamAndSession(r *http.Request, key, value string, sess *session.Data) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, middleware.SessionKey, sess)
	return r.WithContext(ctx)
}
