// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// ledger_test.go contains integration tests against a real PostgreSQL —
// the locking behavior under concurrency cannot be tested meaningfully
// with mocks. Tests are skipped if the database is unavailable.
package ledger

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"webbuilder/internal/database"
	"webbuilder/internal/models"
)

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

// testUser inserts a throwaway user; accounts and transactions cascade on
// cleanup.
func testUser(t *testing.T, db *sql.DB, email string) uuid.UUID {
	t.Helper()

	db.Exec("DELETE FROM users WHERE email = $1", email)
	var id uuid.UUID
	err := db.QueryRow(`
		INSERT INTO users (email, password_hash, display_name)
		VALUES ($1, 'x', 'Ledger Test') RETURNING id
	`, email).Scan(&id)
	if err != nil {
		t.Fatalf("insert test user: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM users WHERE id = $1", id) })
	return id
}

func TestBalanceWithoutAccount(t *testing.T) {
	db := testDB(t)
	lg := New(db)
	userID := testUser(t, db, "ledger-empty@test.local")

	balance, err := lg.Balance(context.Background(), userID)
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if balance != 0 {
		t.Errorf("balance = %d, want 0", balance)
	}
}

func TestCreditAndDebit(t *testing.T) {
	db := testDB(t)
	lg := New(db)
	ctx := context.Background()
	userID := testUser(t, db, "ledger-flow@test.local")

	bonus, err := lg.RecordBonus(ctx, userID, 500, "Hoş geldin bonusu")
	if err != nil {
		t.Fatalf("RecordBonus: %v", err)
	}
	if bonus.Amount != 500 || bonus.Kind != models.TxnBonus {
		t.Errorf("bonus = %+v", bonus)
	}

	debit, err := lg.TryDebit(ctx, userID, 200, "Site dışa aktarma", nil)
	if err != nil {
		t.Fatalf("TryDebit: %v", err)
	}
	if debit.Amount != -200 || debit.Kind != models.TxnExport {
		t.Errorf("debit = %+v", debit)
	}

	balance, err := lg.Balance(ctx, userID)
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if balance != 300 {
		t.Errorf("balance = %d, want 300", balance)
	}
}

func TestDebitInsufficient(t *testing.T) {
	db := testDB(t)
	lg := New(db)
	ctx := context.Background()
	userID := testUser(t, db, "ledger-poor@test.local")

	if _, err := lg.RecordBonus(ctx, userID, 100, "Bonus"); err != nil {
		t.Fatalf("RecordBonus: %v", err)
	}

	_, err := lg.TryDebit(ctx, userID, 200, "Site dışa aktarma", nil)
	var insufficient *InsufficientCreditsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientCreditsError, got %v", err)
	}
	if insufficient.Required != 200 || insufficient.Current != 100 {
		t.Errorf("error detail = %+v", insufficient)
	}

	// The failed debit must not touch the balance or the history.
	balance, _ := lg.Balance(ctx, userID)
	if balance != 100 {
		t.Errorf("balance = %d, want 100", balance)
	}
	history, err := lg.History(ctx, userID, 1, 20, "")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 1 {
		t.Errorf("got %d transactions, want only the bonus", len(history))
	}
}

func TestDebitNoAccount(t *testing.T) {
	db := testDB(t)
	lg := New(db)
	userID := testUser(t, db, "ledger-noaccount@test.local")

	_, err := lg.TryDebit(context.Background(), userID, 50, "Deneme", nil)
	var insufficient *InsufficientCreditsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientCreditsError, got %v", err)
	}
	if insufficient.Current != 0 {
		t.Errorf("Current = %d, want 0", insufficient.Current)
	}
}

func TestDebitRejectsNonPositive(t *testing.T) {
	db := testDB(t)
	lg := New(db)
	userID := testUser(t, db, "ledger-zero@test.local")

	for _, amount := range []int64{0, -10} {
		if _, err := lg.TryDebit(context.Background(), userID, amount, "x", nil); err == nil {
			t.Errorf("debit of %d should be rejected", amount)
		}
	}
	if _, err := lg.RecordBonus(context.Background(), userID, 0, "x"); err == nil {
		t.Error("zero credit should be rejected")
	}
}

// TestConcurrentDebits fans out more debits than the balance can cover and
// verifies the row lock serializes them: the account never goes negative
// and exactly the affordable number succeed.
func TestConcurrentDebits(t *testing.T) {
	db := testDB(t)
	lg := New(db)
	ctx := context.Background()
	userID := testUser(t, db, "ledger-concurrent@test.local")

	const (
		debit   = 200
		workers = 8
		funded  = 3 // balance covers exactly 3 debits
	)
	if _, err := lg.RecordBonus(ctx, userID, debit*funded, "Bonus"); err != nil {
		t.Fatalf("RecordBonus: %v", err)
	}

	var (
		wg           sync.WaitGroup
		mu           sync.Mutex
		succeeded    int
		insufficient int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := lg.TryDebit(ctx, userID, debit, "Site dışa aktarma", nil)

			mu.Lock()
			defer mu.Unlock()
			var ice *InsufficientCreditsError
			switch {
			case err == nil:
				succeeded++
			case errors.As(err, &ice):
				insufficient++
			default:
				t.Errorf("unexpected debit error: %v", err)
			}
		}()
	}
	wg.Wait()

	if succeeded != funded {
		t.Errorf("%d debits succeeded, want %d", succeeded, funded)
	}
	if insufficient != workers-funded {
		t.Errorf("%d debits refused, want %d", insufficient, workers-funded)
	}

	balance, err := lg.Balance(ctx, userID)
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if balance != 0 {
		t.Errorf("final balance = %d, want 0", balance)
	}

	// Conservation: the balance equals the sum of all transaction amounts.
	var sum int64
	if err := db.QueryRow(`
		SELECT COALESCE(SUM(amount), 0) FROM credit_transactions WHERE user_id = $1
	`, userID).Scan(&sum); err != nil {
		t.Fatalf("sum transactions: %v", err)
	}
	if sum != balance {
		t.Errorf("transaction sum %d != balance %d", sum, balance)
	}
}

func TestHistoryPagingAndFilter(t *testing.T) {
	db := testDB(t)
	lg := New(db)
	ctx := context.Background()
	userID := testUser(t, db, "ledger-history@test.local")

	if _, err := lg.RecordBonus(ctx, userID, 1000, "Bonus"); err != nil {
		t.Fatalf("RecordBonus: %v", err)
	}
	if _, err := lg.RecordCredit(ctx, userID, 200, "Kredi satın alma", "card", "ref-1"); err != nil {
		t.Fatalf("RecordCredit: %v", err)
	}
	if _, err := lg.TryDebit(ctx, userID, 200, "Site dışa aktarma", nil); err != nil {
		t.Fatalf("TryDebit: %v", err)
	}

	all, err := lg.History(ctx, userID, 1, 20, "")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d transactions, want 3", len(all))
	}
	// Newest first.
	if all[0].Kind != models.TxnExport || all[2].Kind != models.TxnBonus {
		t.Errorf("unexpected order: %s, %s, %s", all[0].Kind, all[1].Kind, all[2].Kind)
	}

	exports, err := lg.History(ctx, userID, 1, 20, models.TxnExport)
	if err != nil {
		t.Fatalf("History filtered: %v", err)
	}
	if len(exports) != 1 || exports[0].Kind != models.TxnExport {
		t.Errorf("filter returned %+v", exports)
	}

	// Page past the end is empty, not an error.
	empty, err := lg.History(ctx, userID, 5, 20, "")
	if err != nil {
		t.Fatalf("History page 5: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected empty page, got %d", len(empty))
	}
}
