package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates the database with initial development data: a demo user
// with welcome credits and one sample project. No-op when users exist.
func Seed(db *sql.DB, welcomeBonus int64) error {
	// Check if any users exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback()

	var userID string
	err = tx.QueryRow(`
		INSERT INTO users (email, password_hash, display_name)
		VALUES ($1, $2, $3)
		RETURNING id
	`, "demo@webbuilder.local", string(hash), "Demo").Scan(&userID)
	if err != nil {
		return fmt.Errorf("seed insert user: %w", err)
	}

	// Welcome bonus: account row plus the opening ledger entry, matching
	// what registration does through the ledger.
	if _, err := tx.Exec(`
		INSERT INTO credit_accounts (user_id, balance) VALUES ($1, $2)
	`, userID, welcomeBonus); err != nil {
		return fmt.Errorf("seed account: %w", err)
	}
	if _, err := tx.Exec(`
		INSERT INTO credit_transactions (user_id, kind, amount, description)
		VALUES ($1, 'bonus', $2, 'Hoş geldin bonusu')
	`, userID, welcomeBonus); err != nil {
		return fmt.Errorf("seed bonus transaction: %w", err)
	}

	sampleContent := `{
		"components": [
			{"type": "hero", "data": {"title": "Demo Sitesi", "subtitle": "Web Builder ile dakikalar içinde hazır."}},
			{"type": "about", "data": {}},
			{"type": "contact", "data": {"email": "demo@webbuilder.local"}}
		],
		"settings": {"responsive": true}
	}`
	if _, err := tx.Exec(`
		INSERT INTO projects (user_id, name, slug, content, css_framework)
		VALUES ($1, $2, $3, $4, $5)
	`, userID, "Demo Sitesi", "demo-sitesi", sampleContent, "tailwind"); err != nil {
		return fmt.Errorf("seed project: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded with demo user",
		"email", "demo@webbuilder.local",
		"password", "demo1234",
		"credits", welcomeBonus,
	)

	return nil
}
