// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ledger owns the authoritative credit balance per user and its
// append-only transaction history. Every balance mutation and its matching
// transaction row are written inside one SQL transaction; debits lock the
// account row first, so concurrent debits for the same user serialize at
// the database and can never jointly overdraw the account.
package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"webbuilder/internal/models"
)

// InsufficientCreditsError is returned by TryDebit when the balance cannot
// cover the requested amount. The account is left untouched.
type InsufficientCreditsError struct {
	Required int64
	Current  int64
}

func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits: required %d, current %d", e.Required, e.Current)
}

// Ledger provides atomic credit and debit operations backed by the
// credit_accounts and credit_transactions tables.
type Ledger struct {
	db *sql.DB
}

// New creates a Ledger on the given database connection.
func New(db *sql.DB) *Ledger {
	return &Ledger{db: db}
}

// Balance returns the user's current credit balance. A user without an
// account row has a balance of zero.
func (l *Ledger) Balance(ctx context.Context, userID uuid.UUID) (int64, error) {
	var balance int64
	err := l.db.QueryRowContext(ctx, `
		SELECT balance FROM credit_accounts WHERE user_id = $1
	`, userID).Scan(&balance)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get balance: %w", err)
	}
	return balance, nil
}

// RecordBonus credits welcome credits to a user, creating the account row
// if needed. Called once at registration.
func (l *Ledger) RecordBonus(ctx context.Context, userID uuid.UUID, amount int64, description string) (*models.Transaction, error) {
	return l.credit(ctx, userID, models.TxnBonus, amount, description, nil, nil)
}

// RecordCredit appends a purchase credit. Used by the payment flow after
// the gateway confirms the charge.
func (l *Ledger) RecordCredit(ctx context.Context, userID uuid.UUID, amount int64, description, paymentMethod, referenceID string) (*models.Transaction, error) {
	return l.credit(ctx, userID, models.TxnPurchase, amount, description, &paymentMethod, &referenceID)
}

// credit increments the balance and appends the matching positive
// transaction row in one SQL transaction.
func (l *Ledger) credit(ctx context.Context, userID uuid.UUID, kind models.TransactionKind, amount int64, description string, paymentMethod, referenceID *string) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("credit amount must be positive, got %d", amount)
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin credit: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO credit_accounts (user_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET balance = credit_accounts.balance + $2, updated_at = NOW()
	`, userID, amount)
	if err != nil {
		return nil, fmt.Errorf("apply credit: %w", err)
	}

	record, err := insertTransaction(ctx, tx, &models.Transaction{
		UserID:        userID,
		Kind:          kind,
		Amount:        amount,
		Description:   description,
		PaymentMethod: paymentMethod,
		ReferenceID:   referenceID,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit credit: %w", err)
	}
	return record, nil
}

// TryDebit atomically checks the balance and, if sufficient, decrements it
// and appends a negative transaction row. On insufficient funds it returns
// *InsufficientCreditsError and changes nothing.
func (l *Ledger) TryDebit(ctx context.Context, userID uuid.UUID, amount int64, description string, referenceID *string) (*models.Transaction, error) {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin debit: %w", err)
	}
	defer tx.Rollback()

	record, err := l.TryDebitTx(ctx, tx, userID, amount, description, referenceID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit debit: %w", err)
	}
	return record, nil
}

// TryDebitTx is TryDebit inside a caller-owned transaction, so a debit can
// commit together with other rows (the export record, the project flag).
// The caller must commit or roll back tx. The account row is locked with
// FOR UPDATE: a concurrent debit for the same user blocks here until this
// transaction finishes, then re-reads the committed balance.
func (l *Ledger) TryDebitTx(ctx context.Context, tx *sql.Tx, userID uuid.UUID, amount int64, description string, referenceID *string) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("debit amount must be positive, got %d", amount)
	}

	var balance int64
	err := tx.QueryRowContext(ctx, `
		SELECT balance FROM credit_accounts WHERE user_id = $1 FOR UPDATE
	`, userID).Scan(&balance)
	if err == sql.ErrNoRows {
		balance = 0
	} else if err != nil {
		return nil, fmt.Errorf("lock account: %w", err)
	}

	if balance < amount {
		return nil, &InsufficientCreditsError{Required: amount, Current: balance}
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE credit_accounts
		SET balance = balance - $2, updated_at = NOW()
		WHERE user_id = $1
	`, userID, amount)
	if err != nil {
		return nil, fmt.Errorf("apply debit: %w", err)
	}

	return insertTransaction(ctx, tx, &models.Transaction{
		UserID:      userID,
		Kind:        models.TxnExport,
		Amount:      -amount,
		Description: description,
		ReferenceID: referenceID,
	})
}

// insertTransaction appends one row to the audit trail and returns it.
func insertTransaction(ctx context.Context, tx *sql.Tx, t *models.Transaction) (*models.Transaction, error) {
	record := &models.Transaction{}
	err := tx.QueryRowContext(ctx, `
		INSERT INTO credit_transactions (user_id, kind, amount, description, payment_method, payment_status, reference_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, kind, amount, description, payment_method, payment_status, reference_id, created_at
	`, t.UserID, t.Kind, t.Amount, t.Description, t.PaymentMethod, t.PaymentStatus, t.ReferenceID).Scan(
		&record.ID, &record.UserID, &record.Kind, &record.Amount, &record.Description,
		&record.PaymentMethod, &record.PaymentStatus, &record.ReferenceID, &record.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}
	return record, nil
}

// History returns one page of the user's transactions, newest first,
// optionally filtered by kind. Page numbers start at 1.
func (l *Ledger) History(ctx context.Context, userID uuid.UUID, page, limit int, kind models.TransactionKind) ([]models.Transaction, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := `
		SELECT id, user_id, kind, amount, description, payment_method, payment_status, reference_id, created_at
		FROM credit_transactions
		WHERE user_id = $1`
	args := []any{userID}
	if kind != "" {
		query += ` AND kind = $2`
		args = append(args, kind)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT %d OFFSET %d`, limit, offset)

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var items []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Kind, &t.Amount, &t.Description,
			&t.PaymentMethod, &t.PaymentStatus, &t.ReferenceID, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		items = append(items, t)
	}
	return items, rows.Err()
}
