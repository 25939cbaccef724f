// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionKind classifies an entry in the credit ledger.
type TransactionKind string

const (
	TxnBonus    TransactionKind = "bonus"    // welcome credits at registration
	TxnPurchase TransactionKind = "purchase" // credit package bought
	TxnExport   TransactionKind = "export"   // site export charge
)

// Valid reports whether k is a known transaction kind.
func (k TransactionKind) Valid() bool {
	switch k {
	case TxnBonus, TxnPurchase, TxnExport:
		return true
	}
	return false
}

// Transaction is one append-only row of a user's credit history. Amount is
// signed: credits positive, debits negative. The account balance always
// equals the sum of its transaction amounts.
type Transaction struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	Kind          TransactionKind `json:"kind"`
	Amount        int64           `json:"amount"`
	Description   string          `json:"description"`
	PaymentMethod *string         `json:"payment_method,omitempty"`
	PaymentStatus *string         `json:"payment_status,omitempty"`
	ReferenceID   *string         `json:"reference_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CreditAccount is the authoritative balance row for one user.
type CreditAccount struct {
	UserID    uuid.UUID `json:"user_id"`
	Balance   int64     `json:"balance"`
	UpdatedAt time.Time `json:"updated_at"`
}
