// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"webbuilder/internal/ledger"
	"webbuilder/internal/middleware"
	"webbuilder/internal/models"
	"webbuilder/internal/payments"
)

// Credits groups the credit balance, history, and purchase handlers.
type Credits struct {
	ledger  *ledger.Ledger
	gateway payments.Gateway
}

// NewCredits creates a new Credits handler group.
func NewCredits(lg *ledger.Ledger, gateway payments.Gateway) *Credits {
	return &Credits{ledger: lg, gateway: gateway}
}

// Balance returns the user's current credit balance.
func (h *Credits) Balance(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	balance, err := h.ledger.Balance(r.Context(), sess.UserID)
	if err != nil {
		respondInternal(w, "balance lookup failed", err)
		return
	}

	respondData(w, http.StatusOK, map[string]any{"balance": balance})
}

// History returns one page of the user's credit transactions, newest
// first. Supports ?page=, ?limit=, and ?kind= (bonus|purchase|export).
func (h *Credits) History(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	kind := models.TransactionKind(r.URL.Query().Get("kind"))
	if kind != "" && !kind.Valid() {
		respondError(w, http.StatusBadRequest, "Geçersiz işlem türü.")
		return
	}

	items, err := h.ledger.History(r.Context(), sess.UserID, page, limit, kind)
	if err != nil {
		respondInternal(w, "transaction history failed", err)
		return
	}
	if items == nil {
		items = []models.Transaction{}
	}

	respondData(w, http.StatusOK, map[string]any{"transactions": items})
}

// Packages returns the credit package catalog.
func (h *Credits) Packages(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, map[string]any{"packages": payments.Packages})
}

// Purchase charges the selected package through the payment gateway and
// credits the account. The ledger entry records the gateway reference so
// the charge can be reconciled later.
func (h *Credits) Purchase(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req struct {
		PackageID string `json:"package_id"`
		Method    string `json:"method"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Geçersiz istek gövdesi.")
		return
	}

	pkg, ok := payments.FindPackage(req.PackageID)
	if !ok {
		respondError(w, http.StatusBadRequest, "Geçersiz paket seçimi.")
		return
	}
	if req.Method == "" {
		req.Method = "card"
	}

	charge, err := h.gateway.Charge(r.Context(), sess.UserID, req.Method, pkg.PriceKr)
	if err != nil {
		respondError(w, http.StatusPaymentRequired, "Ödeme alınamadı. Lütfen tekrar deneyin.")
		return
	}

	txn, err := h.ledger.RecordCredit(r.Context(), sess.UserID, pkg.Credits,
		fmt.Sprintf("Kredi satın alma: %s", pkg.Name), req.Method, charge.ReferenceID)
	if err != nil {
		// The charge succeeded but the credit did not land. Surface the
		// reference so support can reconcile manually.
		respondInternal(w, "credit after charge failed", fmt.Errorf("ref %s: %w", charge.ReferenceID, err))
		return
	}

	balance, err := h.ledger.Balance(r.Context(), sess.UserID)
	if err != nil {
		respondInternal(w, "balance after purchase failed", err)
		return
	}

	respondMessage(w, http.StatusOK, "Krediler hesabınıza eklendi.", map[string]any{
		"transaction": txn,
		"balance":     balance,
	})
}
