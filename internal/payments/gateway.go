// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package payments defines the payment gateway capability used by the
// credit purchase flow. The ledger and export paths never touch it — they
// must stay testable without any payment simulation in the loop.
package payments

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Package describes a purchasable credit bundle. The set is fixed at
// compile time; prices are in kuruş to avoid floating point.
type Package struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Credits int64  `json:"credits"`
	PriceKr int64  `json:"price_kr"`
}

// Packages is the catalog offered on the purchase endpoint.
var Packages = []Package{
	{ID: "starter", Name: "Başlangıç Paketi", Credits: 200, PriceKr: 4900},
	{ID: "standard", Name: "Standart Paket", Credits: 500, PriceKr: 9900},
	{ID: "pro", Name: "Profesyonel Paket", Credits: 1200, PriceKr: 19900},
}

// FindPackage looks up a catalog entry by ID.
func FindPackage(id string) (Package, bool) {
	for _, p := range Packages {
		if p.ID == id {
			return p, true
		}
	}
	return Package{}, false
}

// ChargeResult reports a completed gateway charge.
type ChargeResult struct {
	ReferenceID string
	Status      string
}

// Gateway is the capability the purchase handler depends on. Implementations
// must be safe for concurrent use.
type Gateway interface {
	// Charge bills the user's payment method and returns a gateway
	// reference. An error means nothing was billed.
	Charge(ctx context.Context, userID uuid.UUID, method string, amountKr int64) (*ChargeResult, error)
}

// SimulatedGateway is the deterministic development gateway: every charge
// succeeds with a fresh reference ID. Tests substitute their own Gateway
// when they need failures.
type SimulatedGateway struct{}

// Charge implements Gateway.
func (SimulatedGateway) Charge(_ context.Context, _ uuid.UUID, method string, amountKr int64) (*ChargeResult, error) {
	if amountKr <= 0 {
		return nil, fmt.Errorf("charge amount must be positive, got %d", amountKr)
	}
	if method == "" {
		return nil, fmt.Errorf("payment method is required")
	}
	return &ChargeResult{
		ReferenceID: "sim-" + uuid.NewString(),
		Status:      "completed",
	}, nil
}
