// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package payments

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestFindPackage(t *testing.T) {
	for _, p := range Packages {
		found, ok := FindPackage(p.ID)
		if !ok || found.Credits != p.Credits {
			t.Errorf("FindPackage(%q) = %+v, %v", p.ID, found, ok)
		}
	}
	if _, ok := FindPackage("mega"); ok {
		t.Error("unknown package should not be found")
	}
}

func TestSimulatedGatewayCharge(t *testing.T) {
	gw := SimulatedGateway{}
	result, err := gw.Charge(context.Background(), uuid.New(), "card", 4900)
	if err != nil {
		t.Fatalf("Charge: %v", err)
	}
	if result.ReferenceID == "" || result.Status != "completed" {
		t.Errorf("result = %+v", result)
	}

	other, _ := gw.Charge(context.Background(), uuid.New(), "card", 4900)
	if other.ReferenceID == result.ReferenceID {
		t.Error("every charge should get a fresh reference")
	}
}

func TestSimulatedGatewayRejectsBadInput(t *testing.T) {
	gw := SimulatedGateway{}
	if _, err := gw.Charge(context.Background(), uuid.New(), "card", 0); err == nil {
		t.Error("zero amount should be rejected")
	}
	if _, err := gw.Charge(context.Background(), uuid.New(), "card", -100); err == nil {
		t.Error("negative amount should be rejected")
	}
	if _, err := gw.Charge(context.Background(), uuid.New(), "", 100); err == nil {
		t.Error("missing method should be rejected")
	}
}
