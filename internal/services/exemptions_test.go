package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	types "github.com/funkyrave/funky-backend/internal/domain"
	apperrors "github.com/funkyrave/funky-backend/internal/pkg/errors"

	"github.com/funkyrave/funky-backend/internal/data/repos/testutil"
)

func TestSetExemptCap(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := testutil.SeedAdmin(t, ctx, env.tx, "cap-admin@test.dev", 0)

	holders := make([]*types.Account, 0, types.ExemptionCap+1)
	for i := 0; i < types.ExemptionCap+1; i++ {
		holders = append(holders, testutil.SeedAccount(t, ctx, env.tx,
			fmt.Sprintf("cap-holder-%d@test.dev", i), types.AccountKindUser, 0))
	}

	for i := 0; i < types.ExemptionCap; i++ {
		if err := env.exemptions.SetExempt(asCaller(admin.ID), SetExemptInput{
			AccountID:  holders[i].ID,
			Exempt:     true,
			ReasonCode: "partner",
			RequestID:  fmt.Sprintf("req-%d", i),
			ApproverID: admin.ID,
		}); err != nil {
			t.Fatalf("SetExempt #%d: %v", i, err)
		}
	}

	err := env.exemptions.SetExempt(asCaller(admin.ID), SetExemptInput{
		AccountID:  holders[types.ExemptionCap].ID,
		Exempt:     true,
		ReasonCode: "partner",
		RequestID:  "req-over",
		ApproverID: admin.ID,
	})
	if !errors.Is(err, apperrors.ErrExemptAddressCapReached) {
		t.Fatalf("expected ErrExemptAddressCapReached, got %v", err)
	}

	// Removing one member frees exactly one slot.
	if err := env.exemptions.SetExempt(asCaller(admin.ID), SetExemptInput{
		AccountID:  holders[0].ID,
		Exempt:     false,
		ReasonCode: "expired",
		RequestID:  "req-remove",
		ApproverID: admin.ID,
	}); err != nil {
		t.Fatalf("remove exemption: %v", err)
	}
	if err := env.exemptions.SetExempt(asCaller(admin.ID), SetExemptInput{
		AccountID:  holders[types.ExemptionCap].ID,
		Exempt:     true,
		ReasonCode: "partner",
		RequestID:  "req-refill",
		ApproverID: admin.ID,
	}); err != nil {
		t.Fatalf("refill freed slot: %v", err)
	}
}

func TestSetExemptIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := testutil.SeedAdmin(t, ctx, env.tx, "idem-admin@test.dev", 0)
	holder := testutil.SeedAccount(t, ctx, env.tx, "idem-holder@test.dev", types.AccountKindUser, 0)

	// Removing a non-member is a no-op, not an error.
	if err := env.exemptions.SetExempt(asCaller(admin.ID), SetExemptInput{
		AccountID:  holder.ID,
		Exempt:     false,
		ReasonCode: "cleanup",
		RequestID:  "req-noop",
	}); err != nil {
		t.Fatalf("no-op removal: %v", err)
	}
	audits, err := env.exemptions.ListAudit(asCaller(admin.ID), holder.ID)
	if err != nil {
		t.Fatalf("ListAudit: %v", err)
	}
	if len(audits) != 1 {
		t.Fatalf("no-op removal should still record its audit row, got %d", len(audits))
	}
	if audits[0].Action != types.ExemptionActionRemoved || audits[0].RequestID != "req-noop" {
		t.Fatalf("unexpected audit row: %+v", audits[0])
	}

	if err := env.exemptions.SetExempt(asCaller(admin.ID), SetExemptInput{
		AccountID:    holder.ID,
		Exempt:       true,
		ReasonCode:   "partner",
		CategoryCode: "market_maker",
		RequestID:    "req-add",
		ApproverID:   admin.ID,
	}); err != nil {
		t.Fatalf("SetExempt: %v", err)
	}
	exempt, err := env.exemptions.IsExempt(ctx, env.tx, holder.ID)
	if err != nil {
		t.Fatalf("IsExempt: %v", err)
	}
	if !exempt {
		t.Fatalf("expected holder to be exempt")
	}

	// Re-adding an existing member leaves membership alone but keeps the
	// caller's metadata in the audit trail.
	if err := env.exemptions.SetExempt(asCaller(admin.ID), SetExemptInput{
		AccountID:  holder.ID,
		Exempt:     true,
		ReasonCode: "partner",
		RequestID:  "req-re-add",
		ApproverID: admin.ID,
	}); err != nil {
		t.Fatalf("redundant add: %v", err)
	}

	audits, err = env.exemptions.ListAudit(asCaller(admin.ID), holder.ID)
	if err != nil {
		t.Fatalf("ListAudit: %v", err)
	}
	if len(audits) != 3 {
		t.Fatalf("expected 3 audit rows, got %d", len(audits))
	}
	if audits[1].Action != types.ExemptionActionAdded || audits[1].RequestID != "req-add" {
		t.Fatalf("unexpected audit row: %+v", audits[1])
	}
	if audits[2].Action != types.ExemptionActionAdded || audits[2].RequestID != "req-re-add" {
		t.Fatalf("unexpected audit row: %+v", audits[2])
	}
}

func TestSetExemptRequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	outsider := testutil.SeedAccount(t, ctx, env.tx, "exempt-outsider@test.dev", types.AccountKindUser, 0)
	holder := testutil.SeedAccount(t, ctx, env.tx, "exempt-holder@test.dev", types.AccountKindUser, 0)

	err := env.exemptions.SetExempt(asCaller(outsider.ID), SetExemptInput{
		AccountID: holder.ID,
		Exempt:    true,
	})
	if !errors.Is(err, apperrors.ErrNotAdmin) {
		t.Fatalf("expected ErrNotAdmin, got %v", err)
	}
}
