package services

import (
	"context"
	"errors"
	"testing"

	types "github.com/funkyrave/funky-backend/internal/domain"
	apperrors "github.com/funkyrave/funky-backend/internal/pkg/errors"

	"github.com/funkyrave/funky-backend/internal/data/repos/testutil"
)

func TestFeeRateFloorLookup(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	testutil.SeedFeeTiers(t, ctx, env.tx)
	updater := testutil.SeedTierUpdater(t, ctx, env.tx, "floor-updater@test.dev")

	cases := []struct {
		name  string
		value int64
		want  int64
	}{
		{name: "untier_defaults_to_lowest", value: 0, want: 250},
		{name: "just_below_second", value: 30, want: 250},
		{name: "exact_threshold", value: 181, want: 160},
		{name: "between_thresholds", value: 400, want: 80},
		{name: "top_threshold", value: 721, want: 30},
		{name: "beyond_top", value: 5000, want: 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			holder := testutil.SeedAccount(t, ctx, env.tx, "floor-"+tc.name+"@test.dev", types.AccountKindUser, 0)
			if tc.value > 0 {
				if err := env.tiers.SetHolderTier(asCaller(updater.ID), SetHolderTierInput{
					AccountID:  holder.ID,
					Value:      tc.value,
					ReasonCode: types.ReasonRoutineSync,
					BatchID:    "batch-floor",
				}); err != nil {
					t.Fatalf("SetHolderTier: %v", err)
				}
			}
			rate, err := env.tiers.FeeRateFor(ctx, env.tx, holder.ID)
			if err != nil {
				t.Fatalf("FeeRateFor: %v", err)
			}
			if rate != tc.want {
				t.Fatalf("value %d: expected rate %d, got %d", tc.value, tc.want, rate)
			}
		})
	}
}

func TestSetHolderTierAntiDowngrade(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	testutil.SeedFeeTiers(t, ctx, env.tx)
	updater := testutil.SeedTierUpdater(t, ctx, env.tx, "downgrade-updater@test.dev")
	holder := testutil.SeedAccount(t, ctx, env.tx, "downgrade-holder@test.dev", types.AccountKindUser, 0)

	if err := env.tiers.SetHolderTier(asCaller(updater.ID), SetHolderTierInput{
		AccountID:  holder.ID,
		Value:      400,
		ReasonCode: types.ReasonRoutineSync,
		BatchID:    "batch-1",
	}); err != nil {
		t.Fatalf("initial SetHolderTier: %v", err)
	}

	err := env.tiers.SetHolderTier(asCaller(updater.ID), SetHolderTierInput{
		AccountID:  holder.ID,
		Value:      100,
		ReasonCode: types.ReasonRoutineSync,
		BatchID:    "batch-2",
	})
	if !errors.Is(err, apperrors.ErrTierDowngradeNotAllowed) {
		t.Fatalf("expected ErrTierDowngradeNotAllowed, got %v", err)
	}
	current, err := env.tiers.HolderTier(ctx, holder.ID)
	if err != nil {
		t.Fatalf("HolderTier: %v", err)
	}
	if current == nil || current.Value != 400 {
		t.Fatalf("tier changed despite rejected downgrade: %+v", current)
	}

	if err := env.tiers.SetHolderTier(asCaller(updater.ID), SetHolderTierInput{
		AccountID:  holder.ID,
		Value:      100,
		ReasonCode: types.ReasonFIFORegression,
		BatchID:    "batch-3",
	}); err != nil {
		t.Fatalf("forced downgrade: %v", err)
	}
	current, err = env.tiers.HolderTier(ctx, holder.ID)
	if err != nil {
		t.Fatalf("HolderTier: %v", err)
	}
	if current == nil || current.Value != 100 {
		t.Fatalf("expected forced downgrade to 100, got %+v", current)
	}
}

func TestSetHolderTierRoleGate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	testutil.SeedFeeTiers(t, ctx, env.tx)
	admin := testutil.SeedAdmin(t, ctx, env.tx, "gate-admin@test.dev", 0)
	outsider := testutil.SeedAccount(t, ctx, env.tx, "gate-outsider@test.dev", types.AccountKindUser, 0)
	holder := testutil.SeedAccount(t, ctx, env.tx, "gate-holder@test.dev", types.AccountKindUser, 0)

	err := env.tiers.SetHolderTier(asCaller(outsider.ID), SetHolderTierInput{
		AccountID:  holder.ID,
		Value:      100,
		ReasonCode: types.ReasonRoutineSync,
	})
	if !errors.Is(err, apperrors.ErrNotTierUpdater) {
		t.Fatalf("expected ErrNotTierUpdater, got %v", err)
	}

	// Admins may write tiers directly.
	if err := env.tiers.SetHolderTier(asCaller(admin.ID), SetHolderTierInput{
		AccountID:  holder.ID,
		Value:      100,
		ReasonCode: types.ReasonRoutineSync,
	}); err != nil {
		t.Fatalf("SetHolderTier as admin: %v", err)
	}
	current, err := env.tiers.HolderTier(ctx, holder.ID)
	if err != nil {
		t.Fatalf("HolderTier: %v", err)
	}
	if current == nil || current.Value != 100 {
		t.Fatalf("expected admin write to land, got %+v", current)
	}
}

func TestSetFeeRate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	testutil.SeedFeeTiers(t, ctx, env.tx)
	admin := testutil.SeedAdmin(t, ctx, env.tx, "rate-admin@test.dev", 0)

	err := env.tiers.SetFeeRate(asCaller(admin.ID), 0, 1001)
	if !errors.Is(err, apperrors.ErrFeeTooHigh) {
		t.Fatalf("expected ErrFeeTooHigh, got %v", err)
	}

	if err := env.tiers.SetFeeRate(asCaller(admin.ID), 0, 300); err != nil {
		t.Fatalf("SetFeeRate: %v", err)
	}
	tiers, err := env.tiers.ListFeeTiers(ctx)
	if err != nil {
		t.Fatalf("ListFeeTiers: %v", err)
	}
	if len(tiers) != 8 {
		t.Fatalf("expected 8 tiers, got %d", len(tiers))
	}
	if tiers[0].Threshold != 0 || tiers[0].Rate != 300 {
		t.Fatalf("expected updated lowest tier, got %+v", tiers[0])
	}

	// Schedule edits retroactively affect already-tiered holders.
	holder := testutil.SeedAccount(t, ctx, env.tx, "rate-holder@test.dev", types.AccountKindUser, 0)
	rate, err := env.tiers.FeeRateFor(ctx, env.tx, holder.ID)
	if err != nil {
		t.Fatalf("FeeRateFor: %v", err)
	}
	if rate != 300 {
		t.Fatalf("expected rate 300 after edit, got %d", rate)
	}
}
