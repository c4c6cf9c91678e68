package fees

import (
	"context"
	"testing"

	"github.com/funkyrave/funky-backend/internal/data/repos/testutil"
)

func TestFeeTierGetFloor(t *testing.T) {
	database := testutil.DB(t)
	tx := testutil.Tx(t, database)
	ctx := context.Background()

	repo := NewFeeTierRepo(tx, testutil.Logger(t))
	testutil.SeedFeeTiers(t, ctx, tx)

	cases := []struct {
		name      string
		value     int64
		threshold int64
		rate      int64
	}{
		{name: "zero", value: 0, threshold: 0, rate: 250},
		{name: "below_second", value: 30, threshold: 0, rate: 250},
		{name: "exact", value: 91, threshold: 91, rate: 200},
		{name: "between", value: 200, threshold: 181, rate: 160},
		{name: "top", value: 721, threshold: 721, rate: 30},
		{name: "above_top", value: 10_000, threshold: 721, rate: 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tier, err := repo.GetFloor(ctx, tx, tc.value)
			if err != nil {
				t.Fatalf("GetFloor(%d): %v", tc.value, err)
			}
			if tier.Threshold != tc.threshold || tier.Rate != tc.rate {
				t.Fatalf("GetFloor(%d): expected %d/%d, got %d/%d",
					tc.value, tc.threshold, tc.rate, tier.Threshold, tier.Rate)
			}
		})
	}
}

func TestFeeTierUpsertReplacesRate(t *testing.T) {
	database := testutil.DB(t)
	tx := testutil.Tx(t, database)
	ctx := context.Background()

	repo := NewFeeTierRepo(tx, testutil.Logger(t))
	testutil.SeedFeeTiers(t, ctx, tx)

	if err := repo.Upsert(ctx, tx, 91, 180); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	tiers, err := repo.GetAll(ctx, tx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(tiers) != 8 {
		t.Fatalf("expected 8 tiers after upsert, got %d", len(tiers))
	}
	tier, err := repo.GetFloor(ctx, tx, 91)
	if err != nil {
		t.Fatalf("GetFloor: %v", err)
	}
	if tier.Rate != 180 {
		t.Fatalf("expected replaced rate 180, got %d", tier.Rate)
	}
}
