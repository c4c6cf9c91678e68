package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbinit "github.com/funkyrave/funky-backend/internal/data/db"
	types "github.com/funkyrave/funky-backend/internal/domain"
)

func SeedAccount(tb testing.TB, ctx context.Context, tx *gorm.DB, email, kind string, balance int64) *types.Account {
	tb.Helper()
	a := &types.Account{
		ID:       uuid.New(),
		Email:    email,
		Password: "pw",
		Kind:     kind,
		Balance:  balance,
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed account: %v", err)
	}
	return a
}

func SeedAdmin(tb testing.TB, ctx context.Context, tx *gorm.DB, email string, balance int64) *types.Account {
	tb.Helper()
	a := SeedAccount(tb, ctx, tx, email, types.AccountKindUser, balance)
	if err := tx.WithContext(ctx).Create(&types.AdminRole{
		AccountID: a.ID,
		GrantedBy: a.ID,
	}).Error; err != nil {
		tb.Fatalf("seed admin role: %v", err)
	}
	return a
}

func SeedTierUpdater(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.Account {
	tb.Helper()
	a := SeedAccount(tb, ctx, tx, email, types.AccountKindService, 0)
	if err := tx.WithContext(ctx).Create(&types.TierUpdater{
		AccountID: a.ID,
		GrantedBy: a.ID,
	}).Error; err != nil {
		tb.Fatalf("seed tier updater: %v", err)
	}
	return a
}

func SeedFeeTiers(tb testing.TB, ctx context.Context, tx *gorm.DB) {
	tb.Helper()
	tiers := make([]types.FeeTier, len(dbinit.GenesisFeeTiers))
	copy(tiers, dbinit.GenesisFeeTiers)
	if err := tx.WithContext(ctx).Create(&tiers).Error; err != nil {
		tb.Fatalf("seed fee tiers: %v", err)
	}
}

func SeedTokenConfig(tb testing.TB, ctx context.Context, tx *gorm.DB, totalSupply int64, feeRecipientID uuid.UUID) *types.TokenConfig {
	tb.Helper()
	cfg := &types.TokenConfig{
		ID:             1,
		Name:           dbinit.TokenName,
		Symbol:         dbinit.TokenSymbol,
		TotalSupply:    totalSupply,
		FeeRecipientID: feeRecipientID,
	}
	if err := tx.WithContext(ctx).Create(cfg).Error; err != nil {
		tb.Fatalf("seed token config: %v", err)
	}
	return cfg
}

func SeedFactory(tb testing.TB, ctx context.Context, tx *gorm.DB, id, addedBy uuid.UUID) *types.Factory {
	tb.Helper()
	f := &types.Factory{ID: id, AddedBy: addedBy, CreatedAt: time.Now()}
	if err := tx.WithContext(ctx).Create(f).Error; err != nil {
		tb.Fatalf("seed factory: %v", err)
	}
	return f
}

func SeedManifest(tb testing.TB, ctx context.Context, tx *gorm.DB, venueID, factoryID uuid.UUID) *types.VenueManifest {
	tb.Helper()
	m := &types.VenueManifest{VenueID: venueID, FactoryID: factoryID, CreatedAt: time.Now()}
	if err := tx.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed venue manifest: %v", err)
	}
	return m
}

func SeedVenue(tb testing.TB, ctx context.Context, tx *gorm.DB, id, factoryID uuid.UUID) *types.Venue {
	tb.Helper()
	v := &types.Venue{ID: id, FactoryID: factoryID, CreatedAt: time.Now()}
	if err := tx.WithContext(ctx).Create(v).Error; err != nil {
		tb.Fatalf("seed venue: %v", err)
	}
	return v
}
