package db

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	types "github.com/funkyrave/funky-backend/internal/domain"
	apperrors "github.com/funkyrave/funky-backend/internal/pkg/errors"
	"github.com/funkyrave/funky-backend/internal/platform/logger"
)

func genesisTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	raw, err := database.DB()
	if err != nil {
		t.Fatalf("raw db: %v", err)
	}
	raw.SetMaxIdleConns(1)
	raw.SetConnMaxLifetime(0)
	if err := AutoMigrateAll(database); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return database
}

func TestSeedGenesis(t *testing.T) {
	database := genesisTestDB(t)
	logg, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	cfg := GenesisConfig{
		AdminEmail:           "genesis-admin@test.dev",
		AdminPassword:        "pw123456",
		FeeRecipientEmail:    "genesis-recipient@test.dev",
		FeeRecipientPassword: "pw123456",
		TotalSupply:          30_000_000_000,
	}
	if err := SeedGenesis(database, logg, cfg); err != nil {
		t.Fatalf("SeedGenesis: %v", err)
	}

	var tokenCfg types.TokenConfig
	if err := database.First(&tokenCfg, "id = ?", 1).Error; err != nil {
		t.Fatalf("read token config: %v", err)
	}
	if tokenCfg.Name != TokenName || tokenCfg.Symbol != TokenSymbol {
		t.Fatalf("unexpected token identity: %q %q", tokenCfg.Name, tokenCfg.Symbol)
	}
	if tokenCfg.TotalSupply != cfg.TotalSupply {
		t.Fatalf("unexpected supply: %d", tokenCfg.TotalSupply)
	}

	var admin types.Account
	if err := database.First(&admin, "email = ?", cfg.AdminEmail).Error; err != nil {
		t.Fatalf("read admin: %v", err)
	}
	if admin.Balance != cfg.TotalSupply {
		t.Fatalf("supply not minted to admin: %d", admin.Balance)
	}

	var tierCount int64
	if err := database.Model(&types.FeeTier{}).Count(&tierCount).Error; err != nil {
		t.Fatalf("count tiers: %v", err)
	}
	if tierCount != 8 {
		t.Fatalf("expected 8 seeded tiers, got %d", tierCount)
	}

	// Rerun is a no-op.
	if err := SeedGenesis(database, logg, cfg); err != nil {
		t.Fatalf("rerun SeedGenesis: %v", err)
	}
	var accountCount int64
	if err := database.Model(&types.Account{}).Count(&accountCount).Error; err != nil {
		t.Fatalf("count accounts: %v", err)
	}
	if accountCount != 2 {
		t.Fatalf("rerun changed accounts: %d", accountCount)
	}
}

func TestSeedGenesisRejectsNullIdentities(t *testing.T) {
	database := genesisTestDB(t)
	logg, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	err = SeedGenesis(database, logg, GenesisConfig{
		AdminEmail:  "",
		TotalSupply: 1000,
	})
	if !errors.Is(err, apperrors.ErrInvalidAddress) {
		t.Fatalf("expected ErrInvalidAddress, got %v", err)
	}
}
