package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	types "github.com/funkyrave/funky-backend/internal/domain"
	apperrors "github.com/funkyrave/funky-backend/internal/pkg/errors"
	"github.com/funkyrave/funky-backend/internal/platform/logger"
)

const (
	TokenName   = "FUNKY RAVE"
	TokenSymbol = "FUNKY"
)

// GenesisFeeTiers is the seeded holding-day schedule: threshold -> rate out
// of 1000.
var GenesisFeeTiers = []types.FeeTier{
	{Threshold: 0, Rate: 250},
	{Threshold: 31, Rate: 230},
	{Threshold: 91, Rate: 200},
	{Threshold: 181, Rate: 160},
	{Threshold: 271, Rate: 120},
	{Threshold: 361, Rate: 80},
	{Threshold: 541, Rate: 50},
	{Threshold: 721, Rate: 30},
}

type GenesisConfig struct {
	AdminEmail           string
	AdminPassword        string
	FeeRecipientEmail    string
	FeeRecipientPassword string
	TotalSupply          int64
}

// SeedGenesis initializes the token exactly once: it creates the initial
// admin and fee recipient accounts, grants the admin role, seeds the eight
// fee tiers, writes the token config and mints the total supply to the
// admin. Reruns are no-ops once the config row exists.
func SeedGenesis(db *gorm.DB, logg *logger.Logger, cfg GenesisConfig) error {
	seedLog := logg.With("service", "SeedGenesis")

	var existing types.TokenConfig
	err := db.First(&existing, "id = ?", 1).Error
	if err == nil {
		seedLog.Debug("Token already initialized, skipping genesis")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check token config: %w", err)
	}

	if cfg.AdminEmail == "" || cfg.FeeRecipientEmail == "" {
		return fmt.Errorf("genesis admin and fee recipient are required: %w", apperrors.ErrInvalidAddress)
	}
	if cfg.TotalSupply <= 0 {
		return fmt.Errorf("genesis supply must be positive: %w", apperrors.ErrInvalidArgument)
	}

	adminHash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	recipientHash, err := bcrypt.GenerateFromPassword([]byte(cfg.FeeRecipientPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash fee recipient password: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		admin := &types.Account{
			ID:       uuid.New(),
			Email:    cfg.AdminEmail,
			Password: string(adminHash),
			Kind:     types.AccountKindUser,
			Balance:  cfg.TotalSupply,
		}
		if err := tx.Create(admin).Error; err != nil {
			return fmt.Errorf("create genesis admin: %w", err)
		}

		recipient := &types.Account{
			ID:       uuid.New(),
			Email:    cfg.FeeRecipientEmail,
			Password: string(recipientHash),
			Kind:     types.AccountKindUser,
			Balance:  0,
		}
		if err := tx.Create(recipient).Error; err != nil {
			return fmt.Errorf("create genesis fee recipient: %w", err)
		}

		if err := tx.Create(&types.AdminRole{
			AccountID: admin.ID,
			GrantedBy: admin.ID,
		}).Error; err != nil {
			return fmt.Errorf("grant genesis admin role: %w", err)
		}

		tiers := make([]types.FeeTier, len(GenesisFeeTiers))
		copy(tiers, GenesisFeeTiers)
		if err := tx.Create(&tiers).Error; err != nil {
			return fmt.Errorf("seed fee tiers: %w", err)
		}

		if err := tx.Create(&types.TokenConfig{
			ID:             1,
			Name:           TokenName,
			Symbol:         TokenSymbol,
			TotalSupply:    cfg.TotalSupply,
			FeeRecipientID: recipient.ID,
		}).Error; err != nil {
			return fmt.Errorf("write token config: %w", err)
		}

		mint := &types.TransferRecord{
			ID:        uuid.New(),
			Kind:      types.TransferKindGenesis,
			ToID:      admin.ID,
			Amount:    cfg.TotalSupply,
			Net:       cfg.TotalSupply,
			CreatedAt: time.Now(),
		}
		if err := tx.Create(mint).Error; err != nil {
			return fmt.Errorf("record genesis mint: %w", err)
		}

		seedLog.Info("Genesis complete",
			"admin_id", admin.ID,
			"fee_recipient_id", recipient.ID,
			"total_supply", cfg.TotalSupply,
		)
		return nil
	})
}
