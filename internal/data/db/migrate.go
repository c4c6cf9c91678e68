package db

import (
	types "github.com/funkyrave/funky-backend/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(

		// Identity + auth
		&types.Account{},
		&types.AccountToken{},

		// Governance roles + event trail
		&types.AdminRole{},
		&types.TierUpdater{},
		&types.GovernanceEvent{},

		// Fee schedule + holder tiers + exemptions
		&types.FeeTier{},
		&types.HolderTier{},
		&types.FeeExemption{},
		&types.ExemptionAudit{},
		&types.TokenConfig{},

		// Venue allowlist + provenance
		&types.Factory{},
		&types.VenueManifest{},
		&types.Venue{},

		// Ledger
		&types.Allowance{},
		&types.TransferRecord{},
	)
}
