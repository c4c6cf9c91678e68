package repos

import (
	"github.com/funkyrave/funky-backend/internal/data/repos/account"
	"github.com/funkyrave/funky-backend/internal/data/repos/fees"
	"github.com/funkyrave/funky-backend/internal/data/repos/governance"
	"github.com/funkyrave/funky-backend/internal/data/repos/ledger"
	"github.com/funkyrave/funky-backend/internal/data/repos/venues"
	"github.com/funkyrave/funky-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type AccountRepo = account.AccountRepo
type AccountTokenRepo = account.AccountTokenRepo

type AdminRoleRepo = governance.AdminRoleRepo
type TierUpdaterRepo = governance.TierUpdaterRepo
type GovernanceEventRepo = governance.GovernanceEventRepo

type FeeTierRepo = fees.FeeTierRepo
type HolderTierRepo = fees.HolderTierRepo
type ExemptionRepo = fees.ExemptionRepo
type TokenConfigRepo = fees.TokenConfigRepo

type FactoryRepo = venues.FactoryRepo
type VenueManifestRepo = venues.VenueManifestRepo
type VenueRepo = venues.VenueRepo

type AllowanceRepo = ledger.AllowanceRepo
type TransferRecordRepo = ledger.TransferRecordRepo

func NewAccountRepo(db *gorm.DB, log *logger.Logger) AccountRepo {
	return account.NewAccountRepo(db, log)
}
func NewAccountTokenRepo(db *gorm.DB, log *logger.Logger) AccountTokenRepo {
	return account.NewAccountTokenRepo(db, log)
}
func NewAdminRoleRepo(db *gorm.DB, log *logger.Logger) AdminRoleRepo {
	return governance.NewAdminRoleRepo(db, log)
}
func NewTierUpdaterRepo(db *gorm.DB, log *logger.Logger) TierUpdaterRepo {
	return governance.NewTierUpdaterRepo(db, log)
}
func NewGovernanceEventRepo(db *gorm.DB, log *logger.Logger) GovernanceEventRepo {
	return governance.NewGovernanceEventRepo(db, log)
}
func NewFeeTierRepo(db *gorm.DB, log *logger.Logger) FeeTierRepo {
	return fees.NewFeeTierRepo(db, log)
}
func NewHolderTierRepo(db *gorm.DB, log *logger.Logger) HolderTierRepo {
	return fees.NewHolderTierRepo(db, log)
}
func NewExemptionRepo(db *gorm.DB, log *logger.Logger) ExemptionRepo {
	return fees.NewExemptionRepo(db, log)
}
func NewTokenConfigRepo(db *gorm.DB, log *logger.Logger) TokenConfigRepo {
	return fees.NewTokenConfigRepo(db, log)
}
func NewFactoryRepo(db *gorm.DB, log *logger.Logger) FactoryRepo {
	return venues.NewFactoryRepo(db, log)
}
func NewVenueManifestRepo(db *gorm.DB, log *logger.Logger) VenueManifestRepo {
	return venues.NewVenueManifestRepo(db, log)
}
func NewVenueRepo(db *gorm.DB, log *logger.Logger) VenueRepo {
	return venues.NewVenueRepo(db, log)
}
func NewAllowanceRepo(db *gorm.DB, log *logger.Logger) AllowanceRepo {
	return ledger.NewAllowanceRepo(db, log)
}
func NewTransferRecordRepo(db *gorm.DB, log *logger.Logger) TransferRecordRepo {
	return ledger.NewTransferRecordRepo(db, log)
}
