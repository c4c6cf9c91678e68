package app

import (
	"gorm.io/gorm"

	"github.com/funkyrave/funky-backend/internal/data/repos"
	"github.com/funkyrave/funky-backend/internal/platform/logger"
)

type Repos struct {
	Account        repos.AccountRepo
	AccountToken   repos.AccountTokenRepo
	AdminRole      repos.AdminRoleRepo
	TierUpdater    repos.TierUpdaterRepo
	Event          repos.GovernanceEventRepo
	FeeTier        repos.FeeTierRepo
	HolderTier     repos.HolderTierRepo
	Exemption      repos.ExemptionRepo
	TokenConfig    repos.TokenConfigRepo
	Factory        repos.FactoryRepo
	VenueManifest  repos.VenueManifestRepo
	Venue          repos.VenueRepo
	Allowance      repos.AllowanceRepo
	TransferRecord repos.TransferRecordRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Account:        repos.NewAccountRepo(db, log),
		AccountToken:   repos.NewAccountTokenRepo(db, log),
		AdminRole:      repos.NewAdminRoleRepo(db, log),
		TierUpdater:    repos.NewTierUpdaterRepo(db, log),
		Event:          repos.NewGovernanceEventRepo(db, log),
		FeeTier:        repos.NewFeeTierRepo(db, log),
		HolderTier:     repos.NewHolderTierRepo(db, log),
		Exemption:      repos.NewExemptionRepo(db, log),
		TokenConfig:    repos.NewTokenConfigRepo(db, log),
		Factory:        repos.NewFactoryRepo(db, log),
		VenueManifest:  repos.NewVenueManifestRepo(db, log),
		Venue:          repos.NewVenueRepo(db, log),
		Allowance:      repos.NewAllowanceRepo(db, log),
		TransferRecord: repos.NewTransferRecordRepo(db, log),
	}
}
