package app

import (
	"gorm.io/gorm"

	"github.com/funkyrave/funky-backend/internal/platform/logger"
	"github.com/funkyrave/funky-backend/internal/services"
)

type Services struct {
	Auth      services.AuthService
	Role      services.RoleService
	Tier      services.TierService
	Venue     services.VenueService
	Exemption services.ExemptionService
	Ledger    services.LedgerService
	Token     services.TokenService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos) Services {
	log.Info("Wiring services...")

	tier := services.NewTierService(db, log, r.AdminRole, r.TierUpdater, r.FeeTier, r.HolderTier, r.Event)
	venue := services.NewVenueService(db, log, r.Account, r.AdminRole, r.Factory, r.VenueManifest, r.Venue, r.Event)
	exemption := services.NewExemptionService(db, log, r.AdminRole, r.Exemption)

	return Services{
		Auth:      services.NewAuthService(db, log, r.Account, r.AccountToken, r.AdminRole, cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL),
		Role:      services.NewRoleService(db, log, r.Account, r.AdminRole, r.TierUpdater, r.Event),
		Tier:      tier,
		Venue:     venue,
		Exemption: exemption,
		Ledger:    services.NewLedgerService(db, log, r.Account, r.Allowance, r.TransferRecord, r.TokenConfig, tier, venue, exemption),
		Token:     services.NewTokenService(db, log, r.Account, r.AdminRole, r.TokenConfig, r.Event),
	}
}
