package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/funkyrave/funky-backend/internal/data/repos"
	"github.com/funkyrave/funky-backend/internal/data/repos/testutil"
	"github.com/funkyrave/funky-backend/internal/requestdata"
)

type testEnv struct {
	tx         *gorm.DB
	auth       AuthService
	roles      RoleService
	tiers      TierService
	venues     VenueService
	exemptions ExemptionService
	ledger     LedgerService
	token      TokenService
}

// newTestEnv wires the full service graph against a per-test transaction so
// nested service transactions become savepoints and every test rolls back
// cleanly.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.DB(t)
	tx := testutil.Tx(t, database)
	logg := testutil.Logger(t)

	accountRepo := repos.NewAccountRepo(tx, logg)
	accountTokenRepo := repos.NewAccountTokenRepo(tx, logg)
	adminRoleRepo := repos.NewAdminRoleRepo(tx, logg)
	tierUpdaterRepo := repos.NewTierUpdaterRepo(tx, logg)
	eventRepo := repos.NewGovernanceEventRepo(tx, logg)
	feeTierRepo := repos.NewFeeTierRepo(tx, logg)
	holderTierRepo := repos.NewHolderTierRepo(tx, logg)
	exemptionRepo := repos.NewExemptionRepo(tx, logg)
	tokenConfigRepo := repos.NewTokenConfigRepo(tx, logg)
	factoryRepo := repos.NewFactoryRepo(tx, logg)
	manifestRepo := repos.NewVenueManifestRepo(tx, logg)
	venueRepo := repos.NewVenueRepo(tx, logg)
	allowanceRepo := repos.NewAllowanceRepo(tx, logg)
	transferRepo := repos.NewTransferRecordRepo(tx, logg)

	tiers := NewTierService(tx, logg, adminRoleRepo, tierUpdaterRepo, feeTierRepo, holderTierRepo, eventRepo)
	venues := NewVenueService(tx, logg, accountRepo, adminRoleRepo, factoryRepo, manifestRepo, venueRepo, eventRepo)
	exemptions := NewExemptionService(tx, logg, adminRoleRepo, exemptionRepo)

	return &testEnv{
		tx:         tx,
		auth:       NewAuthService(tx, logg, accountRepo, accountTokenRepo, adminRoleRepo, "test-secret", 15*time.Minute, 24*time.Hour),
		roles:      NewRoleService(tx, logg, accountRepo, adminRoleRepo, tierUpdaterRepo, eventRepo),
		tiers:      tiers,
		venues:     venues,
		exemptions: exemptions,
		ledger:     NewLedgerService(tx, logg, accountRepo, allowanceRepo, transferRepo, tokenConfigRepo, tiers, venues, exemptions),
		token:      NewTokenService(tx, logg, accountRepo, adminRoleRepo, tokenConfigRepo, eventRepo),
	}
}

func asCaller(accountID uuid.UUID) context.Context {
	return requestdata.WithRequestData(context.Background(), &requestdata.RequestData{AccountID: accountID})
}
