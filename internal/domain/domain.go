package domain

import (
	"github.com/funkyrave/funky-backend/internal/domain/account"
	"github.com/funkyrave/funky-backend/internal/domain/fees"
	"github.com/funkyrave/funky-backend/internal/domain/governance"
	"github.com/funkyrave/funky-backend/internal/domain/ledger"
	"github.com/funkyrave/funky-backend/internal/domain/venues"
)

type Account = account.Account
type AccountToken = account.AccountToken

const (
	AccountKindUser    = account.KindUser
	AccountKindService = account.KindService
)

type AdminRole = governance.AdminRole
type TierUpdater = governance.TierUpdater
type GovernanceEvent = governance.GovernanceEvent

const (
	EventAdminAdded          = governance.EventAdminAdded
	EventAdminRemoved        = governance.EventAdminRemoved
	EventTierUpdaterAdded    = governance.EventTierUpdaterAdded
	EventTierUpdaterRemoved  = governance.EventTierUpdaterRemoved
	EventFactoryAdded        = governance.EventFactoryAdded
	EventFactoryRemoved      = governance.EventFactoryRemoved
	EventDexAdded            = governance.EventDexAdded
	EventDexRemoved          = governance.EventDexRemoved
	EventFeeRateUpdated      = governance.EventFeeRateUpdated
	EventFeeRecipientUpdated = governance.EventFeeRecipientUpdated
	EventHolderTierUpdated   = governance.EventHolderTierUpdated
)

type FeeTier = fees.FeeTier
type HolderTier = fees.HolderTier
type FeeExemption = fees.FeeExemption
type ExemptionAudit = fees.ExemptionAudit
type TokenConfig = fees.TokenConfig

const (
	RateDenominator = fees.RateDenominator
	MaxRate         = fees.MaxRate
	ExemptionCap    = fees.ExemptionCap

	ReasonRoutineSync    = fees.ReasonRoutineSync
	ReasonFIFORegression = fees.ReasonFIFORegression

	ExemptionActionAdded   = fees.ExemptionActionAdded
	ExemptionActionRemoved = fees.ExemptionActionRemoved
)

type Factory = venues.Factory
type Venue = venues.Venue
type VenueManifest = venues.VenueManifest

type Allowance = ledger.Allowance
type TransferRecord = ledger.TransferRecord

const (
	TransferKindDirect    = ledger.TransferKindDirect
	TransferKindDelegated = ledger.TransferKindDelegated
	TransferKindGenesis   = ledger.TransferKindGenesis
)
