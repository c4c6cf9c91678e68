package governance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AdminRole is one row per admin identity. The admin set must never empty;
// the guard lives in the role service, not the table.
type AdminRole struct {
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey;column:account_id" json:"account_id"`
	GrantedBy uuid.UUID `gorm:"type:uuid;column:granted_by" json:"granted_by"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (AdminRole) TableName() string { return "admin_role" }

// TierUpdater is one row per identity allowed to adjust holder tiers.
// Membership is restricted to service accounts.
type TierUpdater struct {
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey;column:account_id" json:"account_id"`
	GrantedBy uuid.UUID `gorm:"type:uuid;column:granted_by" json:"granted_by"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (TierUpdater) TableName() string { return "tier_updater" }

const (
	EventAdminAdded          = "admin_added"
	EventAdminRemoved        = "admin_removed"
	EventTierUpdaterAdded    = "tier_updater_added"
	EventTierUpdaterRemoved  = "tier_updater_removed"
	EventFactoryAdded        = "factory_added"
	EventFactoryRemoved      = "factory_removed"
	EventDexAdded            = "dex_added"
	EventDexRemoved          = "dex_removed"
	EventFeeRateUpdated      = "fee_rate_updated"
	EventFeeRecipientUpdated = "fee_recipient_updated"
	EventHolderTierUpdated   = "holder_tier_updated"
)

// GovernanceEvent is an append-only observability record of governance
// mutations. Never read back for authorization.
type GovernanceEvent struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Kind      string         `gorm:"index;not null;column:kind" json:"kind"`
	SubjectID uuid.UUID      `gorm:"type:uuid;index;column:subject_id" json:"subject_id"`
	ActorID   uuid.UUID      `gorm:"type:uuid;column:actor_id" json:"actor_id"`
	Payload   datatypes.JSON `gorm:"column:payload" json:"payload,omitempty"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
}

func (GovernanceEvent) TableName() string { return "governance_event" }
