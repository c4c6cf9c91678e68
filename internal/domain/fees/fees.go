package fees

import (
	"time"

	"github.com/google/uuid"
)

// RateDenominator is the denominator of every fee rate: a rate of 250 means
// 25.0%.
const RateDenominator = 1000

// MaxRate is the highest admissible fee rate (100%).
const MaxRate = 1000

// ExemptionCap bounds the number of concurrently fee-exempt holders.
const ExemptionCap = 20

// Reason codes accepted by holder tier updates. A downgrade must carry
// ReasonFIFORegression; the routine synchronization code never downgrades.
const (
	ReasonRoutineSync    = "routine_sync"
	ReasonFIFORegression = "fifo_regression"
)

// FeeTier maps a holding-day threshold to a fee rate out of RateDenominator.
type FeeTier struct {
	Threshold int64 `gorm:"primaryKey;autoIncrement:false;column:threshold" json:"threshold"`
	Rate      int64 `gorm:"not null;column:rate" json:"rate"`

	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (FeeTier) TableName() string { return "fee_tier" }

// HolderTier is a holder's current tier value. Holders without a row sit in
// the lowest bucket. The value is looked up against fee_tier at transfer
// time, so schedule edits apply retroactively.
type HolderTier struct {
	AccountID  uuid.UUID `gorm:"type:uuid;primaryKey;column:account_id" json:"account_id"`
	Value      int64     `gorm:"not null;column:value" json:"value"`
	ReasonCode string    `gorm:"column:reason_code" json:"reason_code"`
	BatchID    string    `gorm:"column:batch_id" json:"batch_id"`
	UpdatedBy  uuid.UUID `gorm:"type:uuid;column:updated_by" json:"updated_by"`

	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (HolderTier) TableName() string { return "holder_tier" }

// FeeExemption is the capacity-bounded membership set. Audit history lives
// in ExemptionAudit and never counts against the cap.
type FeeExemption struct {
	AccountID    uuid.UUID `gorm:"type:uuid;primaryKey;column:account_id" json:"account_id"`
	ReasonCode   string    `gorm:"column:reason_code" json:"reason_code"`
	CategoryCode string    `gorm:"column:category_code" json:"category_code"`
	RequestID    string    `gorm:"column:request_id" json:"request_id"`
	InitiatorID  uuid.UUID `gorm:"type:uuid;column:initiator_id" json:"initiator_id"`
	ApproverID   uuid.UUID `gorm:"type:uuid;column:approver_id" json:"approver_id"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (FeeExemption) TableName() string { return "fee_exemption" }

const (
	ExemptionActionAdded   = "added"
	ExemptionActionRemoved = "removed"
)

// ExemptionAudit is the append-only trail of exemption changes, keyed by the
// caller-supplied request ID (advisory, duplicates accepted).
type ExemptionAudit struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AccountID    uuid.UUID `gorm:"type:uuid;index;not null;column:account_id" json:"account_id"`
	Action       string    `gorm:"not null;column:action" json:"action"`
	ReasonCode   string    `gorm:"column:reason_code" json:"reason_code"`
	CategoryCode string    `gorm:"column:category_code" json:"category_code"`
	RequestID    string    `gorm:"index;column:request_id" json:"request_id"`
	InitiatorID  uuid.UUID `gorm:"type:uuid;column:initiator_id" json:"initiator_id"`
	ApproverID   uuid.UUID `gorm:"type:uuid;column:approver_id" json:"approver_id"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (ExemptionAudit) TableName() string { return "exemption_audit" }

// TokenConfig is the single-row token metadata written at genesis.
type TokenConfig struct {
	ID             int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name           string    `gorm:"not null;column:name" json:"name"`
	Symbol         string    `gorm:"not null;column:symbol" json:"symbol"`
	TotalSupply    int64     `gorm:"not null;column:total_supply" json:"total_supply"`
	FeeRecipientID uuid.UUID `gorm:"type:uuid;not null;column:fee_recipient_id" json:"fee_recipient_id"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (TokenConfig) TableName() string { return "token_config" }
