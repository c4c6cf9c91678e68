package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Allowance grants a spender the right to move up to Amount from the
// owner's balance via delegated transfers.
type Allowance struct {
	OwnerID   uuid.UUID `gorm:"type:uuid;primaryKey;column:owner_id" json:"owner_id"`
	SpenderID uuid.UUID `gorm:"type:uuid;primaryKey;column:spender_id" json:"spender_id"`
	Amount    int64     `gorm:"not null;column:amount" json:"amount"`

	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Allowance) TableName() string { return "allowance" }

const (
	TransferKindDirect    = "direct"
	TransferKindDelegated = "delegated"
	TransferKindGenesis   = "genesis"
)

// TransferRecord is the append-only movement log. Fee and Net always sum to
// Amount; Fee is zero for non-sell transfers.
type TransferRecord struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Kind           string    `gorm:"not null;column:kind" json:"kind"`
	FromID         uuid.UUID `gorm:"type:uuid;index;column:from_id" json:"from_id"`
	ToID           uuid.UUID `gorm:"type:uuid;index;column:to_id" json:"to_id"`
	SpenderID      uuid.UUID `gorm:"type:uuid;column:spender_id" json:"spender_id"`
	Amount         int64     `gorm:"not null;column:amount" json:"amount"`
	Fee            int64     `gorm:"not null;column:fee" json:"fee"`
	Net            int64     `gorm:"not null;column:net" json:"net"`
	FeeRecipientID uuid.UUID `gorm:"type:uuid;column:fee_recipient_id" json:"fee_recipient_id"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (TransferRecord) TableName() string { return "transfer_record" }
