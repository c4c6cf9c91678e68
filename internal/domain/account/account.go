package account

import (
	"time"

	"github.com/google/uuid"
)

const (
	// KindUser marks a key-controlled account held by a person.
	KindUser = "user"
	// KindService marks an automated service principal. Only service
	// accounts may be registered as tier updaters.
	KindService = "service"
)

// Account is both an auth principal and a ledger holder.
type Account struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password string    `gorm:"not null;column:password" json:"-"`
	Kind     string    `gorm:"not null;default:user;column:kind" json:"kind"`
	Balance  int64     `gorm:"not null;default:0;column:balance" json:"balance"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Account) TableName() string { return "account" }

type AccountToken struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AccountID    uuid.UUID `gorm:"type:uuid;index;not null;column:account_id" json:"account_id"`
	AccessToken  string    `gorm:"not null;column:access_token" json:"-"`
	RefreshToken string    `gorm:"not null;column:refresh_token" json:"-"`
	ExpiresAt    time.Time `gorm:"not null;column:expires_at" json:"expires_at"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (AccountToken) TableName() string { return "account_token" }
