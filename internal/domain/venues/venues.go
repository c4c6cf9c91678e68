package venues

import (
	"time"

	"github.com/google/uuid"
)

// Factory is an allowlisted venue-creating principal.
type Factory struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AddedBy   uuid.UUID `gorm:"type:uuid;column:added_by" json:"added_by"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Factory) TableName() string { return "factory" }

// VenueManifest is a factory's attestation that it created a venue. It is
// the provenance record consulted when the venue is proposed as a dex; the
// attestation alone grants nothing.
type VenueManifest struct {
	VenueID   uuid.UUID `gorm:"type:uuid;primaryKey;column:venue_id" json:"venue_id"`
	FactoryID uuid.UUID `gorm:"type:uuid;index;not null;column:factory_id" json:"factory_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (VenueManifest) TableName() string { return "venue_manifest" }

// Venue is a registered fee-triggering trading destination.
type Venue struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FactoryID uuid.UUID `gorm:"type:uuid;index;not null;column:factory_id" json:"factory_id"`
	AddedBy   uuid.UUID `gorm:"type:uuid;column:added_by" json:"added_by"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Venue) TableName() string { return "venue" }
