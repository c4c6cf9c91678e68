package venues

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/funkyrave/funky-backend/internal/domain"
	"github.com/funkyrave/funky-backend/internal/platform/logger"
)

type FactoryRepo interface {
	Add(ctx context.Context, tx *gorm.DB, factory *types.Factory) error
	Remove(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error)
	Exists(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error)
}

type factoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFactoryRepo(db *gorm.DB, baseLog *logger.Logger) FactoryRepo {
	repoLog := baseLog.With("repo", "FactoryRepo")
	return &factoryRepo{db: db, log: repoLog}
}

func (fr *factoryRepo) Add(ctx context.Context, tx *gorm.DB, factory *types.Factory) error {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	return transaction.WithContext(ctx).Create(factory).Error
}

func (fr *factoryRepo) Remove(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	res := transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Factory{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (fr *factoryRepo) Exists(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Factory{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

type VenueManifestRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, manifest *types.VenueManifest) error
	// GetByVenue returns nil without error when no factory has attested the
	// venue.
	GetByVenue(ctx context.Context, tx *gorm.DB, venueID uuid.UUID) (*types.VenueManifest, error)
}

type venueManifestRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVenueManifestRepo(db *gorm.DB, baseLog *logger.Logger) VenueManifestRepo {
	repoLog := baseLog.With("repo", "VenueManifestRepo")
	return &venueManifestRepo{db: db, log: repoLog}
}

func (mr *venueManifestRepo) Upsert(ctx context.Context, tx *gorm.DB, manifest *types.VenueManifest) error {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "venue_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"factory_id"}),
		}).
		Create(manifest).Error
}

func (mr *venueManifestRepo) GetByVenue(ctx context.Context, tx *gorm.DB, venueID uuid.UUID) (*types.VenueManifest, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	var result types.VenueManifest
	err := transaction.WithContext(ctx).
		First(&result, "venue_id = ?", venueID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

type VenueRepo interface {
	Add(ctx context.Context, tx *gorm.DB, venue *types.Venue) error
	Remove(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error)
	Exists(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error)
}

type venueRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVenueRepo(db *gorm.DB, baseLog *logger.Logger) VenueRepo {
	repoLog := baseLog.With("repo", "VenueRepo")
	return &venueRepo{db: db, log: repoLog}
}

func (vr *venueRepo) Add(ctx context.Context, tx *gorm.DB, venue *types.Venue) error {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	return transaction.WithContext(ctx).Create(venue).Error
}

func (vr *venueRepo) Remove(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	res := transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Venue{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (vr *venueRepo) Exists(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Venue{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
