package fees

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/funkyrave/funky-backend/internal/domain"
	apperrors "github.com/funkyrave/funky-backend/internal/pkg/errors"
	"github.com/funkyrave/funky-backend/internal/platform/logger"
)

type FeeTierRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, threshold, rate int64) error
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.FeeTier, error)
	// GetFloor returns the tier with the greatest threshold <= value, or the
	// lowest tier when value sits below every threshold.
	GetFloor(ctx context.Context, tx *gorm.DB, value int64) (*types.FeeTier, error)
}

type feeTierRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFeeTierRepo(db *gorm.DB, baseLog *logger.Logger) FeeTierRepo {
	repoLog := baseLog.With("repo", "FeeTierRepo")
	return &feeTierRepo{db: db, log: repoLog}
}

func (fr *feeTierRepo) Upsert(ctx context.Context, tx *gorm.DB, threshold, rate int64) error {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "threshold"}},
			DoUpdates: clause.AssignmentColumns([]string{"rate", "updated_at"}),
		}).
		Create(&types.FeeTier{Threshold: threshold, Rate: rate}).Error
}

func (fr *feeTierRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.FeeTier, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	var results []*types.FeeTier
	if err := transaction.WithContext(ctx).
		Order("threshold ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (fr *feeTierRepo) GetFloor(ctx context.Context, tx *gorm.DB, value int64) (*types.FeeTier, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	var result types.FeeTier
	err := transaction.WithContext(ctx).
		Where("threshold <= ?", value).
		Order("threshold DESC").
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Below the smallest threshold: fall back to the lowest tier.
		err = transaction.WithContext(ctx).
			Order("threshold ASC").
			First(&result).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}
