package fees

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/funkyrave/funky-backend/internal/domain"
	"github.com/funkyrave/funky-backend/internal/platform/logger"
)

type HolderTierRepo interface {
	// Get returns nil without error for holders that were never tiered.
	Get(ctx context.Context, tx *gorm.DB, accountID uuid.UUID) (*types.HolderTier, error)
	Upsert(ctx context.Context, tx *gorm.DB, tier *types.HolderTier) error
}

type holderTierRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHolderTierRepo(db *gorm.DB, baseLog *logger.Logger) HolderTierRepo {
	repoLog := baseLog.With("repo", "HolderTierRepo")
	return &holderTierRepo{db: db, log: repoLog}
}

func (hr *holderTierRepo) Get(ctx context.Context, tx *gorm.DB, accountID uuid.UUID) (*types.HolderTier, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}

	var result types.HolderTier
	err := transaction.WithContext(ctx).
		First(&result, "account_id = ?", accountID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (hr *holderTierRepo) Upsert(ctx context.Context, tx *gorm.DB, tier *types.HolderTier) error {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}

	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "reason_code", "batch_id", "updated_by", "updated_at"}),
		}).
		Create(tier).Error
}
