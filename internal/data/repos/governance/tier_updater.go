package governance

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/funkyrave/funky-backend/internal/domain"
	"github.com/funkyrave/funky-backend/internal/platform/logger"
)

type TierUpdaterRepo interface {
	Grant(ctx context.Context, tx *gorm.DB, accountID, grantedBy uuid.UUID) error
	Revoke(ctx context.Context, tx *gorm.DB, accountID uuid.UUID) (bool, error)
	IsTierUpdater(ctx context.Context, tx *gorm.DB, accountID uuid.UUID) (bool, error)
}

type tierUpdaterRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTierUpdaterRepo(db *gorm.DB, baseLog *logger.Logger) TierUpdaterRepo {
	repoLog := baseLog.With("repo", "TierUpdaterRepo")
	return &tierUpdaterRepo{db: db, log: repoLog}
}

func (tr *tierUpdaterRepo) Grant(ctx context.Context, tx *gorm.DB, accountID, grantedBy uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	return transaction.WithContext(ctx).Create(&types.TierUpdater{
		AccountID: accountID,
		GrantedBy: grantedBy,
	}).Error
}

func (tr *tierUpdaterRepo) Revoke(ctx context.Context, tx *gorm.DB, accountID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	res := transaction.WithContext(ctx).
		Where("account_id = ?", accountID).
		Delete(&types.TierUpdater{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (tr *tierUpdaterRepo) IsTierUpdater(ctx context.Context, tx *gorm.DB, accountID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.TierUpdater{}).
		Where("account_id = ?", accountID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
