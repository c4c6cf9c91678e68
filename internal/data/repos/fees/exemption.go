package fees

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/funkyrave/funky-backend/internal/domain"
	"github.com/funkyrave/funky-backend/internal/platform/logger"
)

type ExemptionRepo interface {
	Add(ctx context.Context, tx *gorm.DB, exemption *types.FeeExemption) error
	// Remove reports whether a membership row was actually deleted.
	Remove(ctx context.Context, tx *gorm.DB, accountID uuid.UUID) (bool, error)
	IsExempt(ctx context.Context, tx *gorm.DB, accountID uuid.UUID) (bool, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	AppendAudit(ctx context.Context, tx *gorm.DB, audit *types.ExemptionAudit) error
	ListAuditByAccount(ctx context.Context, tx *gorm.DB, accountID uuid.UUID) ([]*types.ExemptionAudit, error)
}

type exemptionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewExemptionRepo(db *gorm.DB, baseLog *logger.Logger) ExemptionRepo {
	repoLog := baseLog.With("repo", "ExemptionRepo")
	return &exemptionRepo{db: db, log: repoLog}
}

func (er *exemptionRepo) Add(ctx context.Context, tx *gorm.DB, exemption *types.FeeExemption) error {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	return transaction.WithContext(ctx).Create(exemption).Error
}

func (er *exemptionRepo) Remove(ctx context.Context, tx *gorm.DB, accountID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	res := transaction.WithContext(ctx).
		Where("account_id = ?", accountID).
		Delete(&types.FeeExemption{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (er *exemptionRepo) IsExempt(ctx context.Context, tx *gorm.DB, accountID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.FeeExemption{}).
		Where("account_id = ?", accountID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (er *exemptionRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.FeeExemption{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (er *exemptionRepo) AppendAudit(ctx context.Context, tx *gorm.DB, audit *types.ExemptionAudit) error {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	return transaction.WithContext(ctx).Create(audit).Error
}

func (er *exemptionRepo) ListAuditByAccount(ctx context.Context, tx *gorm.DB, accountID uuid.UUID) ([]*types.ExemptionAudit, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	var results []*types.ExemptionAudit
	if err := transaction.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
