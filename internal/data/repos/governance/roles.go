package governance

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/funkyrave/funky-backend/internal/domain"
	"github.com/funkyrave/funky-backend/internal/platform/logger"
)

type AdminRoleRepo interface {
	Grant(ctx context.Context, tx *gorm.DB, accountID, grantedBy uuid.UUID) error
	Revoke(ctx context.Context, tx *gorm.DB, accountID uuid.UUID) (bool, error)
	IsAdmin(ctx context.Context, tx *gorm.DB, accountID uuid.UUID) (bool, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type adminRoleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAdminRoleRepo(db *gorm.DB, baseLog *logger.Logger) AdminRoleRepo {
	repoLog := baseLog.With("repo", "AdminRoleRepo")
	return &adminRoleRepo{db: db, log: repoLog}
}

func (rr *adminRoleRepo) Grant(ctx context.Context, tx *gorm.DB, accountID, grantedBy uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	return transaction.WithContext(ctx).Create(&types.AdminRole{
		AccountID: accountID,
		GrantedBy: grantedBy,
	}).Error
}

func (rr *adminRoleRepo) Revoke(ctx context.Context, tx *gorm.DB, accountID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	res := transaction.WithContext(ctx).
		Where("account_id = ?", accountID).
		Delete(&types.AdminRole{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (rr *adminRoleRepo) IsAdmin(ctx context.Context, tx *gorm.DB, accountID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.AdminRole{}).
		Where("account_id = ?", accountID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (rr *adminRoleRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.AdminRole{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
