package ledger

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/funkyrave/funky-backend/internal/domain"
	"github.com/funkyrave/funky-backend/internal/platform/logger"
)

type AllowanceRepo interface {
	// Get returns nil without error when no allowance has been granted.
	Get(ctx context.Context, tx *gorm.DB, ownerID, spenderID uuid.UUID) (*types.Allowance, error)
	Set(ctx context.Context, tx *gorm.DB, ownerID, spenderID uuid.UUID, amount int64) error
	Subtract(ctx context.Context, tx *gorm.DB, ownerID, spenderID uuid.UUID, amount int64) error
}

type allowanceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAllowanceRepo(db *gorm.DB, baseLog *logger.Logger) AllowanceRepo {
	repoLog := baseLog.With("repo", "AllowanceRepo")
	return &allowanceRepo{db: db, log: repoLog}
}

func (ar *allowanceRepo) Get(ctx context.Context, tx *gorm.DB, ownerID, spenderID uuid.UUID) (*types.Allowance, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var result types.Allowance
	err := transaction.WithContext(ctx).
		First(&result, "owner_id = ? AND spender_id = ?", ownerID, spenderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (ar *allowanceRepo) Set(ctx context.Context, tx *gorm.DB, ownerID, spenderID uuid.UUID, amount int64) error {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}, {Name: "spender_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
		}).
		Create(&types.Allowance{OwnerID: ownerID, SpenderID: spenderID, Amount: amount}).Error
}

func (ar *allowanceRepo) Subtract(ctx context.Context, tx *gorm.DB, ownerID, spenderID uuid.UUID, amount int64) error {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	return transaction.WithContext(ctx).
		Model(&types.Allowance{}).
		Where("owner_id = ? AND spender_id = ?", ownerID, spenderID).
		Update("amount", gorm.Expr("amount - ?", amount)).Error
}

type TransferRecordRepo interface {
	Append(ctx context.Context, tx *gorm.DB, record *types.TransferRecord) error
	ListByAccount(ctx context.Context, tx *gorm.DB, accountID uuid.UUID, limit int) ([]*types.TransferRecord, error)
}

type transferRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTransferRecordRepo(db *gorm.DB, baseLog *logger.Logger) TransferRecordRepo {
	repoLog := baseLog.With("repo", "TransferRecordRepo")
	return &transferRecordRepo{db: db, log: repoLog}
}

func (tr *transferRecordRepo) Append(ctx context.Context, tx *gorm.DB, record *types.TransferRecord) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	return transaction.WithContext(ctx).Create(record).Error
}

func (tr *transferRecordRepo) ListByAccount(ctx context.Context, tx *gorm.DB, accountID uuid.UUID, limit int) ([]*types.TransferRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var results []*types.TransferRecord
	q := transaction.WithContext(ctx).
		Where("from_id = ? OR to_id = ?", accountID, accountID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
