package fees

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/funkyrave/funky-backend/internal/domain"
	apperrors "github.com/funkyrave/funky-backend/internal/pkg/errors"
	"github.com/funkyrave/funky-backend/internal/platform/logger"
)

// TokenConfigRepo reads and updates the singleton token config row written
// at genesis.
type TokenConfigRepo interface {
	Get(ctx context.Context, tx *gorm.DB) (*types.TokenConfig, error)
	SetFeeRecipient(ctx context.Context, tx *gorm.DB, recipientID uuid.UUID) error
}

type tokenConfigRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTokenConfigRepo(db *gorm.DB, baseLog *logger.Logger) TokenConfigRepo {
	repoLog := baseLog.With("repo", "TokenConfigRepo")
	return &tokenConfigRepo{db: db, log: repoLog}
}

func (tr *tokenConfigRepo) Get(ctx context.Context, tx *gorm.DB) (*types.TokenConfig, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var result types.TokenConfig
	err := transaction.WithContext(ctx).
		First(&result, "id = ?", 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (tr *tokenConfigRepo) SetFeeRecipient(ctx context.Context, tx *gorm.DB, recipientID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	result := transaction.WithContext(ctx).
		Model(&types.TokenConfig{}).
		Where("id = ?", 1).
		Updates(map[string]interface{}{
			"fee_recipient_id": recipientID,
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
