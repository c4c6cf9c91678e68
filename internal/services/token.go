package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/funkyrave/funky-backend/internal/data/repos"
	types "github.com/funkyrave/funky-backend/internal/domain"
	apperrors "github.com/funkyrave/funky-backend/internal/pkg/errors"
	"github.com/funkyrave/funky-backend/internal/platform/logger"
)

type TokenMetadata struct {
	Name           string    `json:"name"`
	Symbol         string    `json:"symbol"`
	TotalSupply    int64     `json:"total_supply"`
	FeeRecipientID uuid.UUID `json:"fee_recipient_id"`
}

type TokenService interface {
	Metadata(ctx context.Context) (*TokenMetadata, error)
	SetFeeRecipient(ctx context.Context, recipientID uuid.UUID) error
}

type tokenService struct {
	db              *gorm.DB
	log             *logger.Logger
	accountRepo     repos.AccountRepo
	adminRoleRepo   repos.AdminRoleRepo
	tokenConfigRepo repos.TokenConfigRepo
	eventRepo       repos.GovernanceEventRepo
}

func NewTokenService(
	db *gorm.DB,
	baseLog *logger.Logger,
	accountRepo repos.AccountRepo,
	adminRoleRepo repos.AdminRoleRepo,
	tokenConfigRepo repos.TokenConfigRepo,
	eventRepo repos.GovernanceEventRepo,
) TokenService {
	serviceLog := baseLog.With("service", "TokenService")
	return &tokenService{
		db:              db,
		log:             serviceLog,
		accountRepo:     accountRepo,
		adminRoleRepo:   adminRoleRepo,
		tokenConfigRepo: tokenConfigRepo,
		eventRepo:       eventRepo,
	}
}

func (ts *tokenService) Metadata(ctx context.Context) (*TokenMetadata, error) {
	cfg, err := ts.tokenConfigRepo.Get(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &TokenMetadata{
		Name:           cfg.Name,
		Symbol:         cfg.Symbol,
		TotalSupply:    cfg.TotalSupply,
		FeeRecipientID: cfg.FeeRecipientID,
	}, nil
}

func (ts *tokenService) SetFeeRecipient(ctx context.Context, recipientID uuid.UUID) error {
	if recipientID == uuid.Nil {
		return apperrors.ErrInvalidAddress
	}
	return ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		callerID, err := requireAdmin(ctx, tx, ts.adminRoleRepo)
		if err != nil {
			return err
		}
		if _, err := ts.accountRepo.GetByID(ctx, tx, recipientID); err != nil {
			return fmt.Errorf("resolve fee recipient: %w", err)
		}
		if err := ts.tokenConfigRepo.SetFeeRecipient(ctx, tx, recipientID); err != nil {
			return fmt.Errorf("set fee recipient: %w", err)
		}
		payload := datatypes.JSON(fmt.Sprintf(`{"recipient_id":%q}`, recipientID))
		if err := ts.eventRepo.Append(ctx, tx, types.EventFeeRecipientUpdated, recipientID, callerID, payload); err != nil {
			return fmt.Errorf("record fee recipient update: %w", err)
		}
		ts.log.Info("Fee recipient updated", "recipient_id", recipientID, "updated_by", callerID)
		return nil
	})
}
