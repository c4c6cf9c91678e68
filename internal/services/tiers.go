package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/funkyrave/funky-backend/internal/data/repos"
	types "github.com/funkyrave/funky-backend/internal/domain"
	apperrors "github.com/funkyrave/funky-backend/internal/pkg/errors"
	"github.com/funkyrave/funky-backend/internal/platform/logger"
	"github.com/funkyrave/funky-backend/internal/requestdata"
)

// SetHolderTierInput carries one holder tier write. Tiers arrive in batches
// from the off-ledger holding tracker; BatchID groups the writes of one sync
// run and ReasonCode explains regressions.
type SetHolderTierInput struct {
	AccountID  uuid.UUID
	Value      int64
	ReasonCode string
	BatchID    string
}

type TierService interface {
	SetFeeRate(ctx context.Context, threshold, rate int64) error
	SetHolderTier(ctx context.Context, input SetHolderTierInput) error
	SetHolderTiers(ctx context.Context, inputs []SetHolderTierInput) error
	// FeeRateFor resolves the transfer fee rate (out of 1000) for a holder
	// from their recorded holding-day tier.
	FeeRateFor(ctx context.Context, tx *gorm.DB, accountID uuid.UUID) (int64, error)
	ListFeeTiers(ctx context.Context) ([]*types.FeeTier, error)
	HolderTier(ctx context.Context, accountID uuid.UUID) (*types.HolderTier, error)
}

type tierService struct {
	db              *gorm.DB
	log             *logger.Logger
	adminRoleRepo   repos.AdminRoleRepo
	tierUpdaterRepo repos.TierUpdaterRepo
	feeTierRepo     repos.FeeTierRepo
	holderTierRepo  repos.HolderTierRepo
	eventRepo       repos.GovernanceEventRepo
}

func NewTierService(
	db *gorm.DB,
	baseLog *logger.Logger,
	adminRoleRepo repos.AdminRoleRepo,
	tierUpdaterRepo repos.TierUpdaterRepo,
	feeTierRepo repos.FeeTierRepo,
	holderTierRepo repos.HolderTierRepo,
	eventRepo repos.GovernanceEventRepo,
) TierService {
	serviceLog := baseLog.With("service", "TierService")
	return &tierService{
		db:              db,
		log:             serviceLog,
		adminRoleRepo:   adminRoleRepo,
		tierUpdaterRepo: tierUpdaterRepo,
		feeTierRepo:     feeTierRepo,
		holderTierRepo:  holderTierRepo,
		eventRepo:       eventRepo,
	}
}

func (ts *tierService) SetFeeRate(ctx context.Context, threshold, rate int64) error {
	if threshold < 0 {
		return fmt.Errorf("threshold must be non-negative: %w", apperrors.ErrInvalidArgument)
	}
	if rate < 0 || rate > types.MaxRate {
		return apperrors.ErrFeeTooHigh
	}
	return ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		callerID, err := requireAdmin(ctx, tx, ts.adminRoleRepo)
		if err != nil {
			return err
		}
		if err := ts.feeTierRepo.Upsert(ctx, tx, threshold, rate); err != nil {
			return fmt.Errorf("upsert fee tier: %w", err)
		}
		payload := datatypes.JSON(fmt.Sprintf(`{"threshold":%d,"rate":%d}`, threshold, rate))
		if err := ts.eventRepo.Append(ctx, tx, types.EventFeeRateUpdated, uuid.Nil, callerID, payload); err != nil {
			return fmt.Errorf("record fee rate update: %w", err)
		}
		ts.log.Info("Fee rate updated", "threshold", threshold, "rate", rate)
		return nil
	})
}

func (ts *tierService) SetHolderTier(ctx context.Context, input SetHolderTierInput) error {
	return ts.SetHolderTiers(ctx, []SetHolderTierInput{input})
}

// SetHolderTiers applies a batch of holder tier writes atomically. Callers
// must hold the tier updater or admin role. A write that would lower a
// holder's recorded tier is rejected unless the batch explains itself with
// the FIFO regression reason code.
func (ts *tierService) SetHolderTiers(ctx context.Context, inputs []SetHolderTierInput) error {
	if len(inputs) == 0 {
		return nil
	}
	callerID := requestdata.CallerID(ctx)
	if callerID == uuid.Nil {
		return apperrors.ErrUnauthorized
	}
	return ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		isUpdater, err := ts.tierUpdaterRepo.IsTierUpdater(ctx, tx, callerID)
		if err != nil {
			return fmt.Errorf("check tier updater role: %w", err)
		}
		if !isUpdater {
			isAdmin, err := ts.adminRoleRepo.IsAdmin(ctx, tx, callerID)
			if err != nil {
				return fmt.Errorf("check admin role: %w", err)
			}
			if !isAdmin {
				return apperrors.ErrNotTierUpdater
			}
		}
		for _, input := range inputs {
			if input.AccountID == uuid.Nil {
				return apperrors.ErrInvalidAddress
			}
			if input.Value < 0 {
				return fmt.Errorf("tier value must be non-negative: %w", apperrors.ErrInvalidArgument)
			}
			current, err := ts.holderTierRepo.Get(ctx, tx, input.AccountID)
			if err != nil {
				return fmt.Errorf("read holder tier: %w", err)
			}
			if current != nil && input.Value < current.Value && input.ReasonCode != types.ReasonFIFORegression {
				return apperrors.ErrTierDowngradeNotAllowed
			}
			if err := ts.holderTierRepo.Upsert(ctx, tx, &types.HolderTier{
				AccountID:  input.AccountID,
				Value:      input.Value,
				ReasonCode: input.ReasonCode,
				BatchID:    input.BatchID,
				UpdatedBy:  callerID,
				UpdatedAt:  time.Now(),
			}); err != nil {
				return fmt.Errorf("upsert holder tier: %w", err)
			}
			payload := datatypes.JSON(fmt.Sprintf(
				`{"value":%d,"reason_code":%q,"batch_id":%q}`,
				input.Value, input.ReasonCode, input.BatchID,
			))
			if err := ts.eventRepo.Append(ctx, tx, types.EventHolderTierUpdated, input.AccountID, callerID, payload); err != nil {
				return fmt.Errorf("record holder tier update: %w", err)
			}
		}
		ts.log.Debug("Holder tiers updated", "count", len(inputs), "updated_by", callerID)
		return nil
	})
}

func (ts *tierService) FeeRateFor(ctx context.Context, tx *gorm.DB, accountID uuid.UUID) (int64, error) {
	var holdingDays int64
	holder, err := ts.holderTierRepo.Get(ctx, tx, accountID)
	if err != nil {
		return 0, fmt.Errorf("read holder tier: %w", err)
	}
	if holder != nil {
		holdingDays = holder.Value
	}
	tier, err := ts.feeTierRepo.GetFloor(ctx, tx, holdingDays)
	if err != nil {
		return 0, fmt.Errorf("resolve fee tier: %w", err)
	}
	return tier.Rate, nil
}

func (ts *tierService) ListFeeTiers(ctx context.Context) ([]*types.FeeTier, error) {
	return ts.feeTierRepo.GetAll(ctx, nil)
}

func (ts *tierService) HolderTier(ctx context.Context, accountID uuid.UUID) (*types.HolderTier, error) {
	if accountID == uuid.Nil {
		return nil, apperrors.ErrInvalidAddress
	}
	return ts.holderTierRepo.Get(ctx, nil, accountID)
}
