package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/funkyrave/funky-backend/internal/data/repos"
	types "github.com/funkyrave/funky-backend/internal/domain"
	apperrors "github.com/funkyrave/funky-backend/internal/pkg/errors"
	"github.com/funkyrave/funky-backend/internal/platform/logger"
	"github.com/funkyrave/funky-backend/internal/requestdata"
)

// LedgerService moves token balances. Transfers into a registered venue pay
// a fee scaled by the owner's holding tier; everything else moves at face
// value. All movement for one call happens in a single transaction.
type LedgerService interface {
	Transfer(ctx context.Context, toID uuid.UUID, amount int64) (*types.TransferRecord, error)
	// TransferFrom spends fromID's balance on the strength of a prior
	// allowance grant to the caller. Fee tiering follows the owner, not the
	// caller.
	TransferFrom(ctx context.Context, fromID, toID uuid.UUID, amount int64) (*types.TransferRecord, error)
	Approve(ctx context.Context, spenderID uuid.UUID, amount int64) error
	BalanceOf(ctx context.Context, accountID uuid.UUID) (int64, error)
	AllowanceOf(ctx context.Context, ownerID, spenderID uuid.UUID) (int64, error)
	TotalSupply(ctx context.Context) (int64, error)
	History(ctx context.Context, accountID uuid.UUID, limit int) ([]*types.TransferRecord, error)
}

type ledgerService struct {
	db              *gorm.DB
	log             *logger.Logger
	accountRepo     repos.AccountRepo
	allowanceRepo   repos.AllowanceRepo
	transferRepo    repos.TransferRecordRepo
	tokenConfigRepo repos.TokenConfigRepo
	tierService     TierService
	venueService    VenueService
	exemptions      ExemptionService
}

func NewLedgerService(
	db *gorm.DB,
	baseLog *logger.Logger,
	accountRepo repos.AccountRepo,
	allowanceRepo repos.AllowanceRepo,
	transferRepo repos.TransferRecordRepo,
	tokenConfigRepo repos.TokenConfigRepo,
	tierService TierService,
	venueService VenueService,
	exemptions ExemptionService,
) LedgerService {
	serviceLog := baseLog.With("service", "LedgerService")
	return &ledgerService{
		db:              db,
		log:             serviceLog,
		accountRepo:     accountRepo,
		allowanceRepo:   allowanceRepo,
		transferRepo:    transferRepo,
		tokenConfigRepo: tokenConfigRepo,
		tierService:     tierService,
		venueService:    venueService,
		exemptions:      exemptions,
	}
}

func (ls *ledgerService) Transfer(ctx context.Context, toID uuid.UUID, amount int64) (*types.TransferRecord, error) {
	fromID := requestdata.CallerID(ctx)
	if fromID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}
	return ls.execute(ctx, types.TransferKindDirect, fromID, toID, uuid.Nil, amount)
}

func (ls *ledgerService) TransferFrom(ctx context.Context, fromID, toID uuid.UUID, amount int64) (*types.TransferRecord, error) {
	spenderID := requestdata.CallerID(ctx)
	if spenderID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}
	return ls.execute(ctx, types.TransferKindDelegated, fromID, toID, spenderID, amount)
}

// execute runs the fee split for one transfer. The fee-relevant holder is
// always the owner of the moved balance, so a delegated transfer cannot
// launder a worse tier through a better-tiered spender.
func (ls *ledgerService) execute(ctx context.Context, kind string, fromID, toID, spenderID uuid.UUID, amount int64) (*types.TransferRecord, error) {
	if fromID == uuid.Nil || toID == uuid.Nil {
		return nil, apperrors.ErrInvalidAddress
	}
	if amount <= 0 {
		return nil, fmt.Errorf("transfer amount must be positive: %w", apperrors.ErrInvalidArgument)
	}

	var record *types.TransferRecord
	err := ls.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sender, err := ls.accountRepo.GetByID(ctx, tx, fromID)
		if err != nil {
			return fmt.Errorf("resolve sender: %w", err)
		}
		if sender.Balance < amount {
			return apperrors.ErrInsufficientBalance
		}
		if _, err := ls.accountRepo.GetByID(ctx, tx, toID); err != nil {
			return fmt.Errorf("resolve destination: %w", err)
		}

		if kind == types.TransferKindDelegated {
			allowance, err := ls.allowanceRepo.Get(ctx, tx, fromID, spenderID)
			if err != nil {
				return fmt.Errorf("read allowance: %w", err)
			}
			if allowance == nil || allowance.Amount < amount {
				return apperrors.ErrInsufficientAllowance
			}
			if err := ls.allowanceRepo.Subtract(ctx, tx, fromID, spenderID, amount); err != nil {
				return fmt.Errorf("decrement allowance: %w", err)
			}
		}

		fee, feeRecipientID, err := ls.computeFee(ctx, tx, fromID, toID, amount)
		if err != nil {
			return err
		}
		net := amount - fee

		if err := ls.accountRepo.AddBalance(ctx, tx, fromID, -amount); err != nil {
			return fmt.Errorf("debit sender: %w", err)
		}
		if err := ls.accountRepo.AddBalance(ctx, tx, toID, net); err != nil {
			return fmt.Errorf("credit destination: %w", err)
		}
		if fee > 0 {
			if err := ls.accountRepo.AddBalance(ctx, tx, feeRecipientID, fee); err != nil {
				return fmt.Errorf("credit fee recipient: %w", err)
			}
		}

		record = &types.TransferRecord{
			ID:        uuid.New(),
			Kind:      kind,
			FromID:    fromID,
			ToID:      toID,
			SpenderID: spenderID,
			Amount:    amount,
			Fee:       fee,
			Net:       net,
			CreatedAt: time.Now(),
		}
		if fee > 0 {
			record.FeeRecipientID = feeRecipientID
		}
		if err := ls.transferRepo.Append(ctx, tx, record); err != nil {
			return fmt.Errorf("record transfer: %w", err)
		}

		ls.log.Debug("Transfer executed",
			"kind", kind,
			"from_id", fromID,
			"to_id", toID,
			"amount", amount,
			"fee", fee,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// computeFee classifies the transfer and returns the fee plus its recipient.
// Transfers to unregistered destinations and transfers by exempt owners pay
// nothing. The division truncates toward zero.
func (ls *ledgerService) computeFee(ctx context.Context, tx *gorm.DB, ownerID, toID uuid.UUID, amount int64) (int64, uuid.UUID, error) {
	isVenue, err := ls.venueService.IsVenue(ctx, tx, toID)
	if err != nil {
		return 0, uuid.Nil, fmt.Errorf("classify destination: %w", err)
	}
	if !isVenue {
		return 0, uuid.Nil, nil
	}
	exempt, err := ls.exemptions.IsExempt(ctx, tx, ownerID)
	if err != nil {
		return 0, uuid.Nil, fmt.Errorf("check exemption: %w", err)
	}
	if exempt {
		return 0, uuid.Nil, nil
	}
	rate, err := ls.tierService.FeeRateFor(ctx, tx, ownerID)
	if err != nil {
		return 0, uuid.Nil, err
	}
	fee := amount * rate / types.RateDenominator
	if fee == 0 {
		return 0, uuid.Nil, nil
	}
	cfg, err := ls.tokenConfigRepo.Get(ctx, tx)
	if err != nil {
		return 0, uuid.Nil, fmt.Errorf("read token config: %w", err)
	}
	return fee, cfg.FeeRecipientID, nil
}

func (ls *ledgerService) Approve(ctx context.Context, spenderID uuid.UUID, amount int64) error {
	ownerID := requestdata.CallerID(ctx)
	if ownerID == uuid.Nil {
		return apperrors.ErrUnauthorized
	}
	if spenderID == uuid.Nil {
		return apperrors.ErrInvalidAddress
	}
	if amount < 0 {
		return fmt.Errorf("allowance must be non-negative: %w", apperrors.ErrInvalidArgument)
	}
	return ls.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ls.accountRepo.GetByID(ctx, tx, spenderID); err != nil {
			return fmt.Errorf("resolve spender: %w", err)
		}
		if err := ls.allowanceRepo.Set(ctx, tx, ownerID, spenderID, amount); err != nil {
			return fmt.Errorf("set allowance: %w", err)
		}
		ls.log.Debug("Allowance set", "owner_id", ownerID, "spender_id", spenderID, "amount", amount)
		return nil
	})
}

func (ls *ledgerService) BalanceOf(ctx context.Context, accountID uuid.UUID) (int64, error) {
	if accountID == uuid.Nil {
		return 0, apperrors.ErrInvalidAddress
	}
	account, err := ls.accountRepo.GetByID(ctx, nil, accountID)
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}

func (ls *ledgerService) AllowanceOf(ctx context.Context, ownerID, spenderID uuid.UUID) (int64, error) {
	if ownerID == uuid.Nil || spenderID == uuid.Nil {
		return 0, apperrors.ErrInvalidAddress
	}
	allowance, err := ls.allowanceRepo.Get(ctx, nil, ownerID, spenderID)
	if err != nil {
		return 0, err
	}
	if allowance == nil {
		return 0, nil
	}
	return allowance.Amount, nil
}

func (ls *ledgerService) TotalSupply(ctx context.Context) (int64, error) {
	cfg, err := ls.tokenConfigRepo.Get(ctx, nil)
	if err != nil {
		return 0, err
	}
	return cfg.TotalSupply, nil
}

func (ls *ledgerService) History(ctx context.Context, accountID uuid.UUID, limit int) ([]*types.TransferRecord, error) {
	if accountID == uuid.Nil {
		return nil, apperrors.ErrInvalidAddress
	}
	return ls.transferRepo.ListByAccount(ctx, nil, accountID, limit)
}
