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

// SetExemptInput carries one exemption change with its audit context. The
// request ID ties the change back to the approval ticket that authorized it;
// it is recorded verbatim and never checked for uniqueness.
type SetExemptInput struct {
	AccountID    uuid.UUID
	Exempt       bool
	ReasonCode   string
	CategoryCode string
	RequestID    string
	ApproverID   uuid.UUID
}

type ExemptionService interface {
	SetExempt(ctx context.Context, input SetExemptInput) error
	IsExempt(ctx context.Context, tx *gorm.DB, accountID uuid.UUID) (bool, error)
	ListAudit(ctx context.Context, accountID uuid.UUID) ([]*types.ExemptionAudit, error)
}

type exemptionService struct {
	db            *gorm.DB
	log           *logger.Logger
	adminRoleRepo repos.AdminRoleRepo
	exemptionRepo repos.ExemptionRepo
}

func NewExemptionService(
	db *gorm.DB,
	baseLog *logger.Logger,
	adminRoleRepo repos.AdminRoleRepo,
	exemptionRepo repos.ExemptionRepo,
) ExemptionService {
	serviceLog := baseLog.With("service", "ExemptionService")
	return &exemptionService{
		db:            db,
		log:           serviceLog,
		adminRoleRepo: adminRoleRepo,
		exemptionRepo: exemptionRepo,
	}
}

// SetExempt adds or removes a fee exemption. Membership is capped; removing
// an exempt account frees its slot. Every call, in either direction, appends
// an audit row; state-unchanged calls skip the membership write but still
// record their reason and request metadata.
func (es *exemptionService) SetExempt(ctx context.Context, input SetExemptInput) error {
	if input.AccountID == uuid.Nil {
		return apperrors.ErrInvalidAddress
	}
	return es.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		callerID, err := requireAdmin(ctx, tx, es.adminRoleRepo)
		if err != nil {
			return err
		}
		exempt, err := es.exemptionRepo.IsExempt(ctx, tx, input.AccountID)
		if err != nil {
			return fmt.Errorf("check exemption: %w", err)
		}
		action := types.ExemptionActionRemoved
		if input.Exempt {
			action = types.ExemptionActionAdded
		}
		switch {
		case input.Exempt && !exempt:
			count, err := es.exemptionRepo.Count(ctx, tx)
			if err != nil {
				return fmt.Errorf("count exemptions: %w", err)
			}
			if count >= types.ExemptionCap {
				return apperrors.ErrExemptAddressCapReached
			}
			if err := es.exemptionRepo.Add(ctx, tx, &types.FeeExemption{
				AccountID:    input.AccountID,
				ReasonCode:   input.ReasonCode,
				CategoryCode: input.CategoryCode,
				RequestID:    input.RequestID,
				InitiatorID:  callerID,
				ApproverID:   input.ApproverID,
				CreatedAt:    time.Now(),
			}); err != nil {
				return fmt.Errorf("add exemption: %w", err)
			}
		case !input.Exempt && exempt:
			if _, err := es.exemptionRepo.Remove(ctx, tx, input.AccountID); err != nil {
				return fmt.Errorf("remove exemption: %w", err)
			}
		}
		if err := es.exemptionRepo.AppendAudit(ctx, tx, &types.ExemptionAudit{
			ID:           uuid.New(),
			AccountID:    input.AccountID,
			Action:       action,
			ReasonCode:   input.ReasonCode,
			CategoryCode: input.CategoryCode,
			RequestID:    input.RequestID,
			InitiatorID:  callerID,
			ApproverID:   input.ApproverID,
			CreatedAt:    time.Now(),
		}); err != nil {
			return fmt.Errorf("append exemption audit: %w", err)
		}
		es.log.Info("Exemption updated",
			"account_id", input.AccountID,
			"action", action,
			"request_id", input.RequestID,
		)
		return nil
	})
}

func (es *exemptionService) IsExempt(ctx context.Context, tx *gorm.DB, accountID uuid.UUID) (bool, error) {
	return es.exemptionRepo.IsExempt(ctx, tx, accountID)
}

func (es *exemptionService) ListAudit(ctx context.Context, accountID uuid.UUID) ([]*types.ExemptionAudit, error) {
	if accountID == uuid.Nil {
		return nil, apperrors.ErrInvalidAddress
	}
	callerID := requestdata.CallerID(ctx)
	if callerID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}
	isAdmin, err := es.adminRoleRepo.IsAdmin(ctx, nil, callerID)
	if err != nil {
		return nil, fmt.Errorf("check admin role: %w", err)
	}
	if !isAdmin {
		return nil, apperrors.ErrNotAdmin
	}
	return es.exemptionRepo.ListAuditByAccount(ctx, nil, accountID)
}
