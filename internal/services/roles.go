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
	"github.com/funkyrave/funky-backend/internal/requestdata"
)

// RoleService manages the two governance roles. Admins control every
// privileged operation; tier updaters may only write holder tiers and must
// be service accounts.
type RoleService interface {
	AddAdmin(ctx context.Context, accountID uuid.UUID) error
	RemoveAdmin(ctx context.Context, accountID uuid.UUID) error
	AddTierUpdater(ctx context.Context, accountID uuid.UUID) error
	RemoveTierUpdater(ctx context.Context, accountID uuid.UUID) error
	IsAdmin(ctx context.Context, accountID uuid.UUID) (bool, error)
	IsTierUpdater(ctx context.Context, accountID uuid.UUID) (bool, error)
}

type roleService struct {
	db              *gorm.DB
	log             *logger.Logger
	accountRepo     repos.AccountRepo
	adminRoleRepo   repos.AdminRoleRepo
	tierUpdaterRepo repos.TierUpdaterRepo
	eventRepo       repos.GovernanceEventRepo
}

func NewRoleService(
	db *gorm.DB,
	baseLog *logger.Logger,
	accountRepo repos.AccountRepo,
	adminRoleRepo repos.AdminRoleRepo,
	tierUpdaterRepo repos.TierUpdaterRepo,
	eventRepo repos.GovernanceEventRepo,
) RoleService {
	serviceLog := baseLog.With("service", "RoleService")
	return &roleService{
		db:              db,
		log:             serviceLog,
		accountRepo:     accountRepo,
		adminRoleRepo:   adminRoleRepo,
		tierUpdaterRepo: tierUpdaterRepo,
		eventRepo:       eventRepo,
	}
}

// requireAdmin resolves the caller from the request context and fails unless
// they hold the admin role.
func requireAdmin(ctx context.Context, tx *gorm.DB, adminRoleRepo repos.AdminRoleRepo) (uuid.UUID, error) {
	callerID := requestdata.CallerID(ctx)
	if callerID == uuid.Nil {
		return uuid.Nil, apperrors.ErrUnauthorized
	}
	isAdmin, err := adminRoleRepo.IsAdmin(ctx, tx, callerID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("check admin role: %w", err)
	}
	if !isAdmin {
		return uuid.Nil, apperrors.ErrNotAdmin
	}
	return callerID, nil
}

func (rs *roleService) AddAdmin(ctx context.Context, accountID uuid.UUID) error {
	if accountID == uuid.Nil {
		return apperrors.ErrInvalidAddress
	}
	return rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		callerID, err := requireAdmin(ctx, tx, rs.adminRoleRepo)
		if err != nil {
			return err
		}
		if _, err := rs.accountRepo.GetByID(ctx, tx, accountID); err != nil {
			return fmt.Errorf("resolve account: %w", err)
		}
		already, err := rs.adminRoleRepo.IsAdmin(ctx, tx, accountID)
		if err != nil {
			return fmt.Errorf("check existing role: %w", err)
		}
		if already {
			return nil
		}
		if err := rs.adminRoleRepo.Grant(ctx, tx, accountID, callerID); err != nil {
			return fmt.Errorf("grant admin role: %w", err)
		}
		if err := rs.eventRepo.Append(ctx, tx, types.EventAdminAdded, accountID, callerID, nil); err != nil {
			return fmt.Errorf("record admin grant: %w", err)
		}
		rs.log.Info("Admin added", "account_id", accountID, "granted_by", callerID)
		return nil
	})
}

func (rs *roleService) RemoveAdmin(ctx context.Context, accountID uuid.UUID) error {
	if accountID == uuid.Nil {
		return apperrors.ErrInvalidAddress
	}
	return rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		callerID, err := requireAdmin(ctx, tx, rs.adminRoleRepo)
		if err != nil {
			return err
		}
		held, err := rs.adminRoleRepo.IsAdmin(ctx, tx, accountID)
		if err != nil {
			return fmt.Errorf("check existing role: %w", err)
		}
		if !held {
			return nil
		}
		count, err := rs.adminRoleRepo.Count(ctx, tx)
		if err != nil {
			return fmt.Errorf("count admins: %w", err)
		}
		if count <= 1 {
			return apperrors.ErrCannotRemoveLastAdmin
		}
		if _, err := rs.adminRoleRepo.Revoke(ctx, tx, accountID); err != nil {
			return fmt.Errorf("revoke admin role: %w", err)
		}
		if err := rs.eventRepo.Append(ctx, tx, types.EventAdminRemoved, accountID, callerID, nil); err != nil {
			return fmt.Errorf("record admin removal: %w", err)
		}
		rs.log.Info("Admin removed", "account_id", accountID, "removed_by", callerID)
		return nil
	})
}

func (rs *roleService) AddTierUpdater(ctx context.Context, accountID uuid.UUID) error {
	if accountID == uuid.Nil {
		return apperrors.ErrInvalidAddress
	}
	return rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		callerID, err := requireAdmin(ctx, tx, rs.adminRoleRepo)
		if err != nil {
			return err
		}
		account, err := rs.accountRepo.GetByID(ctx, tx, accountID)
		if err != nil {
			return fmt.Errorf("resolve account: %w", err)
		}
		if account.Kind != types.AccountKindService {
			return apperrors.ErrTierUpdaterMustBeContract
		}
		already, err := rs.tierUpdaterRepo.IsTierUpdater(ctx, tx, accountID)
		if err != nil {
			return fmt.Errorf("check existing role: %w", err)
		}
		if already {
			return nil
		}
		if err := rs.tierUpdaterRepo.Grant(ctx, tx, accountID, callerID); err != nil {
			return fmt.Errorf("grant tier updater role: %w", err)
		}
		payload := datatypes.JSON(fmt.Sprintf(`{"kind":%q}`, account.Kind))
		if err := rs.eventRepo.Append(ctx, tx, types.EventTierUpdaterAdded, accountID, callerID, payload); err != nil {
			return fmt.Errorf("record tier updater grant: %w", err)
		}
		rs.log.Info("Tier updater added", "account_id", accountID, "granted_by", callerID)
		return nil
	})
}

func (rs *roleService) RemoveTierUpdater(ctx context.Context, accountID uuid.UUID) error {
	if accountID == uuid.Nil {
		return apperrors.ErrInvalidAddress
	}
	return rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		callerID, err := requireAdmin(ctx, tx, rs.adminRoleRepo)
		if err != nil {
			return err
		}
		removed, err := rs.tierUpdaterRepo.Revoke(ctx, tx, accountID)
		if err != nil {
			return fmt.Errorf("revoke tier updater role: %w", err)
		}
		if !removed {
			return nil
		}
		if err := rs.eventRepo.Append(ctx, tx, types.EventTierUpdaterRemoved, accountID, callerID, nil); err != nil {
			return fmt.Errorf("record tier updater removal: %w", err)
		}
		rs.log.Info("Tier updater removed", "account_id", accountID, "removed_by", callerID)
		return nil
	})
}

func (rs *roleService) IsAdmin(ctx context.Context, accountID uuid.UUID) (bool, error) {
	return rs.adminRoleRepo.IsAdmin(ctx, nil, accountID)
}

func (rs *roleService) IsTierUpdater(ctx context.Context, accountID uuid.UUID) (bool, error) {
	return rs.tierUpdaterRepo.IsTierUpdater(ctx, nil, accountID)
}
