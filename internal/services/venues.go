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

// VenueService tracks the exchange venues that attract transfer fees.
// Factories are allowlisted by admins; a venue can only be enrolled once a
// registered factory has attested that it created the venue.
type VenueService interface {
	AddFactory(ctx context.Context, factoryID uuid.UUID) error
	RemoveFactory(ctx context.Context, factoryID uuid.UUID) error
	IsFactory(ctx context.Context, factoryID uuid.UUID) (bool, error)
	// RegisterManifest records the caller factory's claim that it created
	// the venue. Only registered factories may attest.
	RegisterManifest(ctx context.Context, venueID uuid.UUID) error
	AddVenue(ctx context.Context, venueID uuid.UUID) error
	RemoveVenue(ctx context.Context, venueID uuid.UUID) error
	IsVenue(ctx context.Context, tx *gorm.DB, venueID uuid.UUID) (bool, error)
}

type venueService struct {
	db            *gorm.DB
	log           *logger.Logger
	accountRepo   repos.AccountRepo
	adminRoleRepo repos.AdminRoleRepo
	factoryRepo   repos.FactoryRepo
	manifestRepo  repos.VenueManifestRepo
	venueRepo     repos.VenueRepo
	eventRepo     repos.GovernanceEventRepo
}

func NewVenueService(
	db *gorm.DB,
	baseLog *logger.Logger,
	accountRepo repos.AccountRepo,
	adminRoleRepo repos.AdminRoleRepo,
	factoryRepo repos.FactoryRepo,
	manifestRepo repos.VenueManifestRepo,
	venueRepo repos.VenueRepo,
	eventRepo repos.GovernanceEventRepo,
) VenueService {
	serviceLog := baseLog.With("service", "VenueService")
	return &venueService{
		db:            db,
		log:           serviceLog,
		accountRepo:   accountRepo,
		adminRoleRepo: adminRoleRepo,
		factoryRepo:   factoryRepo,
		manifestRepo:  manifestRepo,
		venueRepo:     venueRepo,
		eventRepo:     eventRepo,
	}
}

func (vs *venueService) AddFactory(ctx context.Context, factoryID uuid.UUID) error {
	if factoryID == uuid.Nil {
		return apperrors.ErrInvalidAddress
	}
	return vs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		callerID, err := requireAdmin(ctx, tx, vs.adminRoleRepo)
		if err != nil {
			return err
		}
		if _, err := vs.accountRepo.GetByID(ctx, tx, factoryID); err != nil {
			return fmt.Errorf("resolve factory account: %w", err)
		}
		exists, err := vs.factoryRepo.Exists(ctx, tx, factoryID)
		if err != nil {
			return fmt.Errorf("check factory: %w", err)
		}
		if exists {
			return nil
		}
		if err := vs.factoryRepo.Add(ctx, tx, &types.Factory{
			ID:        factoryID,
			AddedBy:   callerID,
			CreatedAt: time.Now(),
		}); err != nil {
			return fmt.Errorf("add factory: %w", err)
		}
		if err := vs.eventRepo.Append(ctx, tx, types.EventFactoryAdded, factoryID, callerID, nil); err != nil {
			return fmt.Errorf("record factory addition: %w", err)
		}
		vs.log.Info("Factory added", "factory_id", factoryID, "added_by", callerID)
		return nil
	})
}

func (vs *venueService) RemoveFactory(ctx context.Context, factoryID uuid.UUID) error {
	if factoryID == uuid.Nil {
		return apperrors.ErrInvalidAddress
	}
	return vs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		callerID, err := requireAdmin(ctx, tx, vs.adminRoleRepo)
		if err != nil {
			return err
		}
		removed, err := vs.factoryRepo.Remove(ctx, tx, factoryID)
		if err != nil {
			return fmt.Errorf("remove factory: %w", err)
		}
		if !removed {
			return nil
		}
		if err := vs.eventRepo.Append(ctx, tx, types.EventFactoryRemoved, factoryID, callerID, nil); err != nil {
			return fmt.Errorf("record factory removal: %w", err)
		}
		vs.log.Info("Factory removed", "factory_id", factoryID, "removed_by", callerID)
		return nil
	})
}

func (vs *venueService) IsFactory(ctx context.Context, factoryID uuid.UUID) (bool, error) {
	return vs.factoryRepo.Exists(ctx, nil, factoryID)
}

func (vs *venueService) RegisterManifest(ctx context.Context, venueID uuid.UUID) error {
	if venueID == uuid.Nil {
		return apperrors.ErrInvalidAddress
	}
	callerID := requestdata.CallerID(ctx)
	if callerID == uuid.Nil {
		return apperrors.ErrUnauthorized
	}
	return vs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		registered, err := vs.factoryRepo.Exists(ctx, tx, callerID)
		if err != nil {
			return fmt.Errorf("check factory: %w", err)
		}
		if !registered {
			return apperrors.ErrFactoryNotRegistered
		}
		if err := vs.manifestRepo.Upsert(ctx, tx, &types.VenueManifest{
			VenueID:   venueID,
			FactoryID: callerID,
			CreatedAt: time.Now(),
		}); err != nil {
			return fmt.Errorf("record venue manifest: %w", err)
		}
		vs.log.Info("Venue manifest registered", "venue_id", venueID, "factory_id", callerID)
		return nil
	})
}

// AddVenue enrolls a venue as fee-bearing. The venue must carry a manifest
// from a factory that is still on the allowlist; self-attested or orphaned
// venues are rejected.
func (vs *venueService) AddVenue(ctx context.Context, venueID uuid.UUID) error {
	if venueID == uuid.Nil {
		return apperrors.ErrInvalidAddress
	}
	return vs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		callerID, err := requireAdmin(ctx, tx, vs.adminRoleRepo)
		if err != nil {
			return err
		}
		manifest, err := vs.manifestRepo.GetByVenue(ctx, tx, venueID)
		if err != nil {
			return fmt.Errorf("read venue manifest: %w", err)
		}
		if manifest == nil {
			return apperrors.ErrFactoryNotRegistered
		}
		allowed, err := vs.factoryRepo.Exists(ctx, tx, manifest.FactoryID)
		if err != nil {
			return fmt.Errorf("check factory: %w", err)
		}
		if !allowed {
			return apperrors.ErrFactoryNotRegistered
		}
		exists, err := vs.venueRepo.Exists(ctx, tx, venueID)
		if err != nil {
			return fmt.Errorf("check venue: %w", err)
		}
		if exists {
			return nil
		}
		if err := vs.venueRepo.Add(ctx, tx, &types.Venue{
			ID:        venueID,
			FactoryID: manifest.FactoryID,
			AddedBy:   callerID,
			CreatedAt: time.Now(),
		}); err != nil {
			return fmt.Errorf("add venue: %w", err)
		}
		payload := datatypes.JSON(fmt.Sprintf(`{"factory_id":%q}`, manifest.FactoryID))
		if err := vs.eventRepo.Append(ctx, tx, types.EventDexAdded, venueID, callerID, payload); err != nil {
			return fmt.Errorf("record venue addition: %w", err)
		}
		vs.log.Info("Venue added", "venue_id", venueID, "factory_id", manifest.FactoryID)
		return nil
	})
}

func (vs *venueService) RemoveVenue(ctx context.Context, venueID uuid.UUID) error {
	if venueID == uuid.Nil {
		return apperrors.ErrInvalidAddress
	}
	return vs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		callerID, err := requireAdmin(ctx, tx, vs.adminRoleRepo)
		if err != nil {
			return err
		}
		removed, err := vs.venueRepo.Remove(ctx, tx, venueID)
		if err != nil {
			return fmt.Errorf("remove venue: %w", err)
		}
		if !removed {
			return nil
		}
		if err := vs.eventRepo.Append(ctx, tx, types.EventDexRemoved, venueID, callerID, nil); err != nil {
			return fmt.Errorf("record venue removal: %w", err)
		}
		vs.log.Info("Venue removed", "venue_id", venueID, "removed_by", callerID)
		return nil
	})
}

func (vs *venueService) IsVenue(ctx context.Context, tx *gorm.DB, venueID uuid.UUID) (bool, error) {
	return vs.venueRepo.Exists(ctx, tx, venueID)
}
