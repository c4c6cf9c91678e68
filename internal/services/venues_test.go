package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	types "github.com/funkyrave/funky-backend/internal/domain"
	apperrors "github.com/funkyrave/funky-backend/internal/pkg/errors"

	"github.com/funkyrave/funky-backend/internal/data/repos/testutil"
)

func TestAddVenueRequiresRegisteredFactory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := testutil.SeedAdmin(t, ctx, env.tx, "venue-admin@test.dev", 0)
	factory := testutil.SeedAccount(t, ctx, env.tx, "venue-factory@test.dev", types.AccountKindService, 0)
	venue := testutil.SeedAccount(t, ctx, env.tx, "venue-dex@test.dev", types.AccountKindService, 0)

	// No manifest at all: the venue cannot prove its origin.
	err := env.venues.AddVenue(asCaller(admin.ID), venue.ID)
	if !errors.Is(err, apperrors.ErrFactoryNotRegistered) {
		t.Fatalf("expected ErrFactoryNotRegistered, got %v", err)
	}

	// An unregistered factory cannot attest.
	err = env.venues.RegisterManifest(asCaller(factory.ID), venue.ID)
	if !errors.Is(err, apperrors.ErrFactoryNotRegistered) {
		t.Fatalf("expected ErrFactoryNotRegistered for attestation, got %v", err)
	}

	if err := env.venues.AddFactory(asCaller(admin.ID), factory.ID); err != nil {
		t.Fatalf("AddFactory: %v", err)
	}
	if err := env.venues.RegisterManifest(asCaller(factory.ID), venue.ID); err != nil {
		t.Fatalf("RegisterManifest: %v", err)
	}
	if err := env.venues.AddVenue(asCaller(admin.ID), venue.ID); err != nil {
		t.Fatalf("AddVenue: %v", err)
	}

	isVenue, err := env.venues.IsVenue(ctx, env.tx, venue.ID)
	if err != nil {
		t.Fatalf("IsVenue: %v", err)
	}
	if !isVenue {
		t.Fatalf("expected venue to be registered")
	}
}

func TestAddVenueRejectsDelistedFactory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := testutil.SeedAdmin(t, ctx, env.tx, "delist-admin@test.dev", 0)
	factory := testutil.SeedAccount(t, ctx, env.tx, "delist-factory@test.dev", types.AccountKindService, 0)
	venue := testutil.SeedAccount(t, ctx, env.tx, "delist-dex@test.dev", types.AccountKindService, 0)

	if err := env.venues.AddFactory(asCaller(admin.ID), factory.ID); err != nil {
		t.Fatalf("AddFactory: %v", err)
	}
	if err := env.venues.RegisterManifest(asCaller(factory.ID), venue.ID); err != nil {
		t.Fatalf("RegisterManifest: %v", err)
	}
	if err := env.venues.RemoveFactory(asCaller(admin.ID), factory.ID); err != nil {
		t.Fatalf("RemoveFactory: %v", err)
	}

	// The manifest survives but its factory left the allowlist.
	err := env.venues.AddVenue(asCaller(admin.ID), venue.ID)
	if !errors.Is(err, apperrors.ErrFactoryNotRegistered) {
		t.Fatalf("expected ErrFactoryNotRegistered, got %v", err)
	}
}

func TestVenueOperationsRejectNilIdentity(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := testutil.SeedAdmin(t, ctx, env.tx, "nil-admin@test.dev", 0)

	cases := []struct {
		name string
		call func() error
	}{
		{name: "add_factory", call: func() error { return env.venues.AddFactory(asCaller(admin.ID), uuid.Nil) }},
		{name: "add_venue", call: func() error { return env.venues.AddVenue(asCaller(admin.ID), uuid.Nil) }},
		{name: "remove_venue", call: func() error { return env.venues.RemoveVenue(asCaller(admin.ID), uuid.Nil) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.call(); !errors.Is(err, apperrors.ErrInvalidAddress) {
				t.Fatalf("expected ErrInvalidAddress, got %v", err)
			}
		})
	}
}

func TestRemoveVenueStopsFeeClassification(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := testutil.SeedAdmin(t, ctx, env.tx, "remove-admin@test.dev", 0)
	factory := testutil.SeedAccount(t, ctx, env.tx, "remove-factory@test.dev", types.AccountKindService, 0)
	venue := testutil.SeedAccount(t, ctx, env.tx, "remove-dex@test.dev", types.AccountKindService, 0)

	if err := env.venues.AddFactory(asCaller(admin.ID), factory.ID); err != nil {
		t.Fatalf("AddFactory: %v", err)
	}
	if err := env.venues.RegisterManifest(asCaller(factory.ID), venue.ID); err != nil {
		t.Fatalf("RegisterManifest: %v", err)
	}
	if err := env.venues.AddVenue(asCaller(admin.ID), venue.ID); err != nil {
		t.Fatalf("AddVenue: %v", err)
	}
	if err := env.venues.RemoveVenue(asCaller(admin.ID), venue.ID); err != nil {
		t.Fatalf("RemoveVenue: %v", err)
	}

	isVenue, err := env.venues.IsVenue(ctx, env.tx, venue.ID)
	if err != nil {
		t.Fatalf("IsVenue: %v", err)
	}
	if isVenue {
		t.Fatalf("expected venue to be delisted")
	}
}
