package services

import (
	"context"
	"errors"
	"testing"

	types "github.com/funkyrave/funky-backend/internal/domain"
	apperrors "github.com/funkyrave/funky-backend/internal/pkg/errors"

	"github.com/funkyrave/funky-backend/internal/data/repos/testutil"
)

func TestAddAdminRequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	outsider := testutil.SeedAccount(t, ctx, env.tx, "roles-outsider@test.dev", types.AccountKindUser, 0)
	target := testutil.SeedAccount(t, ctx, env.tx, "roles-target@test.dev", types.AccountKindUser, 0)

	err := env.roles.AddAdmin(asCaller(outsider.ID), target.ID)
	if !errors.Is(err, apperrors.ErrNotAdmin) {
		t.Fatalf("expected ErrNotAdmin, got %v", err)
	}

	held, err := env.roles.IsAdmin(ctx, target.ID)
	if err != nil {
		t.Fatalf("IsAdmin: %v", err)
	}
	if held {
		t.Fatalf("role granted despite failed authorization")
	}
}

func TestAddAndRemoveAdmin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := testutil.SeedAdmin(t, ctx, env.tx, "roles-admin@test.dev", 0)
	second := testutil.SeedAccount(t, ctx, env.tx, "roles-second@test.dev", types.AccountKindUser, 0)

	if err := env.roles.AddAdmin(asCaller(admin.ID), second.ID); err != nil {
		t.Fatalf("AddAdmin: %v", err)
	}
	held, err := env.roles.IsAdmin(ctx, second.ID)
	if err != nil {
		t.Fatalf("IsAdmin: %v", err)
	}
	if !held {
		t.Fatalf("expected second admin to hold the role")
	}

	if err := env.roles.RemoveAdmin(asCaller(admin.ID), second.ID); err != nil {
		t.Fatalf("RemoveAdmin: %v", err)
	}
	held, err = env.roles.IsAdmin(ctx, second.ID)
	if err != nil {
		t.Fatalf("IsAdmin: %v", err)
	}
	if held {
		t.Fatalf("expected role to be revoked")
	}
}

func TestRemoveLastAdminFails(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := testutil.SeedAdmin(t, ctx, env.tx, "roles-last@test.dev", 0)

	err := env.roles.RemoveAdmin(asCaller(admin.ID), admin.ID)
	if !errors.Is(err, apperrors.ErrCannotRemoveLastAdmin) {
		t.Fatalf("expected ErrCannotRemoveLastAdmin, got %v", err)
	}

	held, err := env.roles.IsAdmin(ctx, admin.ID)
	if err != nil {
		t.Fatalf("IsAdmin: %v", err)
	}
	if !held {
		t.Fatalf("last admin lost the role")
	}
}

func TestAddTierUpdaterRequiresServiceAccount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := testutil.SeedAdmin(t, ctx, env.tx, "updater-admin@test.dev", 0)
	human := testutil.SeedAccount(t, ctx, env.tx, "updater-human@test.dev", types.AccountKindUser, 0)
	bot := testutil.SeedAccount(t, ctx, env.tx, "updater-bot@test.dev", types.AccountKindService, 0)

	err := env.roles.AddTierUpdater(asCaller(admin.ID), human.ID)
	if !errors.Is(err, apperrors.ErrTierUpdaterMustBeContract) {
		t.Fatalf("expected ErrTierUpdaterMustBeContract, got %v", err)
	}

	if err := env.roles.AddTierUpdater(asCaller(admin.ID), bot.ID); err != nil {
		t.Fatalf("AddTierUpdater: %v", err)
	}
	held, err := env.roles.IsTierUpdater(ctx, bot.ID)
	if err != nil {
		t.Fatalf("IsTierUpdater: %v", err)
	}
	if !held {
		t.Fatalf("expected service account to hold the tier updater role")
	}

	if err := env.roles.RemoveTierUpdater(asCaller(admin.ID), bot.ID); err != nil {
		t.Fatalf("RemoveTierUpdater: %v", err)
	}
	held, err = env.roles.IsTierUpdater(ctx, bot.ID)
	if err != nil {
		t.Fatalf("IsTierUpdater: %v", err)
	}
	if held {
		t.Fatalf("expected role to be revoked")
	}
}
