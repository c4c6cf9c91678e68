package services

import (
	"context"
	"errors"
	"testing"

	"github.com/funkyrave/funky-backend/internal/data/repos/testutil"
	types "github.com/funkyrave/funky-backend/internal/domain"
	apperrors "github.com/funkyrave/funky-backend/internal/pkg/errors"
	"github.com/funkyrave/funky-backend/internal/requestdata"
)

func TestRegisterLoginRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	account, err := env.auth.Register(ctx, "Auth-Holder@Test.dev", "hunter22", "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if account.Email != "auth-holder@test.dev" {
		t.Fatalf("expected normalized email, got %q", account.Email)
	}
	if account.Kind != types.AccountKindUser {
		t.Fatalf("expected default user kind, got %q", account.Kind)
	}

	if _, _, err := env.auth.Login(ctx, "auth-holder@test.dev", "wrong"); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for bad password, got %v", err)
	}

	access, refresh, err := env.auth.Login(ctx, "auth-holder@test.dev", "hunter22")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected token pair")
	}

	authed, err := env.auth.SetContextFromToken(ctx, access)
	if err != nil {
		t.Fatalf("SetContextFromToken: %v", err)
	}
	if got := requestdata.CallerID(authed); got != account.ID {
		t.Fatalf("expected caller %s, got %s", account.ID, got)
	}

	if _, err := env.auth.SetContextFromToken(ctx, "not-a-token"); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for garbage token, got %v", err)
	}
}

func TestCreateServiceAccountRequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := testutil.SeedAdmin(t, ctx, env.tx, "svc-admin@test.dev", 0)
	outsider := testutil.SeedAccount(t, ctx, env.tx, "svc-outsider@test.dev", types.AccountKindUser, 0)

	if _, err := env.auth.CreateServiceAccount(asCaller(outsider.ID), "oracle@test.dev", "pw123456"); !errors.Is(err, apperrors.ErrNotAdmin) {
		t.Fatalf("expected ErrNotAdmin for non-admin caller, got %v", err)
	}

	account, err := env.auth.CreateServiceAccount(asCaller(admin.ID), "oracle@test.dev", "pw123456")
	if err != nil {
		t.Fatalf("CreateServiceAccount: %v", err)
	}
	if account.Kind != types.AccountKindService {
		t.Fatalf("expected service kind, got %q", account.Kind)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.auth.Register(ctx, "dup@test.dev", "pw123456", types.AccountKindService); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := env.auth.Register(ctx, "dup@test.dev", "pw123456", ""); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for duplicate email, got %v", err)
	}
}
