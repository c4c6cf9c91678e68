package account

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	types "github.com/funkyrave/funky-backend/internal/domain"
	apperrors "github.com/funkyrave/funky-backend/internal/pkg/errors"

	"github.com/funkyrave/funky-backend/internal/data/repos/testutil"
)

func TestAccountCreateAndGet(t *testing.T) {
	database := testutil.DB(t)
	tx := testutil.Tx(t, database)
	ctx := context.Background()

	repo := NewAccountRepo(tx, testutil.Logger(t))

	created, err := repo.Create(ctx, tx, []*types.Account{{
		ID:       uuid.New(),
		Email:    "repo-create@test.dev",
		Password: "pw",
		Kind:     types.AccountKindUser,
		Balance:  100,
	}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, tx, created[0].ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Email != "repo-create@test.dev" || got.Balance != 100 {
		t.Fatalf("unexpected account: %+v", got)
	}

	if _, err := repo.GetByID(ctx, tx, uuid.New()); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	exists, err := repo.EmailExists(ctx, tx, "repo-create@test.dev")
	if err != nil {
		t.Fatalf("EmailExists: %v", err)
	}
	if !exists {
		t.Fatalf("expected email to exist")
	}
}

func TestAccountAddBalanceAndSum(t *testing.T) {
	database := testutil.DB(t)
	tx := testutil.Tx(t, database)
	ctx := context.Background()

	repo := NewAccountRepo(tx, testutil.Logger(t))

	a := testutil.SeedAccount(t, ctx, tx, "repo-bal-a@test.dev", types.AccountKindUser, 500)
	b := testutil.SeedAccount(t, ctx, tx, "repo-bal-b@test.dev", types.AccountKindUser, 0)

	if err := repo.AddBalance(ctx, tx, a.ID, -200); err != nil {
		t.Fatalf("AddBalance debit: %v", err)
	}
	if err := repo.AddBalance(ctx, tx, b.ID, 200); err != nil {
		t.Fatalf("AddBalance credit: %v", err)
	}

	gotA, err := repo.GetByID(ctx, tx, a.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if gotA.Balance != 300 {
		t.Fatalf("expected balance 300, got %d", gotA.Balance)
	}

	sum, err := repo.SumBalances(ctx, tx)
	if err != nil {
		t.Fatalf("SumBalances: %v", err)
	}
	if sum != 500 {
		t.Fatalf("expected sum 500, got %d", sum)
	}

	if err := repo.AddBalance(ctx, tx, uuid.New(), 10); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing account, got %v", err)
	}
}

func TestAccountAddBalanceGuardsOverdraft(t *testing.T) {
	database := testutil.DB(t)
	tx := testutil.Tx(t, database)
	ctx := context.Background()

	repo := NewAccountRepo(tx, testutil.Logger(t))
	a := testutil.SeedAccount(t, ctx, tx, "repo-overdraft@test.dev", types.AccountKindUser, 100)

	if err := repo.AddBalance(ctx, tx, a.ID, -101); !errors.Is(err, apperrors.ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}

	got, err := repo.GetByID(ctx, tx, a.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Balance != 100 {
		t.Fatalf("overdraft debit should not touch the balance, got %d", got.Balance)
	}

	if err := repo.AddBalance(ctx, tx, a.ID, -100); err != nil {
		t.Fatalf("exact debit: %v", err)
	}

	if err := repo.AddBalance(ctx, tx, uuid.New(), -10); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing account, got %v", err)
	}
}
