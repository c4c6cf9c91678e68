package ledger

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/funkyrave/funky-backend/internal/data/repos/testutil"
)

func TestAllowanceSetGetSubtract(t *testing.T) {
	database := testutil.DB(t)
	tx := testutil.Tx(t, database)
	ctx := context.Background()

	repo := NewAllowanceRepo(tx, testutil.Logger(t))
	owner := uuid.New()
	spender := uuid.New()

	got, err := repo.Get(ctx, tx, owner, spender)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil allowance before grant, got %+v", got)
	}

	if err := repo.Set(ctx, tx, owner, spender, 500); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := repo.Subtract(ctx, tx, owner, spender, 200); err != nil {
		t.Fatalf("Subtract: %v", err)
	}

	got, err = repo.Get(ctx, tx, owner, spender)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.Amount != 300 {
		t.Fatalf("expected allowance 300, got %+v", got)
	}

	// Re-grant overwrites rather than accumulates.
	if err := repo.Set(ctx, tx, owner, spender, 50); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	got, err = repo.Get(ctx, tx, owner, spender)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.Amount != 50 {
		t.Fatalf("expected allowance 50 after overwrite, got %+v", got)
	}
}
