package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"trackerd/internal/core"
)

func openRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRepository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func sample() []core.Transaction {
	return []core.Transaction{
		{Amount: decimal.NewFromInt(500), Type: core.Expense, Category: "Groceries", Date: core.NewDate(2025, 8, 29)},
		{Amount: decimal.RequireFromString("99.95"), Type: core.Expense, Category: "Shopping", Date: core.NewDate(2025, 8, 30)},
		{Amount: decimal.NewFromInt(15000), Type: core.Income, Category: "Salary", Date: core.NewDate(2025, 8, 30)},
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t)

	empty, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll on fresh db: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("fresh db not empty: %d entries", len(empty))
	}

	want := sample()
	if err := repo.Persist(ctx, want); err != nil {
		t.Fatalf("Persist: %v", err)
	}
	got, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Amount.Equal(want[i].Amount) ||
			got[i].Type != want[i].Type ||
			got[i].Category != want[i].Category ||
			got[i].Date.String() != want[i].Date.String() {
			t.Fatalf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSQLitePersistReplacesSequence(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t)

	if err := repo.Persist(ctx, sample()); err != nil {
		t.Fatalf("Persist: %v", err)
	}
	shorter := sample()[:1]
	if err := repo.Persist(ctx, shorter); err != nil {
		t.Fatalf("Persist shorter: %v", err)
	}
	got, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(got) != 1 || got[0].Category != "Groceries" {
		t.Fatalf("sequence not replaced: %+v", got)
	}

	if err := repo.Persist(ctx, nil); err != nil {
		t.Fatalf("Persist empty: %v", err)
	}
	got, err = repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty sequence, got %d", len(got))
	}
}
