package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"trackerd/internal/core"
)

func TestPersistAndLoadCopySemantics(t *testing.T) {
	s := New()
	ctx := context.Background()

	in := []core.Transaction{{
		Amount:   decimal.NewFromInt(42),
		Type:     core.Expense,
		Category: "Shopping",
		Date:     core.NewDate(2025, 8, 30),
	}}
	if err := s.Persist(ctx, in); err != nil {
		t.Fatalf("Persist: %v", err)
	}

	in[0].Category = "mutated"

	got, err := s.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(got) != 1 || got[0].Category != "Shopping" {
		t.Fatalf("store shared memory with caller: %+v", got)
	}

	got[0].Category = "mutated again"
	again, _ := s.LoadAll(ctx)
	if again[0].Category != "Shopping" {
		t.Fatalf("LoadAll returned shared slice")
	}
}

func TestPersistReplacesSequence(t *testing.T) {
	s := New()
	ctx := context.Background()

	tx := core.Transaction{Amount: decimal.NewFromInt(1), Type: core.Income, Category: "Salary", Date: core.Today()}
	if err := s.Persist(ctx, []core.Transaction{tx, tx, tx}); err != nil {
		t.Fatalf("Persist: %v", err)
	}
	if err := s.Persist(ctx, nil); err != nil {
		t.Fatalf("Persist empty: %v", err)
	}
	got, err := s.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty store, got %d rows", len(got))
	}
}
