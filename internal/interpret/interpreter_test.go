package interpret

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"trackerd/internal/core"
)

func testClock() func() time.Time {
	return func() time.Time {
		return time.Date(2025, 8, 30, 14, 30, 0, 0, time.UTC)
	}
}

func TestInterpretSpendingSentence(t *testing.T) {
	interp := NewInterpreter(DefaultTaxonomy()).WithClock(testClock())

	tx, err := interp.Interpret("I spent 500 on groceries")
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if !tx.Amount.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("amount = %s, want 500", tx.Amount)
	}
	if tx.Type != core.Expense {
		t.Fatalf("type = %s, want Expense", tx.Type)
	}
	if tx.Category != "Groceries" {
		t.Fatalf("category = %q, want Groceries", tx.Category)
	}
	if tx.Date.String() != "2025-08-30" {
		t.Fatalf("date = %s, want 2025-08-30", tx.Date)
	}
}

func TestInterpretIncomeSentence(t *testing.T) {
	interp := NewInterpreter(DefaultTaxonomy()).WithClock(testClock())

	tx, err := interp.Interpret("Received 15000 from salary")
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if !tx.Amount.Equal(decimal.NewFromInt(15000)) {
		t.Fatalf("amount = %s, want 15000", tx.Amount)
	}
	if tx.Type != core.Income {
		t.Fatalf("type = %s, want Income", tx.Type)
	}
	if tx.Category != "Salary" {
		t.Fatalf("category = %q, want Salary", tx.Category)
	}
}

func TestInterpretNoAmount(t *testing.T) {
	interp := NewInterpreter(DefaultTaxonomy())

	_, err := interp.Interpret("no numbers here")
	if !errors.Is(err, core.ErrAmountNotFound) {
		t.Fatalf("expected ErrAmountNotFound, got %v", err)
	}
}

// Every interpreted transaction carries a category from the taxonomy of its
// type, never one belonging to the other type.
func TestInterpretCategoryMatchesType(t *testing.T) {
	tax := DefaultTaxonomy()
	interp := NewInterpreter(tax)

	texts := []string{
		"spent 120 on coffee",
		"paid 2200 rent",
		"earned 900 from stocks",
		"got 50 cashback",
		"spent 77",
		"received 88",
	}
	for _, text := range texts {
		tx, err := interp.Interpret(text)
		if err != nil {
			t.Fatalf("Interpret(%q): %v", text, err)
		}
		rules, fallback := tax.rulesFor(tx.Type)
		valid := tx.Category == fallback
		for _, r := range rules {
			if r.Category == tx.Category {
				valid = true
			}
		}
		if !valid {
			t.Fatalf("Interpret(%q): category %q not in %s taxonomy", text, tx.Category, tx.Type)
		}
		if err := tx.Validate(); err != nil {
			t.Fatalf("Interpret(%q): invalid transaction: %v", text, err)
		}
	}
}
