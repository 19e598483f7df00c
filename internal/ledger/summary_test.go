package ledger

import (
	"testing"

	"github.com/shopspring/decimal"

	"trackerd/internal/core"
)

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if !s.TotalIncome.IsZero() || !s.TotalExpense.IsZero() || !s.Balance.IsZero() {
		t.Fatalf("empty summary has non-zero totals: %+v", s)
	}
	if len(s.IncomeByCategory) != 0 || len(s.ExpensesByCategory) != 0 {
		t.Fatalf("empty summary has category entries: %+v", s)
	}
}

func TestSummarizeScenario(t *testing.T) {
	s := Summarize([]core.Transaction{
		tx(500, core.Expense, "Groceries"),
		tx(15000, core.Income, "Salary"),
	})

	if !s.TotalIncome.Equal(decimal.NewFromInt(15000)) {
		t.Fatalf("total income = %s, want 15000", s.TotalIncome)
	}
	if !s.TotalExpense.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("total expense = %s, want 500", s.TotalExpense)
	}
	if !s.Balance.Equal(decimal.NewFromInt(14500)) {
		t.Fatalf("balance = %s, want 14500", s.Balance)
	}
	if len(s.IncomeByCategory) != 1 || !s.IncomeByCategory["Salary"].Equal(decimal.NewFromInt(15000)) {
		t.Fatalf("income by category = %v", s.IncomeByCategory)
	}
	if len(s.ExpensesByCategory) != 1 || !s.ExpensesByCategory["Groceries"].Equal(decimal.NewFromInt(500)) {
		t.Fatalf("expenses by category = %v", s.ExpensesByCategory)
	}
}

func TestSummarizeNegativeBalance(t *testing.T) {
	s := Summarize([]core.Transaction{
		tx(100, core.Income, "Salary"),
		tx(300, core.Expense, "Bills & Utilities"),
	})
	if !s.Balance.Equal(decimal.NewFromInt(-200)) {
		t.Fatalf("balance = %s, want -200", s.Balance)
	}
}

func TestSummarizeDecimalFidelity(t *testing.T) {
	cents := func(s string) core.Transaction {
		return core.Transaction{
			Amount:   decimal.RequireFromString(s),
			Type:     core.Expense,
			Category: "Food & Dining",
			Date:     core.NewDate(2025, 8, 30),
		}
	}
	// 0.1 + 0.2 must be exactly 0.3, not a float approximation.
	s := Summarize([]core.Transaction{cents("0.1"), cents("0.2")})
	if !s.TotalExpense.Equal(decimal.RequireFromString("0.3")) {
		t.Fatalf("total expense = %s, want 0.3", s.TotalExpense)
	}
}

func TestSummarizeOrderIndependent(t *testing.T) {
	a := []core.Transaction{
		tx(500, core.Expense, "Groceries"),
		tx(40, core.Expense, "Food & Dining"),
		tx(15000, core.Income, "Salary"),
		tx(3000, core.Income, "Freelance"),
	}
	b := []core.Transaction{a[3], a[0], a[2], a[1]}

	sa, sb := Summarize(a), Summarize(b)
	if !sa.TotalIncome.Equal(sb.TotalIncome) || !sa.TotalExpense.Equal(sb.TotalExpense) || !sa.Balance.Equal(sb.Balance) {
		t.Fatalf("totals depend on order: %+v vs %+v", sa, sb)
	}
	for cat, amt := range sa.ExpensesByCategory {
		if !sb.ExpensesByCategory[cat].Equal(amt) {
			t.Fatalf("expense category %q depends on order", cat)
		}
	}
	for cat, amt := range sa.IncomeByCategory {
		if !sb.IncomeByCategory[cat].Equal(amt) {
			t.Fatalf("income category %q depends on order", cat)
		}
	}
}
