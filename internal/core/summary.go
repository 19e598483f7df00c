package core

import "github.com/shopspring/decimal"

// Summary is the derived aggregate view over a ledger snapshot. It has no
// lifecycle of its own: it is recomputed fresh on every request.
type Summary struct {
	TotalIncome        decimal.Decimal
	TotalExpense       decimal.Decimal
	Balance            decimal.Decimal
	IncomeByCategory   map[string]decimal.Decimal
	ExpensesByCategory map[string]decimal.Decimal
}

// NewSummary returns an empty summary with zero totals and empty mappings.
func NewSummary() Summary {
	return Summary{
		TotalIncome:        decimal.Zero,
		TotalExpense:       decimal.Zero,
		Balance:            decimal.Zero,
		IncomeByCategory:   make(map[string]decimal.Decimal),
		ExpensesByCategory: make(map[string]decimal.Decimal),
	}
}
