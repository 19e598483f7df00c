package ledger

import "trackerd/internal/core"

// Summarize folds a transaction sequence into totals, balance and
// per-category sums in a single pass. Sums use decimal arithmetic and no
// rounding is applied; the result is order-independent. An empty sequence
// yields zero totals and empty mappings.
func Summarize(transactions []core.Transaction) core.Summary {
	summary := core.NewSummary()
	for _, tx := range transactions {
		switch tx.Type {
		case core.Income:
			summary.TotalIncome = summary.TotalIncome.Add(tx.Amount)
			summary.IncomeByCategory[tx.Category] = summary.IncomeByCategory[tx.Category].Add(tx.Amount)
		case core.Expense:
			summary.TotalExpense = summary.TotalExpense.Add(tx.Amount)
			summary.ExpensesByCategory[tx.Category] = summary.ExpensesByCategory[tx.Category].Add(tx.Amount)
		}
	}
	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)
	return summary
}
