package interpret

import (
	"strings"

	"trackerd/internal/core"
)

// ClassifyType decides whether text describes an expense or an income by
// keyword-set membership over the lower-cased text. Expense signals are
// checked first, so a sentence carrying both kinds of signal resolves to
// Expense. A sentence with no signal at all also defaults to Expense: the
// tracker is expense-first, income needs an explicit cue.
func (t Taxonomy) ClassifyType(text string) core.TransactionType {
	lower := strings.ToLower(text)
	if containsAny(lower, t.ExpenseSignals) {
		return core.Expense
	}
	if containsAny(lower, t.IncomeSignals) {
		return core.Income
	}
	return core.Expense
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
