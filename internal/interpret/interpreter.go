// Package interpret turns free-form English sentences describing a financial
// transaction ("I spent 500 on groceries") into structured records. All
// classification is deterministic keyword and pattern matching over the
// lower-cased text; the only hard failure is a missing amount.
package interpret

import (
	"fmt"
	"time"

	"trackerd/internal/core"
)

// Interpreter orchestrates amount extraction, type classification and
// category classification into one structured record. It is pure with
// respect to the ledger: callers decide what to do with the result.
type Interpreter struct {
	taxonomy Taxonomy
	now      func() time.Time
}

// NewInterpreter builds an interpreter over the given taxonomy.
func NewInterpreter(taxonomy Taxonomy) *Interpreter {
	return &Interpreter{
		taxonomy: taxonomy,
		now:      time.Now,
	}
}

// WithClock overrides the clock used for transaction dates. Intended for
// tests.
func (i *Interpreter) WithClock(now func() time.Time) *Interpreter {
	i.now = now
	return i
}

// Interpret produces a validated Transaction dated today. A text with no
// parseable numeric token fails with an error wrapping
// core.ErrAmountNotFound; no partial transaction is ever produced.
func (i *Interpreter) Interpret(text string) (core.Transaction, error) {
	amount, err := ExtractAmount(text)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("interpret %q: %w", text, err)
	}

	txType := i.taxonomy.ClassifyType(text)
	category := i.taxonomy.ClassifyCategory(text, txType)

	now := i.now()
	tx := core.Transaction{
		Amount:   amount,
		Type:     txType,
		Category: category,
		Date:     core.NewDate(now.Year(), int(now.Month()), now.Day()),
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, fmt.Errorf("interpret %q: %w", text, err)
	}
	return tx, nil
}
