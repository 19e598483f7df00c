package interpret

import (
	"testing"

	"trackerd/internal/core"
)

func TestClassifyType(t *testing.T) {
	tax := DefaultTaxonomy()

	cases := []struct {
		name string
		text string
		want core.TransactionType
	}{
		{"spent", "I spent 500 on groceries", core.Expense},
		{"paid", "Paid 1200 for rent", core.Expense},
		{"bought", "bought new shoes", core.Expense},
		{"received", "Received 15000 from salary", core.Income},
		{"earned", "earned 3000 from a freelance project", core.Income},
		{"uppercase income", "GOT A BONUS OF 500", core.Income},
		{"both signals present, expense wins", "spent the refund of 200 on clothes", core.Expense},
		{"no signal defaults to expense", "300 groceries", core.Expense},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tax.ClassifyType(tc.text); got != tc.want {
				t.Fatalf("ClassifyType(%q) = %s, want %s", tc.text, got, tc.want)
			}
		})
	}
}
