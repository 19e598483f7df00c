package interpret

import "trackerd/internal/core"

// CategoryRule binds one category to the keywords that select it. Rules are
// evaluated in slice order and the first rule with a keyword hit wins, so the
// order of a rule set is part of the classification contract.
type CategoryRule struct {
	Category string
	Keywords []string
}

// Taxonomy is the immutable configuration of the classifiers: the keyword
// signals that decide the transaction type and the ordered category tables
// for each type. Tests may supply alternate taxonomies; production code uses
// DefaultTaxonomy.
type Taxonomy struct {
	ExpenseSignals []string
	IncomeSignals  []string

	ExpenseRules []CategoryRule
	IncomeRules  []CategoryRule

	ExpenseFallback string
	IncomeFallback  string
}

// DefaultTaxonomy returns the built-in keyword tables. The rule order below
// is canonical: reordering it changes which category wins when a sentence
// mentions keywords from more than one rule.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		ExpenseSignals: []string{
			"spent", "paid", "bought", "purchased", "ate", "gave", "cost", "costs",
			"bill", "bills", "expense", "expenses", "shopping", "shop", "buy",
		},
		IncomeSignals: []string{
			"received", "got", "earned", "salary", "income", "profit", "bonus",
			"refund", "returned", "cashback", "won", "gift", "allowance",
		},
		ExpenseRules: []CategoryRule{
			{Category: "Food & Dining", Keywords: []string{"food", "restaurant", "lunch", "dinner", "breakfast", "ate", "pizza", "coffee", "snack"}},
			{Category: "Groceries", Keywords: []string{"groceries", "grocery", "supermarket", "vegetables", "fruits", "milk", "bread"}},
			{Category: "Transportation", Keywords: []string{"fuel", "gas", "petrol", "diesel", "uber", "taxi", "bus", "train", "metro"}},
			{Category: "Entertainment", Keywords: []string{"movie", "movies", "cinema", "game", "games", "party", "concert", "show"}},
			{Category: "Shopping", Keywords: []string{"clothes", "clothing", "shoes", "dress", "shirt", "shopping", "mall"}},
			{Category: "Bills & Utilities", Keywords: []string{"bill", "bills", "electricity", "water", "internet", "phone", "rent"}},
			{Category: "Health & Medical", Keywords: []string{"doctor", "medicine", "hospital", "pharmacy", "medical", "health"}},
			{Category: "Education", Keywords: []string{"books", "course", "class", "tuition", "fees", "school", "college"}},
		},
		IncomeRules: []CategoryRule{
			{Category: "Salary", Keywords: []string{"salary", "job", "work", "employment", "paycheck"}},
			{Category: "Freelance", Keywords: []string{"freelance", "freelancing", "client", "project", "contract"}},
			{Category: "Business", Keywords: []string{"business", "sales", "profit", "revenue"}},
			{Category: "Investment", Keywords: []string{"investment", "dividend", "interest", "stocks", "mutual"}},
			{Category: "Gift", Keywords: []string{"gift", "present", "birthday", "wedding"}},
			{Category: "Refund", Keywords: []string{"refund", "return", "cashback"}},
			{Category: "Allowance", Keywords: []string{"allowance", "pocket money", "parents"}},
		},
		ExpenseFallback: "Miscellaneous",
		IncomeFallback:  "Other Income",
	}
}

func (t Taxonomy) rulesFor(tt core.TransactionType) ([]CategoryRule, string) {
	if tt == core.Income {
		return t.IncomeRules, t.IncomeFallback
	}
	return t.ExpenseRules, t.ExpenseFallback
}
