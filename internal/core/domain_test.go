package core

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransactionTypeValidate(t *testing.T) {
	if err := Expense.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := Income.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := TransactionType("Transfer").Validate(); !errors.Is(err, ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got %v", err)
	}
}

func TestDateRoundTrip(t *testing.T) {
	d := NewDate(2025, 8, 30)
	if got := d.String(); got != "2025-08-30" {
		t.Fatalf("String() = %q", got)
	}
	parsed, err := ParseDate(d.String())
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if !parsed.Equal(d.Time) {
		t.Fatalf("round trip mismatch: %v != %v", parsed, d)
	}
	if _, err := ParseDate("30/08/2025"); err == nil {
		t.Fatalf("expected error for non-ISO date")
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		Amount:   decimal.NewFromInt(500),
		Type:     Expense,
		Category: "Groceries",
		Date:     NewDate(2025, 8, 30),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name string
		tx   Transaction
		want error
	}{
		{"zero amount", Transaction{Amount: decimal.Zero, Type: Expense, Category: "c", Date: NewDate(2025, 1, 1)}, ErrInvalidAmount},
		{"negative amount", Transaction{Amount: decimal.NewFromInt(-5), Type: Expense, Category: "c", Date: NewDate(2025, 1, 1)}, ErrInvalidAmount},
		{"bad type", Transaction{Amount: decimal.NewFromInt(5), Type: "Loan", Category: "c", Date: NewDate(2025, 1, 1)}, ErrInvalidType},
		{"empty category", Transaction{Amount: decimal.NewFromInt(5), Type: Income, Category: "", Date: NewDate(2025, 1, 1)}, ErrEmptyCategory},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.tx.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}

	noDate := good
	noDate.Date = Date{}
	if err := noDate.Validate(); err == nil {
		t.Fatalf("expected error for zero date")
	}
}
