package core

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Expense TransactionType = "Expense"
	Income  TransactionType = "Income"
)

// DateLayout is the wire and storage form of a transaction date.
const DateLayout = "2006-01-02"

type (
	// TransactionType discriminates money leaving from money arriving.
	TransactionType string

	// Date is a calendar day without time-of-day semantics.
	Date struct {
		time.Time
	}

	// Transaction is one structured financial record. It is immutable once
	// created and identified only by its position in the ledger.
	Transaction struct {
		Amount   decimal.Decimal
		Type     TransactionType
		Category string
		Date     Date
	}
)

var (
	ErrAmountNotFound  = errors.New("no amount found")
	ErrIndexOutOfRange = errors.New("transaction index out of range")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidType     = errors.New("invalid transaction type")
	ErrEmptyCategory   = errors.New("empty category")
)

func (t TransactionType) Validate() error {
	switch t {
	case Expense, Income:
		return nil
	}
	return ErrInvalidType
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

// ParseDate parses an ISO-8601 date (2006-01-02).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) Validate() error {
	if d.IsZero() {
		return errors.New("date cannot be zero")
	}
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return errors.New("date must be a JSON string")
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (t Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if err := t.Type.Validate(); err != nil {
		return err
	}
	if t.Category == "" {
		return ErrEmptyCategory
	}
	if err := t.Date.Validate(); err != nil {
		return err
	}
	return nil
}
