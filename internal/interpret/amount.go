package interpret

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"trackerd/internal/core"
)

// amountPattern recognizes integer and up-to-two-decimal numeric tokens with
// an optional adjacent currency marker. Separator-formatted numbers
// ("15,000") are not supported; such input yields the leading token.
var amountPattern = regexp.MustCompile(`(?:₹|rs\.?|inr|usd|\$)?\s*(\d+(?:\.\d{1,2})?)`)

// ExtractAmount finds the monetary value in text. When the text carries more
// than one numeric token the first one left to right wins. Returns
// core.ErrAmountNotFound when no positive numeric token is present.
func ExtractAmount(text string) (decimal.Decimal, error) {
	match := amountPattern.FindStringSubmatch(strings.ToLower(text))
	if match == nil {
		return decimal.Decimal{}, core.ErrAmountNotFound
	}
	amount, err := decimal.NewFromString(match[1])
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse amount %q: %w", match[1], core.ErrAmountNotFound)
	}
	if !amount.IsPositive() {
		// A literal zero cannot become a valid transaction.
		return decimal.Decimal{}, core.ErrAmountNotFound
	}
	return amount, nil
}
