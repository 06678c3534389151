package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a strictly positive decimal amount.
// The whole string must be numeric; "12abc" is rejected.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, validationf("amount is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, validationf("amount must be a positive number, got %q", s)
	}
	if !d.IsPositive() {
		return decimal.Zero, validationf("amount must be a positive number, got %q", s)
	}
	return d, nil
}

// ValidateMonth checks that month is in 1-12.
func ValidateMonth(month int) error {
	if month < 1 || month > 12 {
		return validationf("month must be between 1 and 12, got %d", month)
	}
	return nil
}
