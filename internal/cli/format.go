// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when the configured code is unknown.
const DefaultCurrency = "USD"

// FormatAmount formats a decimal amount in the given ISO currency, e.g. "$1,234.50".
// Display is rounded to the currency's minor unit; stored values keep full precision.
func FormatAmount(d decimal.Decimal, code string) string {
	cur := money.GetCurrency(strings.ToUpper(code))
	if cur == nil {
		cur = money.GetCurrency(DefaultCurrency)
	}
	minor := d.Shift(int32(cur.Fraction)).Round(0)
	if minor.Abs().GreaterThan(maxMinor) {
		return formatDigits(cur.Formatter(), minor.Abs().String(), minor.IsNegative())
	}
	return cur.Formatter().Format(minor.IntPart())
}

var maxMinor = decimal.NewFromInt(math.MaxInt64)

// formatDigits lays out a minor-unit digit string with f's template.
// Used for amounts that do not fit in an int64.
func formatDigits(f *money.Formatter, sa string, negative bool) string {
	if len(sa) <= f.Fraction {
		sa = strings.Repeat("0", f.Fraction-len(sa)+1) + sa
	}
	if f.Thousand != "" {
		for i := len(sa) - f.Fraction - 3; i > 0; i -= 3 {
			sa = sa[:i] + f.Thousand + sa[i:]
		}
	}
	if f.Fraction > 0 {
		sa = sa[:len(sa)-f.Fraction] + f.Decimal + sa[len(sa)-f.Fraction:]
	}
	sa = strings.Replace(f.Template, "1", sa, 1)
	sa = strings.Replace(sa, "$", f.Grapheme, 1)
	if negative {
		sa = "-" + sa
	}
	return sa
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// Share returns part/whole as a 0-1 float, or 0 when whole is zero.
func Share(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).InexactFloat64()
}

// Truncate shortens s to limit runes, marking the cut with an ellipsis.
func Truncate(s string, limit int) string {
	r := []rune(s)
	if limit <= 0 || len(r) <= limit {
		return s
	}
	if limit == 1 {
		return "…"
	}
	return string(r[:limit-1]) + "…"
}
