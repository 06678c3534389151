// Package model defines domain types for spend ledgers and reports.
package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCategory is assigned to expenses added without a category.
const DefaultCategory = "Uncategorized"

// DateLayout is the calendar-date layout used for persisted and exported dates.
const DateLayout = "2006-01-02"

// Expense is one recorded transaction.
type Expense struct {
	ID          int
	Date        time.Time // calendar date, time of day is always zero
	Description string
	Amount      decimal.Decimal
	Category    string
}

// DateString returns the expense date as YYYY-MM-DD.
func (e Expense) DateString() string {
	return e.Date.Format(DateLayout)
}

// In reports whether the expense falls in the given year and month.
func (e Expense) In(ym YearMonth) bool {
	return e.Date.Year() == ym.Year && int(e.Date.Month()) == ym.Month
}

// YearMonth keys a monthly budget.
type YearMonth struct {
	Year  int
	Month int // 1-12
}

// String returns the persisted key form, e.g. "2025-8" (month is not zero-padded).
func (ym YearMonth) String() string {
	return fmt.Sprintf("%d-%d", ym.Year, ym.Month)
}

// MonthName returns the English month name, e.g. "August".
func (ym YearMonth) MonthName() string {
	return time.Month(ym.Month).String()
}

// ParseYearMonth parses a "<year>-<month>" budget key.
func ParseYearMonth(s string) (YearMonth, error) {
	year, month, ok := strings.Cut(s, "-")
	if !ok {
		return YearMonth{}, fmt.Errorf("parsing budget key %q: want <year>-<month>", s)
	}
	var ym YearMonth
	var err error
	if ym.Year, err = strconv.Atoi(year); err != nil {
		return YearMonth{}, fmt.Errorf("parsing budget key %q: %w", s, err)
	}
	if ym.Month, err = strconv.Atoi(month); err != nil {
		return YearMonth{}, fmt.Errorf("parsing budget key %q: %w", s, err)
	}
	if ym.Month < 1 || ym.Month > 12 {
		return YearMonth{}, fmt.Errorf("parsing budget key %q: month out of range", s)
	}
	return ym, nil
}

// YearMonthOf returns the year and month of t.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: int(t.Month())}
}
