package model

import "github.com/shopspring/decimal"

// CategoryTotal holds the summed amount for one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
	Count    int
}

// CategorySummary groups totals by category in first-seen order.
type CategorySummary struct {
	Categories []CategoryTotal
	GrandTotal decimal.Decimal
}

// BudgetWarning is produced when a month's spend strictly exceeds its budget.
type BudgetWarning struct {
	Period    YearMonth
	Total     decimal.Decimal
	Threshold decimal.Decimal
}

// Over returns how much the total exceeds the threshold.
func (w BudgetWarning) Over() decimal.Decimal {
	return w.Total.Sub(w.Threshold)
}
