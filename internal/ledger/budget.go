package ledger

import (
	"github.com/theirongolddev/spend/internal/model"

	"github.com/shopspring/decimal"
)

// SetBudget stores the threshold for month of the current year, replacing
// any previous value, and returns the budget check for that month.
func (s *Store) SetBudget(month int, amount string) (*model.BudgetWarning, error) {
	if err := ValidateMonth(month); err != nil {
		return nil, err
	}
	threshold, err := ParseAmount(amount)
	if err != nil {
		return nil, err
	}

	l, err := s.load()
	if err != nil {
		return nil, err
	}
	ym := model.YearMonth{Year: s.clock.Now().Year(), Month: month}
	l.Budgets[ym] = threshold

	if err := s.save(l); err != nil {
		return nil, err
	}
	s.log.WithField("period", ym.String()).Debugf("budget set to %s", threshold)
	return budgetWarning(l, ym), nil
}

// CheckBudget reports a warning when the month's total for the current year
// strictly exceeds its budget. No budget means no warning.
func (s *Store) CheckBudget(month int) (*model.BudgetWarning, error) {
	if err := ValidateMonth(month); err != nil {
		return nil, err
	}
	l, err := s.load()
	if err != nil {
		return nil, err
	}
	return budgetWarning(l, model.YearMonth{Year: s.clock.Now().Year(), Month: month}), nil
}

// CheckCurrentBudget runs CheckBudget for the current calendar month.
func (s *Store) CheckCurrentBudget() (*model.BudgetWarning, error) {
	return s.CheckBudget(int(s.clock.Now().Month()))
}

// Budgets returns a copy of all stored thresholds.
func (s *Store) Budgets() (map[model.YearMonth]decimal.Decimal, error) {
	l, err := s.load()
	if err != nil {
		return nil, err
	}
	return l.Clone().Budgets, nil
}

// budgetWarning applies the same strict rule at every call site: only a positive
// stored threshold counts, and only a total strictly above it warns.
func budgetWarning(l *model.Ledger, ym model.YearMonth) *model.BudgetWarning {
	threshold, ok := l.Budgets[ym]
	if !ok || !threshold.IsPositive() {
		return nil
	}
	total := Total(FilterByMonth(l.Expenses, ym))
	if !total.GreaterThan(threshold) {
		return nil
	}
	return &model.BudgetWarning{Period: ym, Total: total, Threshold: threshold}
}

// CurrentPeriod returns the year and month budgets are checked against by default.
func (s *Store) CurrentPeriod() model.YearMonth {
	return model.YearMonthOf(s.clock.Now())
}
