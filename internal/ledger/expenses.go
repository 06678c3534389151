package ledger

import (
	"strings"

	"github.com/theirongolddev/spend/internal/model"

	"github.com/shopspring/decimal"
)

// AddInput holds the fields of a new expense. Amount is parsed strictly.
type AddInput struct {
	Description string
	Amount      string
	Category    string
}

// UpdateInput holds replacement fields. Empty fields are left unchanged.
type UpdateInput struct {
	Description string
	Amount      string
	Category    string
}

// IsEmpty reports whether no field would be changed.
func (in UpdateInput) IsEmpty() bool {
	return strings.TrimSpace(in.Description) == "" &&
		strings.TrimSpace(in.Amount) == "" &&
		strings.TrimSpace(in.Category) == ""
}

// Add records a new expense dated today and returns it together with the
// budget warning for the current month, if any.
func (s *Store) Add(in AddInput) (model.Expense, *model.BudgetWarning, error) {
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return model.Expense{}, nil, validationf("description is required")
	}
	amount, err := ParseAmount(in.Amount)
	if err != nil {
		return model.Expense{}, nil, err
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = model.DefaultCategory
	}

	l, err := s.load()
	if err != nil {
		return model.Expense{}, nil, err
	}

	exp := model.Expense{
		ID:          l.NextID,
		Date:        today(s.clock),
		Description: desc,
		Amount:      amount,
		Category:    category,
	}
	l.Expenses = append(l.Expenses, exp)
	l.NextID++

	if err := s.save(l); err != nil {
		return model.Expense{}, nil, err
	}
	s.log.WithField("id", exp.ID).Debug("expense added")

	return exp, budgetWarning(l, model.YearMonthOf(s.clock.Now())), nil
}

// Update overwrites the supplied fields of an existing expense. ID and date never change.
// An empty input is a no-op that still succeeds for an existing id.
func (s *Store) Update(id int, in UpdateInput) (model.Expense, error) {
	l, err := s.load()
	if err != nil {
		return model.Expense{}, err
	}
	idx := l.Index(id)
	if idx < 0 {
		return model.Expense{}, notFound(id)
	}

	var amount decimal.Decimal
	hasAmount := strings.TrimSpace(in.Amount) != ""
	if hasAmount {
		d, err := ParseAmount(in.Amount)
		if err != nil {
			return model.Expense{}, err
		}
		amount = d
	}

	exp := &l.Expenses[idx]
	if in.IsEmpty() {
		return *exp, nil
	}
	if d := strings.TrimSpace(in.Description); d != "" {
		exp.Description = d
	}
	if hasAmount {
		exp.Amount = amount
	}
	if c := strings.TrimSpace(in.Category); c != "" {
		exp.Category = c
	}

	if err := s.save(l); err != nil {
		return model.Expense{}, err
	}
	s.log.WithField("id", id).Debug("expense updated")
	return *exp, nil
}

// Delete removes an expense. Its id is never reused.
func (s *Store) Delete(id int) error {
	l, err := s.load()
	if err != nil {
		return err
	}
	idx := l.Index(id)
	if idx < 0 {
		return notFound(id)
	}
	l.Expenses = append(l.Expenses[:idx], l.Expenses[idx+1:]...)

	if err := s.save(l); err != nil {
		return err
	}
	s.log.WithField("id", id).Debug("expense deleted")
	return nil
}

// List returns expenses in insertion order, optionally filtered by category
// (case-insensitive). An empty result is not an error.
func (s *Store) List(category string) ([]model.Expense, error) {
	l, err := s.load()
	if err != nil {
		return nil, err
	}
	return FilterByCategory(l.Expenses, category), nil
}

// FilterByCategory keeps expenses whose category matches case-insensitively.
// An empty category returns all expenses.
func FilterByCategory(expenses []model.Expense, category string) []model.Expense {
	category = strings.TrimSpace(category)
	out := make([]model.Expense, 0, len(expenses))
	for _, e := range expenses {
		if category == "" || strings.EqualFold(e.Category, category) {
			out = append(out, e)
		}
	}
	return out
}
