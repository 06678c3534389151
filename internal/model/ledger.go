package model

import "github.com/shopspring/decimal"

// Ledger is the full persisted unit: expenses, the id counter and monthly budgets.
type Ledger struct {
	Expenses []Expense
	NextID   int
	Budgets  map[YearMonth]decimal.Decimal
}

// NewLedger returns an empty ledger with NextID = 1.
func NewLedger() *Ledger {
	return &Ledger{
		Expenses: []Expense{},
		NextID:   1,
		Budgets:  make(map[YearMonth]decimal.Decimal),
	}
}

// MaxID returns the highest expense id, or 0 when empty.
func (l *Ledger) MaxID() int {
	maxID := 0
	for _, e := range l.Expenses {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	return maxID
}

// Index returns the position of the expense with the given id, or -1.
func (l *Ledger) Index(id int) int {
	for i, e := range l.Expenses {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy so callers can mutate without touching the original.
func (l *Ledger) Clone() *Ledger {
	c := &Ledger{
		Expenses: make([]Expense, len(l.Expenses)),
		NextID:   l.NextID,
		Budgets:  make(map[YearMonth]decimal.Decimal, len(l.Budgets)),
	}
	copy(c.Expenses, l.Expenses)
	for k, v := range l.Budgets {
		c.Budgets[k] = v
	}
	return c
}
