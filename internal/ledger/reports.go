package ledger

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/theirongolddev/spend/internal/model"

	"github.com/shopspring/decimal"
)

// CSVHeader is the first line of every export.
const CSVHeader = "ID,Date,Description,Amount,Category"

// Summarize returns the total of all expenses. An empty ledger totals zero.
func (s *Store) Summarize() (decimal.Decimal, error) {
	l, err := s.load()
	if err != nil {
		return decimal.Zero, err
	}
	return Total(l.Expenses), nil
}

// SummarizeMonth returns the total for the given month of the current year.
func (s *Store) SummarizeMonth(month int) (decimal.Decimal, error) {
	if err := ValidateMonth(month); err != nil {
		return decimal.Zero, err
	}
	l, err := s.load()
	if err != nil {
		return decimal.Zero, err
	}
	ym := model.YearMonth{Year: s.clock.Now().Year(), Month: month}
	return Total(FilterByMonth(l.Expenses, ym)), nil
}

// SummarizeByCategory groups totals by category in first-seen order.
func (s *Store) SummarizeByCategory() (model.CategorySummary, error) {
	l, err := s.load()
	if err != nil {
		return model.CategorySummary{}, err
	}
	return GroupByCategory(l.Expenses), nil
}

// ExportCSV writes all expenses to path and returns the number of rows written.
// Nothing is written when the ledger is empty.
func (s *Store) ExportCSV(path string) (int, error) {
	l, err := s.load()
	if err != nil {
		return 0, err
	}
	if len(l.Expenses) == 0 {
		return 0, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return 0, ioErr("creating export dir", err)
		}
	}
	f, err := os.Create(path) //nolint:gosec // path is chosen by the user
	if err != nil {
		return 0, ioErr("creating export file", err)
	}
	w := bufio.NewWriter(f)
	if err := WriteCSV(w, l.Expenses); err != nil {
		_ = f.Close()
		return 0, ioErr("writing export", err)
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return 0, ioErr("writing export", err)
	}
	if err := f.Close(); err != nil {
		return 0, ioErr("closing export", err)
	}
	s.log.WithField("path", path).Debugf("exported %d expenses", len(l.Expenses))
	return len(l.Expenses), nil
}

// Total sums expense amounts.
func Total(expenses []model.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// FilterByMonth keeps expenses dated in ym.
func FilterByMonth(expenses []model.Expense, ym model.YearMonth) []model.Expense {
	var out []model.Expense
	for _, e := range expenses {
		if e.In(ym) {
			out = append(out, e)
		}
	}
	return out
}

// GroupByCategory totals expenses per category, keeping first-seen order.
func GroupByCategory(expenses []model.Expense) model.CategorySummary {
	var sum model.CategorySummary
	sum.GrandTotal = decimal.Zero
	idx := make(map[string]int)
	for _, e := range expenses {
		i, ok := idx[e.Category]
		if !ok {
			i = len(sum.Categories)
			idx[e.Category] = i
			sum.Categories = append(sum.Categories, model.CategoryTotal{Category: e.Category, Total: decimal.Zero})
		}
		sum.Categories[i].Total = sum.Categories[i].Total.Add(e.Amount)
		sum.Categories[i].Count++
		sum.GrandTotal = sum.GrandTotal.Add(e.Amount)
	}
	return sum
}

// WriteCSV writes the header and one row per expense. The description is
// always quoted; the category only when it needs to be.
func WriteCSV(w *bufio.Writer, expenses []model.Expense) error {
	if _, err := w.WriteString(CSVHeader + "\n"); err != nil {
		return err
	}
	for _, e := range expenses {
		_, err := fmt.Fprintf(w, "%s,%s,%s,%s,%s\n",
			strconv.Itoa(e.ID),
			e.DateString(),
			quoteCSV(e.Description),
			e.Amount.String(),
			maybeQuoteCSV(e.Category),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func maybeQuoteCSV(s string) string {
	if strings.ContainsAny(s, ",\"\r\n") {
		return quoteCSV(s)
	}
	return s
}
