package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/theirongolddev/spend/internal/model"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // register sqlite driver
)

const nextIDKey = "next_id"

// SQLite stores the ledger in a SQLite database. Save rewrites every row in
// one transaction, so the database always holds a whole ledger.
type SQLite struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens or creates the database at path.
func OpenSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLite{db: db, path: path}, nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Location returns the database path.
func (s *SQLite) Location() string { return s.path }

// Exists reports whether a ledger has been saved, keyed on the id counter row.
func (s *SQLite) Exists() (bool, error) {
	var v string
	err := s.db.QueryRow("SELECT value FROM meta WHERE key = ?", nextIDKey).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Load reads the ledger back in insertion order.
func (s *SQLite) Load() (*model.Ledger, error) {
	l := model.NewLedger()

	var next string
	err := s.db.QueryRow("SELECT value FROM meta WHERE key = ?", nextIDKey).Scan(&next)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if next != "" {
		n, err := strconv.Atoi(next)
		if err != nil {
			return nil, fmt.Errorf("parsing next id %q: %w", next, err)
		}
		l.NextID = n
	}

	rows, err := s.db.Query("SELECT id, date, description, amount, category FROM expenses ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var e model.Expense
		var date, amount string
		if err := rows.Scan(&e.ID, &date, &e.Description, &amount, &e.Category); err != nil {
			return nil, err
		}
		if e.Date, err = time.Parse(model.DateLayout, date); err != nil {
			return nil, fmt.Errorf("expense %d: parsing date: %w", e.ID, err)
		}
		if e.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("expense %d: parsing amount: %w", e.ID, err)
		}
		l.Expenses = append(l.Expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	budgetRows, err := s.db.Query("SELECT year, month, amount FROM budgets")
	if err != nil {
		return nil, err
	}
	defer func() { _ = budgetRows.Close() }()

	for budgetRows.Next() {
		var ym model.YearMonth
		var amount string
		if err := budgetRows.Scan(&ym.Year, &ym.Month, &amount); err != nil {
			return nil, err
		}
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("budget %s: parsing amount: %w", ym, err)
		}
		l.Budgets[ym] = d
	}
	return l, budgetRows.Err()
}

// Save replaces the stored ledger.
func (s *SQLite) Save(l *model.Ledger) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{"DELETE FROM expenses", "DELETE FROM budgets"} {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}

	for i, e := range l.Expenses {
		_, err = tx.Exec(`INSERT INTO expenses
			(position, id, date, description, amount, category)
			VALUES (?, ?, ?, ?, ?, ?)`,
			i, e.ID, e.DateString(), e.Description, e.Amount.String(), e.Category,
		)
		if err != nil {
			return err
		}
	}

	for _, ym := range sortedBudgetKeys(l.Budgets) {
		_, err = tx.Exec("INSERT INTO budgets (year, month, amount) VALUES (?, ?, ?)",
			ym.Year, ym.Month, l.Budgets[ym].String())
		if err != nil {
			return err
		}
	}

	_, err = tx.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)",
		nextIDKey, strconv.Itoa(l.NextID))
	if err != nil {
		return err
	}

	return tx.Commit()
}

// ExpenseCount returns the number of stored expenses.
func (s *SQLite) ExpenseCount() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM expenses").Scan(&count)
	return count, err
}

// sortedBudgetKeys orders budget periods chronologically.
func sortedBudgetKeys(budgets map[model.YearMonth]decimal.Decimal) []model.YearMonth {
	keys := make([]model.YearMonth, 0, len(budgets))
	for ym := range budgets {
		keys = append(keys, ym)
	}
	sort.Slice(keys, func(i, k int) bool {
		if keys[i].Year != keys[k].Year {
			return keys[i].Year < keys[k].Year
		}
		return keys[i].Month < keys[k].Month
	})
	return keys
}
