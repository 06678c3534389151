// Package store provides persistence backends for the expense ledger.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/spend/internal/model"

	"github.com/shopspring/decimal"
)

// JSONFile stores the ledger as a single JSON document.
type JSONFile struct {
	path string
}

// NewJSONFile returns a backend writing to path. Nothing is touched until Save.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Location returns the file path.
func (j *JSONFile) Location() string { return j.path }

// Exists reports whether the ledger file is present.
func (j *JSONFile) Exists() (bool, error) {
	_, err := os.Stat(j.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

type fileLedger struct {
	Expenses []fileExpense         `json:"expenses"`
	NextID   int                   `json:"nextId"`
	Budgets  map[string]json.Number `json:"budgets"`
}

type fileExpense struct {
	ID          int         `json:"id"`
	Date        string      `json:"date"`
	Description string      `json:"description"`
	Amount      json.Number `json:"amount"`
	Category    string      `json:"category"`
}

// Load reads and decodes the ledger file.
func (j *JSONFile) Load() (*model.Ledger, error) {
	data, err := os.ReadFile(j.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", j.path, err)
	}
	return decodeLedger(data)
}

// Save encodes the ledger and replaces the file via a temp file and rename.
func (j *JSONFile) Save(l *model.Ledger) error {
	data, err := encodeLedger(l)
	if err != nil {
		return err
	}

	dir := filepath.Dir(j.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".ledger-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, j.path); err != nil {
		return fmt.Errorf("replacing %s: %w", j.path, err)
	}
	return nil
}

func decodeLedger(data []byte) (*model.Ledger, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var fl fileLedger
	if err := dec.Decode(&fl); err != nil {
		return nil, fmt.Errorf("parsing ledger: %w", err)
	}

	l := model.NewLedger()
	l.NextID = fl.NextID
	for _, fe := range fl.Expenses {
		date, err := time.Parse(model.DateLayout, fe.Date)
		if err != nil {
			return nil, fmt.Errorf("expense %d: parsing date: %w", fe.ID, err)
		}
		amount, err := decimal.NewFromString(fe.Amount.String())
		if err != nil {
			return nil, fmt.Errorf("expense %d: parsing amount: %w", fe.ID, err)
		}
		l.Expenses = append(l.Expenses, model.Expense{
			ID:          fe.ID,
			Date:        date,
			Description: fe.Description,
			Amount:      amount,
			Category:    fe.Category,
		})
	}
	for key, n := range fl.Budgets {
		ym, err := model.ParseYearMonth(key)
		if err != nil {
			return nil, err
		}
		amount, err := decimal.NewFromString(n.String())
		if err != nil {
			return nil, fmt.Errorf("budget %s: parsing amount: %w", key, err)
		}
		l.Budgets[ym] = amount
	}
	return l, nil
}

func encodeLedger(l *model.Ledger) ([]byte, error) {
	fl := fileLedger{
		Expenses: make([]fileExpense, 0, len(l.Expenses)),
		NextID:   l.NextID,
		Budgets:  make(map[string]json.Number, len(l.Budgets)),
	}
	for _, e := range l.Expenses {
		fl.Expenses = append(fl.Expenses, fileExpense{
			ID:          e.ID,
			Date:        e.DateString(),
			Description: e.Description,
			Amount:      json.Number(e.Amount.String()),
			Category:    e.Category,
		})
	}
	for ym, amount := range l.Budgets {
		fl.Budgets[ym.String()] = json.Number(amount.String())
	}

	data, err := json.MarshalIndent(fl, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding ledger: %w", err)
	}
	return data, nil
}
