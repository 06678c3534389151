package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/theirongolddev/spend/internal/ledger"
	"github.com/theirongolddev/spend/internal/store"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// run executes the root command with args against an isolated config dir.
func run(t *testing.T, args ...string) error {
	t.Helper()
	resetFlags(rootCmd)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// resetFlags restores every flag to its default and clears Changed, so one
// test's flags never leak into the next Execute.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("SPEND_DATA_FILE", "")
	t.Setenv("SPEND_LOG_LEVEL", "")
	return dir
}

func TestCommands_AddListExport(t *testing.T) {
	dir := isolate(t)
	ledgerFile := filepath.Join(dir, "ledger.json")
	csvFile := filepath.Join(dir, "out.csv")

	if err := run(t, "add", "--data-file", ledgerFile, "--description", "Lunch", "--amount", "20"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := run(t, "add", "--data-file", ledgerFile, "--description", "Dinner", "--amount", "10", "--category", "Food"); err != nil {
		t.Fatalf("add with category: %v", err)
	}
	if err := run(t, "list", "--data-file", ledgerFile, "--category", "food"); err != nil {
		t.Fatalf("list: %v", err)
	}
	if err := run(t, "category-summary", "--data-file", ledgerFile); err != nil {
		t.Fatalf("category-summary: %v", err)
	}
	if err := run(t, "export", "--data-file", ledgerFile, "--file", csvFile); err != nil {
		t.Fatalf("export: %v", err)
	}

	data, err := os.ReadFile(csvFile)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("export has %d lines, want 3:\n%s", len(lines), data)
	}
	if !strings.HasSuffix(lines[1], `"Lunch",20,Uncategorized`) {
		t.Errorf("row 1 = %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], `"Dinner",10,Food`) {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestCommands_ErrorsAreReturned(t *testing.T) {
	dir := isolate(t)
	ledgerFile := filepath.Join(dir, "ledger.json")

	err := run(t, "add", "--data-file", ledgerFile, "--description", "Refund", "--amount", "-5")
	if !errors.Is(err, ledger.ErrValidation) {
		t.Errorf("negative amount err = %v, want ErrValidation", err)
	}
	err = run(t, "delete", "--data-file", ledgerFile, "--id", "99")
	if !errors.Is(err, ledger.ErrNotFound) {
		t.Errorf("delete unknown err = %v, want ErrNotFound", err)
	}
	err = run(t, "update", "--data-file", ledgerFile, "--id", "99", "--amount", "3")
	if !errors.Is(err, ledger.ErrNotFound) {
		t.Errorf("update unknown err = %v, want ErrNotFound", err)
	}
	err = run(t, "budget", "--data-file", ledgerFile, "--month", "13", "--amount", "100")
	if !errors.Is(err, ledger.ErrValidation) {
		t.Errorf("budget month 13 err = %v, want ErrValidation", err)
	}
	if err := run(t, "add", "--data-file", ledgerFile, "--description", "x", "--bogus-flag"); err == nil {
		t.Error("unknown flag should fail")
	}
}

func TestCommands_BudgetAndSummary(t *testing.T) {
	dir := isolate(t)
	ledgerFile := filepath.Join(dir, "ledger.json")

	if err := run(t, "add", "--data-file", ledgerFile, "--description", "Rent", "--amount", "900"); err != nil {
		t.Fatalf("add: %v", err)
	}
	s := ledger.New(store.NewJSONFile(ledgerFile))
	month := s.CurrentPeriod().Month

	if err := run(t, "budget", "--data-file", ledgerFile, "--month", strconv.Itoa(month), "--amount", "500"); err != nil {
		t.Fatalf("budget: %v", err)
	}
	warn, err := s.CheckBudget(month)
	if err != nil {
		t.Fatalf("CheckBudget: %v", err)
	}
	if warn == nil || warn.Total.String() != "900" {
		t.Fatalf("warning = %+v, want total 900", warn)
	}
	if err := run(t, "summary", "--data-file", ledgerFile, "--month", strconv.Itoa(month)); err != nil {
		t.Fatalf("summary --month: %v", err)
	}
	if err := run(t, "summary", "--data-file", ledgerFile, "--month", "0"); !errors.Is(err, ledger.ErrValidation) {
		t.Errorf("summary --month 0 err = %v, want ErrValidation", err)
	}
}

func TestCommands_SQLiteBackend(t *testing.T) {
	dir := isolate(t)
	dbFile := filepath.Join(dir, "ledger.db")

	if err := run(t, "add", "--backend", "sqlite", "--data-file", dbFile, "--description", "Coffee", "--amount", "3.5"); err != nil {
		t.Fatalf("add: %v", err)
	}
	db, err := store.OpenSQLite(dbFile)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer func() { _ = db.Close() }()
	n, err := db.ExpenseCount()
	if err != nil || n != 1 {
		t.Fatalf("ExpenseCount = %d, %v; want 1", n, err)
	}

	if err := run(t, "list", "--backend", "postgres", "--data-file", dbFile); err == nil {
		t.Error("unknown backend should fail")
	}
}

func TestCommands_MixedCaseBackendInConfig(t *testing.T) {
	dir := isolate(t)
	cfgDir := filepath.Join(dir, "config", "spend")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte("[storage]\nbackend = \"SQLite\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := run(t, "add", "--description", "Coffee", "--amount", "3.5"); err != nil {
		t.Fatalf("add: %v", err)
	}

	dbFile := filepath.Join(dir, "data", "spend", "expenses.db")
	db, err := store.OpenSQLite(dbFile)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer func() { _ = db.Close() }()
	n, err := db.ExpenseCount()
	if err != nil || n != 1 {
		t.Fatalf("ExpenseCount = %d, %v; want 1 row in the sqlite ledger", n, err)
	}
}

func TestCommands_FlagsDoNotLeakBetweenRuns(t *testing.T) {
	dir := isolate(t)
	ledgerFile := filepath.Join(dir, "ledger.json")

	if err := run(t, "summary", "--data-file", ledgerFile, "--month", "0"); !errors.Is(err, ledger.ErrValidation) {
		t.Fatalf("summary --month 0 err = %v, want ErrValidation", err)
	}
	// Without --month this is the all-time total and must not reuse month 0.
	if err := run(t, "summary", "--data-file", ledgerFile); err != nil {
		t.Errorf("summary after --month run: %v", err)
	}
}
