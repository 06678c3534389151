package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Storage.Backend != BackendJSON {
		t.Errorf("Backend = %q, want %q", cfg.Storage.Backend, BackendJSON)
	}
	if cfg.Export.DefaultFile != "expenses.csv" {
		t.Errorf("DefaultFile = %q, want expenses.csv", cfg.Export.DefaultFile)
	}
	if cfg.Appearance.Currency != "USD" {
		t.Errorf("Currency = %q, want USD", cfg.Appearance.Currency)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want := DefaultConfig()
	want.Storage.Backend = BackendSQLite
	want.Storage.Path = "/tmp/ledger.db"
	want.Appearance.Currency = "EUR"

	if err := SaveTo(path, want); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[appearance]\ncurrency = \"GBP\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Appearance.Currency != "GBP" {
		t.Errorf("Currency = %q, want GBP", cfg.Appearance.Currency)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q, want default", cfg.Appearance.Theme)
	}
}

func TestLoadFrom_UnknownBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[storage]\nbackend = \"postgres\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestLedgerPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")
	t.Setenv("SPEND_DATA_FILE", "")

	cfg := DefaultConfig()
	if got := LedgerPath(cfg); got != filepath.Join("/data", "spend", "expenses.json") {
		t.Errorf("json default = %q", got)
	}

	cfg.Storage.Backend = BackendSQLite
	if got := LedgerPath(cfg); got != filepath.Join("/data", "spend", "expenses.db") {
		t.Errorf("sqlite default = %q", got)
	}

	cfg.Storage.Path = "/elsewhere/ledger.db"
	if got := LedgerPath(cfg); got != "/elsewhere/ledger.db" {
		t.Errorf("configured path = %q", got)
	}

	t.Setenv("SPEND_DATA_FILE", "/env/ledger.json")
	if got := LedgerPath(cfg); got != "/env/ledger.json" {
		t.Errorf("env override = %q", got)
	}
}

func TestLoadFrom_NormalizesBackendCase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[storage]\nbackend = \" SQLite \"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Storage.Backend != BackendSQLite {
		t.Errorf("Backend = %q, want %q", cfg.Storage.Backend, BackendSQLite)
	}
}
