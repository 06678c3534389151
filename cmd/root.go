// Package cmd implements the spend CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/theirongolddev/spend/internal/cli"
	"github.com/theirongolddev/spend/internal/config"
	"github.com/theirongolddev/spend/internal/ledger"
	"github.com/theirongolddev/spend/internal/model"
	"github.com/theirongolddev/spend/internal/store"
	"github.com/theirongolddev/spend/internal/tui/theme"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagDataFile string
	flagBackend  string
	flagVerbose  bool
)

// cfg is the effective configuration, loaded before every command runs.
var cfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:           "spend",
	Short:         "Personal expense tracker",
	Long:          "Record expenses, review totals by month and category, and keep an eye on monthly budgets.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		setupLogging()

		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		if flagBackend != "" {
			cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(flagBackend))
			if err := cfg.Validate(); err != nil {
				return err
			}
		}
		theme.SetActive(cfg.Appearance.Theme)
		cli.UseTheme(theme.Active)
		return nil
	},
}

// Execute is the main entry point called from main.go.
// Any command error is printed on one line and exits 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataFile, "data-file", "", "Ledger location (default from config or $SPEND_DATA_FILE)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Storage backend: json or sqlite")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging on stderr")
}

// setupLogging configures the standard logrus logger from SPEND_LOG_LEVEL and --verbose.
func setupLogging() {
	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)
	if level := os.Getenv("SPEND_LOG_LEVEL"); level != "" {
		lvl, err := log.ParseLevel(level)
		if err != nil {
			log.Warnf("ignoring SPEND_LOG_LEVEL: %v", err)
		} else {
			log.SetLevel(lvl)
		}
	}
	if flagVerbose {
		log.SetLevel(log.DebugLevel)
	}
}

// ledgerPath resolves the ledger location: --data-file wins over config.
func ledgerPath() string {
	if flagDataFile != "" {
		return flagDataFile
	}
	return config.LedgerPath(cfg)
}

// openStore opens the configured backend and makes sure a ledger exists.
// The returned close func must be called when the command is done.
func openStore() (*ledger.Store, func(), error) {
	path := ledgerPath()
	log.WithFields(log.Fields{
		"backend": cfg.Storage.Backend,
		"path":    path,
	}).Debug("opening ledger")

	var backend ledger.Backend
	var closer io.Closer
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		db, err := store.OpenSQLite(path)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ledger.ErrIO, err)
		}
		backend, closer = db, db
	default:
		backend = store.NewJSONFile(path)
	}

	s := ledger.New(backend, ledger.WithLogger(log.StandardLogger()))
	closeFn := func() {
		if closer != nil {
			if err := closer.Close(); err != nil {
				log.Warnf("closing ledger: %v", err)
			}
		}
	}
	if err := s.Initialize(); err != nil {
		closeFn()
		return nil, nil, err
	}
	return s, closeFn, nil
}

// amount formats d in the configured currency.
func amount(d decimal.Decimal) string {
	return cli.FormatAmount(d, cfg.Appearance.Currency)
}

func printBudgetWarning(w *model.BudgetWarning) {
	if w == nil {
		return
	}
	fmt.Println(cli.RenderWarning(fmt.Sprintf("Warning: You have exceeded your budget! (%s / %s)",
		amount(w.Total),
		amount(w.Threshold),
	)))
}
