package cmd

import (
	"fmt"
	"sort"

	"github.com/theirongolddev/spend/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Storage]")
	fmt.Printf("    Backend: %s\n", cfg.Storage.Backend)
	fmt.Printf("    Ledger:  %s\n", ledgerPath())
	fmt.Println()

	fmt.Println("  [Export]")
	fmt.Printf("    Default file: %s\n", cfg.Export.DefaultFile)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme:    %s\n", cfg.Appearance.Theme)
	fmt.Printf("    Currency: %s\n", cfg.Appearance.Currency)
	fmt.Println()

	s, done, err := openStore()
	if err != nil {
		return err
	}
	defer done()

	budgets, err := s.Budgets()
	if err != nil {
		return err
	}
	fmt.Println("  [Budgets]")
	if len(budgets) == 0 {
		fmt.Println("    none set")
	}
	keys := make([]string, 0, len(budgets))
	byKey := make(map[string]string, len(budgets))
	for ym, v := range budgets {
		k := fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
		keys = append(keys, k)
		byKey[k] = fmt.Sprintf("    %s %d: %s", ym.MonthName(), ym.Year, amount(v))
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Println(byKey[k])
	}
	fmt.Println()

	fmt.Println("  Run `spend setup` to reconfigure.")
	return nil
}
