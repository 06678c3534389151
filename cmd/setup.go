package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/spend/internal/config"
	"github.com/theirongolddev/spend/internal/tui/theme"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	next := cfg

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Storage backend").
				Options(
					huh.NewOption("JSON file", config.BackendJSON),
					huh.NewOption("SQLite database", config.BackendSQLite),
				).
				Value(&next.Storage.Backend),
			huh.NewInput().
				Title("Ledger path").
				Description("Leave empty for the default location.").
				Value(&next.Storage.Path),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Currency").
				Description("ISO 4217 code, e.g. USD or EUR.").
				Validate(validateCurrency).
				Value(&next.Appearance.Currency),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&next.Appearance.Theme),
			huh.NewInput().
				Title("Default export file").
				Value(&next.Export.DefaultFile),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("running setup: %w", err)
	}

	next.Appearance.Currency = strings.ToUpper(strings.TrimSpace(next.Appearance.Currency))
	next.Storage.Path = strings.TrimSpace(next.Storage.Path)
	if strings.TrimSpace(next.Export.DefaultFile) == "" {
		next.Export.DefaultFile = config.DefaultConfig().Export.DefaultFile
	}

	if err := config.Save(next); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `spend setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

func validateCurrency(s string) error {
	if money.GetCurrency(strings.ToUpper(strings.TrimSpace(s))) == nil {
		return fmt.Errorf("unknown currency %q", s)
	}
	return nil
}
