package cmd

import (
	"fmt"

	"github.com/theirongolddev/spend/internal/cli"
	"github.com/theirongolddev/spend/internal/ledger"

	"github.com/spf13/cobra"
)

var addInput ledger.AddInput

var addCmd = &cobra.Command{
	Use:     "add",
	Short:   "Add a new expense",
	Example: "  spend add --description \"Lunch\" --amount 20\n  spend add --description \"Dinner\" --amount 10 --category \"Food\"",
	Args:    cobra.NoArgs,
	RunE:    runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addInput.Description, "description", "", "Description of the expense")
	addCmd.Flags().StringVar(&addInput.Amount, "amount", "", "Amount of the expense")
	addCmd.Flags().StringVar(&addInput.Category, "category", "", "Category of the expense (default \"Uncategorized\")")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, _ []string) error {
	s, done, err := openStore()
	if err != nil {
		return err
	}
	defer done()

	exp, warn, err := s.Add(addInput)
	if err != nil {
		return err
	}

	fmt.Println(cli.RenderSuccess(fmt.Sprintf("Expense added successfully (ID: %d)", exp.ID)))
	printBudgetWarning(warn)
	return nil
}
