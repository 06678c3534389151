package cmd

import (
	"fmt"

	"github.com/theirongolddev/spend/internal/cli"
	"github.com/theirongolddev/spend/internal/ledger"

	"github.com/spf13/cobra"
)

var (
	updateID    int
	updateInput ledger.UpdateInput
)

var updateCmd = &cobra.Command{
	Use:     "update",
	Short:   "Update an existing expense",
	Example: "  spend update --id 1 --amount 25",
	Args:    cobra.NoArgs,
	RunE:    runUpdate,
}

func init() {
	updateCmd.Flags().IntVar(&updateID, "id", 0, "ID of the expense")
	updateCmd.Flags().StringVar(&updateInput.Description, "description", "", "New description")
	updateCmd.Flags().StringVar(&updateInput.Amount, "amount", "", "New amount")
	updateCmd.Flags().StringVar(&updateInput.Category, "category", "", "New category")
	_ = updateCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(_ *cobra.Command, _ []string) error {
	s, done, err := openStore()
	if err != nil {
		return err
	}
	defer done()

	exp, err := s.Update(updateID, updateInput)
	if err != nil {
		return err
	}
	if updateInput.IsEmpty() {
		fmt.Println(cli.RenderInfo(fmt.Sprintf("Nothing to update (ID: %d)", exp.ID)))
		return nil
	}
	fmt.Println(cli.RenderSuccess(fmt.Sprintf("Expense updated successfully (ID: %d)", exp.ID)))
	return nil
}
