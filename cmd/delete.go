package cmd

import (
	"fmt"

	"github.com/theirongolddev/spend/internal/cli"

	"github.com/spf13/cobra"
)

var deleteID int

var deleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Delete an expense",
	Example: "  spend delete --id 2",
	Args:    cobra.NoArgs,
	RunE:    runDelete,
}

func init() {
	deleteCmd.Flags().IntVar(&deleteID, "id", 0, "ID of the expense")
	_ = deleteCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, _ []string) error {
	s, done, err := openStore()
	if err != nil {
		return err
	}
	defer done()

	if err := s.Delete(deleteID); err != nil {
		return err
	}
	fmt.Println(cli.RenderSuccess(fmt.Sprintf("Expense deleted successfully (ID: %d)", deleteID)))
	return nil
}
