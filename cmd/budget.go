package cmd

import (
	"fmt"

	"github.com/theirongolddev/spend/internal/cli"
	"github.com/theirongolddev/spend/internal/ledger"
	"github.com/theirongolddev/spend/internal/model"

	"github.com/spf13/cobra"
)

var (
	budgetMonth  int
	budgetAmount string
)

var budgetCmd = &cobra.Command{
	Use:     "budget",
	Short:   "Set a monthly budget for the current year",
	Example: "  spend budget --month 8 --amount 1000",
	Args:    cobra.NoArgs,
	RunE:    runBudget,
}

func init() {
	budgetCmd.Flags().IntVar(&budgetMonth, "month", 0, "Month (1-12)")
	budgetCmd.Flags().StringVar(&budgetAmount, "amount", "", "Budget threshold")
	_ = budgetCmd.MarkFlagRequired("month")
	_ = budgetCmd.MarkFlagRequired("amount")
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(_ *cobra.Command, _ []string) error {
	s, done, err := openStore()
	if err != nil {
		return err
	}
	defer done()

	warn, err := s.SetBudget(budgetMonth, budgetAmount)
	if err != nil {
		return err
	}

	threshold, _ := ledger.ParseAmount(budgetAmount)
	period := model.YearMonth{Year: s.CurrentPeriod().Year, Month: budgetMonth}
	fmt.Println(cli.RenderSuccess(fmt.Sprintf("Budget for %s set to %s", period.MonthName(), amount(threshold))))
	printBudgetWarning(warn)
	return nil
}
