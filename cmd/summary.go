package cmd

import (
	"fmt"

	"github.com/theirongolddev/spend/internal/model"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var summaryMonth int

var summaryCmd = &cobra.Command{
	Use:     "summary",
	Short:   "Show total expenses, optionally for one month of this year",
	Example: "  spend summary\n  spend summary --month 8",
	Args:    cobra.NoArgs,
	RunE:    runSummary,
}

func init() {
	summaryCmd.Flags().IntVar(&summaryMonth, "month", 0, "Month (1-12) of the current year")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	s, done, err := openStore()
	if err != nil {
		return err
	}
	defer done()

	if !cmd.Flags().Changed("month") {
		total, err := s.Summarize()
		if err != nil {
			return err
		}
		fmt.Printf("  Total expenses: %s\n", amount(total))
		return nil
	}

	total, err := s.SummarizeMonth(summaryMonth)
	if err != nil {
		return err
	}
	period := model.YearMonth{Year: s.CurrentPeriod().Year, Month: summaryMonth}
	fmt.Printf("  Total expenses for %s: %s\n", period.MonthName(), amount(total))

	budgets, err := s.Budgets()
	if err != nil {
		return err
	}
	if threshold, ok := budgets[period]; ok {
		printBudgetStatus(total, threshold)
	}
	return nil
}

func printBudgetStatus(total, threshold decimal.Decimal) {
	left := threshold.Sub(total)
	if left.IsNegative() {
		fmt.Printf("  Budget: %s (%s over)\n", amount(threshold), amount(left.Neg()))
		return
	}
	fmt.Printf("  Budget: %s (%s left)\n", amount(threshold), amount(left))
}
