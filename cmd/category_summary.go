package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/spend/internal/cli"

	"github.com/spf13/cobra"
)

var categorySummaryCmd = &cobra.Command{
	Use:   "category-summary",
	Short: "Show totals by category",
	Args:  cobra.NoArgs,
	RunE:  runCategorySummary,
}

func init() {
	rootCmd.AddCommand(categorySummaryCmd)
}

func runCategorySummary(_ *cobra.Command, _ []string) error {
	s, done, err := openStore()
	if err != nil {
		return err
	}
	defer done()

	sum, err := s.SummarizeByCategory()
	if err != nil {
		return err
	}
	if len(sum.Categories) == 0 {
		fmt.Println(cli.RenderInfo("No expenses found"))
		return nil
	}

	rows := make([][]string, 0, len(sum.Categories)+2)
	for _, c := range sum.Categories {
		rows = append(rows, []string{
			cli.Truncate(c.Category, 24),
			strconv.Itoa(c.Count),
			amount(c.Total),
			cli.FormatPercent(cli.Share(c.Total, sum.GrandTotal)),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", "", amount(sum.GrandTotal), ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Category Summary",
		Headers: []string{"Category", "Count", "Amount", "Share"},
		Rows:    rows,
	}))

	maxCat := sum.Categories[0].Total
	for _, c := range sum.Categories[1:] {
		if c.Total.GreaterThan(maxCat) {
			maxCat = c.Total
		}
	}
	fmt.Println()
	for _, c := range sum.Categories {
		fmt.Println(cli.RenderHorizontalBar(
			fmt.Sprintf("  %-16s", cli.Truncate(c.Category, 16)),
			c.Total.InexactFloat64(), maxCat.InexactFloat64(), 30))
	}
	return nil
}
