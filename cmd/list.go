package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/spend/internal/cli"
	"github.com/theirongolddev/spend/internal/ledger"

	"github.com/spf13/cobra"
)

var listCategory string

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List all expenses",
	Example: "  spend list\n  spend list --category \"Food\"",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "Only show this category (case-insensitive)")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	s, done, err := openStore()
	if err != nil {
		return err
	}
	defer done()

	expenses, err := s.List(listCategory)
	if err != nil {
		return err
	}
	if len(expenses) == 0 {
		fmt.Println(cli.RenderInfo("No expenses found"))
		return nil
	}

	rows := make([][]string, 0, len(expenses)+2)
	for _, e := range expenses {
		rows = append(rows, []string{
			strconv.Itoa(e.ID),
			e.DateString(),
			cli.Truncate(e.Description, 32),
			amount(e.Amount),
			cli.Truncate(e.Category, 20),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "", "TOTAL", amount(ledger.Total(expenses)), cli.FormatNumber(int64(len(expenses))) + " items"})

	title := ""
	if listCategory != "" {
		title = "Category: " + listCategory
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   title,
		Headers: []string{"ID", "Date", "Description", "Amount", "Category"},
		Rows:    rows,
		Left:    []bool{false, true, true, false, true},
	}))
	return nil
}
