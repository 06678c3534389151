package cmd

import (
	"fmt"

	"github.com/theirongolddev/spend/internal/cli"

	"github.com/spf13/cobra"
)

var exportFile string

var exportCmd = &cobra.Command{
	Use:     "export",
	Short:   "Export expenses to CSV",
	Example: "  spend export --file expenses.csv",
	Args:    cobra.NoArgs,
	RunE:    runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFile, "file", "", "Filename for export (default from config, expenses.csv)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	s, done, err := openStore()
	if err != nil {
		return err
	}
	defer done()

	path := exportFile
	if path == "" {
		path = cfg.Export.DefaultFile
	}

	n, err := s.ExportCSV(path)
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Println(cli.RenderInfo("No expenses to export"))
		return nil
	}
	fmt.Println(cli.RenderSuccess(fmt.Sprintf("%d expenses exported to %s", n, path)))
	return nil
}
