package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-builder/internal/export"
	"github.com/jonathan/portfolio-builder/internal/observability"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the display projection of the working profile",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

var showJSON bool

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print the projection as JSON")

	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, _ []string) error {
	rt, err := openRuntime()
	if err != nil {
		return err
	}

	portfolio := rt.store.Project()
	if showJSON {
		out, err := export.Portfolio(portfolio)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintPortfolio(portfolio)
	return nil
}
