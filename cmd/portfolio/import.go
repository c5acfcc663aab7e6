package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/portfolio-builder/internal/export"
	"github.com/jonathan/portfolio-builder/internal/observability"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import an exported portfolio JSON document",
	Long:  "Parses an exported portfolio document and shows what it contains. A document that cannot be parsed, or that lacks personalInfo.name, falls back to the empty default projection; the import never fails hard.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	rt, err := openRuntime()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	portfolio, importErr := export.Import(data)
	if importErr != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %v; using empty default projection\n", importErr)
		rt.log.Warn("portfolio import rejected", zap.Error(importErr))
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintPortfolio(portfolio)
	return nil
}
