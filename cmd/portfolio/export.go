package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-builder/internal/export"
	"github.com/jonathan/portfolio-builder/internal/schemas"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the display projection as pretty-printed JSON",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var exportOutput string

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "out", "o", "", "Path to the output JSON file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	rt, err := openRuntime()
	if err != nil {
		return err
	}

	out, err := export.Portfolio(rt.store.Project())
	if err != nil {
		return err
	}

	// Validate output against schema (non-fatal)
	if schemaPath := schemas.ResolveSchemaPath("schemas/portfolio.schema.json"); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, []byte(out)); err != nil {
			var validationErr *schemas.ValidationError
			var schemaLoadErr *schemas.SchemaLoadError
			if errors.As(err, &validationErr) {
				_, _ = fmt.Fprintf(os.Stderr, "Warning: Exported portfolio does not validate against schema: %v\n", err)
			} else if errors.As(err, &schemaLoadErr) {
				_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate export against schema (schema loading failed): %v\n", err)
			} else {
				_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate export against schema: %v\n", err)
			}
		}
	}

	if exportOutput == "" {
		fmt.Println(out)
		return nil
	}

	outputDir := filepath.Dir(exportOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(exportOutput, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	fmt.Printf("Exported portfolio to %s\n", exportOutput)
	return nil
}
