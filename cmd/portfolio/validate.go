package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-builder/internal/observability"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the working profile",
	Long:  "Runs the full validation rule set (required fields, formats, date ordering) against the working profile and lists every failing field.",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	rt, err := openRuntime()
	if err != nil {
		return err
	}

	result := rt.store.Validate()

	if rt.cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintValidation(result)
	} else if !result.Valid {
		keys := make([]string, 0, len(result.Errors))
		for k := range result.Errors {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s: %s\n", k, result.Errors[k])
		}
	}

	if !result.Valid {
		// Exit code 1 so scripts can gate on validity.
		return fmt.Errorf("validation found %d error(s)", len(result.Errors))
	}

	fmt.Println("Profile is valid.")
	return nil
}
