package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-builder/internal/observability"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show unsaved changes and completeness",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	rt, err := openRuntime()
	if err != nil {
		return err
	}

	changed := rt.store.ChangedSections()
	if rt.cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintChangedSections(changed)
	} else if len(changed) == 0 {
		fmt.Println("No unsaved changes.")
	} else {
		fmt.Printf("%d section(s) with unsaved changes:\n", len(changed))
		for _, s := range changed {
			fmt.Printf("  %s\n", s)
		}
	}

	if rt.store.IsComplete() {
		fmt.Println("Profile is complete.")
	} else {
		fmt.Println("Profile is incomplete (needs name, title, email, location, about, and at least one skill, experience and education entry).")
	}

	if section, err := rt.store.ActiveSection(); err == nil && section != "" {
		fmt.Printf("Active section: %s\n", section)
	}
	return nil
}
