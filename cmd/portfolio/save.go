package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Persist the working profile",
	Long:  "Writes the working profile and its display projection to the local store and resets the unsaved-changes baseline. Partial profiles save fine; run 'portfolio validate' to check completeness rules.",
	Args:  cobra.NoArgs,
	RunE:  runSave,
}

func init() {
	rootCmd.AddCommand(saveCmd)
}

func runSave(_ *cobra.Command, _ []string) error {
	rt, err := openRuntime()
	if err != nil {
		return err
	}

	changed := rt.store.ChangedSections()
	if len(changed) == 0 {
		fmt.Println("Nothing to save.")
		return nil
	}

	if err := rt.store.Save(); err != nil {
		return err
	}

	fmt.Printf("Saved %d section(s): %v\n", len(changed), changed)
	return nil
}
