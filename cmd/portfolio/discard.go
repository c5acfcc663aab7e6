package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var discardCmd = &cobra.Command{
	Use:   "discard",
	Short: "Drop unsaved changes",
	Long:  "Resets the working profile to the last saved state.",
	Args:  cobra.NoArgs,
	RunE:  runDiscard,
}

func init() {
	rootCmd.AddCommand(discardCmd)
}

func runDiscard(_ *cobra.Command, _ []string) error {
	rt, err := openRuntime()
	if err != nil {
		return err
	}

	changed := rt.store.ChangedSections()
	rt.store.Discard()
	if err := rt.store.DropDraft(); err != nil {
		return err
	}

	if len(changed) == 0 {
		fmt.Println("Nothing to discard.")
	} else {
		fmt.Printf("Discarded changes in %d section(s): %v\n", len(changed), changed)
	}
	return nil
}
