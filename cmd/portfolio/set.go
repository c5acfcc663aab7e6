package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-builder/internal/store"
)

var setCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Set a scalar profile field",
	Long:  "Sets one scalar field of the working profile: name, title, email, phone, location, about, avatar, coverImage or template. The change stays unsaved until 'portfolio save'.",
	Args:  cobra.ExactArgs(2),
	RunE:  runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(_ *cobra.Command, args []string) error {
	rt, err := openRuntime()
	if err != nil {
		return err
	}

	field, value := store.ScalarField(args[0]), args[1]
	if err := rt.store.Apply(store.SetScalar{Field: field, Value: value}); err != nil {
		return err
	}
	if err := rt.store.FlushDraft(); err != nil {
		return err
	}

	fmt.Printf("Set %s\n", field)
	printChangedSummary(rt)
	return nil
}

// printChangedSummary prints the unsaved-section list after an edit.
func printChangedSummary(rt *runtime) {
	changed := rt.store.ChangedSections()
	if len(changed) == 0 {
		fmt.Println("No unsaved changes.")
		return
	}
	fmt.Printf("Unsaved changes in: %v\n", changed)
}
