package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-builder/internal/store"
)

var removeCmd = &cobra.Command{
	Use:   "remove <collection> <index>",
	Short: "Remove an entry from a profile collection",
	Args:  cobra.ExactArgs(2),
	RunE:  runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(_ *cobra.Command, args []string) error {
	rt, err := openRuntime()
	if err != nil {
		return err
	}

	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("index must be a number: %w", err)
	}

	collection := store.Collection(args[0])
	if err := rt.store.Apply(store.RemoveItem{Collection: collection, Index: index}); err != nil {
		return err
	}
	if err := rt.store.FlushDraft(); err != nil {
		return err
	}

	fmt.Printf("Removed %s entry %d\n", collection, index)
	printChangedSummary(rt)
	return nil
}
