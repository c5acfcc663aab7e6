package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-builder/internal/store"
)

var replaceCmd = &cobra.Command{
	Use:   "replace <collection> <index>",
	Short: "Replace an entry of a profile collection",
	Args:  cobra.ExactArgs(2),
	RunE:  runReplace,
}

var (
	replaceJSON string
	replaceFile string
)

func init() {
	replaceCmd.Flags().StringVar(&replaceJSON, "json", "", "Replacement item as a JSON document")
	replaceCmd.Flags().StringVarP(&replaceFile, "file", "f", "", "Path to a JSON file holding the replacement item")

	rootCmd.AddCommand(replaceCmd)
}

func runReplace(_ *cobra.Command, args []string) error {
	rt, err := openRuntime()
	if err != nil {
		return err
	}

	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("index must be a number: %w", err)
	}

	collection := store.Collection(args[0])
	data, err := readItemInput(replaceJSON, replaceFile)
	if err != nil {
		return err
	}
	item, err := decodeItem(collection, data)
	if err != nil {
		return err
	}

	if err := rt.store.Apply(store.ReplaceItem{Collection: collection, Index: index, Item: item}); err != nil {
		return err
	}
	if err := rt.store.FlushDraft(); err != nil {
		return err
	}

	fmt.Printf("Replaced %s entry %d\n", collection, index)
	printChangedSummary(rt)
	return nil
}
