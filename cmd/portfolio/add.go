package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-builder/internal/store"
)

var addCmd = &cobra.Command{
	Use:   "add <collection>",
	Short: "Add an entry to a profile collection",
	Long:  "Appends a whole record to one of the profile collections (skills, experience, education, projects, certifications, achievements, languages). The item is given as JSON via --json or --file; skills accept a bare string.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

var (
	addJSON string
	addFile string
)

func init() {
	addCmd.Flags().StringVar(&addJSON, "json", "", "Item as a JSON document")
	addCmd.Flags().StringVarP(&addFile, "file", "f", "", "Path to a JSON file holding the item")

	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	rt, err := openRuntime()
	if err != nil {
		return err
	}

	collection := store.Collection(args[0])
	data, err := readItemInput(addJSON, addFile)
	if err != nil {
		return err
	}
	item, err := decodeItem(collection, data)
	if err != nil {
		return err
	}

	if err := rt.store.Apply(store.AddItem{Collection: collection, Item: item}); err != nil {
		return err
	}
	if err := rt.store.FlushDraft(); err != nil {
		return err
	}

	fmt.Printf("Added %s entry\n", collection)
	printChangedSummary(rt)
	return nil
}
