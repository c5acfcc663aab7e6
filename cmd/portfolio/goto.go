package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-builder/internal/guard"
)

var gotoCmd = &cobra.Command{
	Use:   "goto <section-or-page>",
	Short: "Switch the active section, guarded by unsaved changes",
	Long:  "Moves the session to another section or page. With unsaved changes the switch is suspended: pass --save to persist first, --discard to drop the changes, or rerun without flags to keep editing (the pending switch is cancelled).",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoto,
}

var (
	gotoSave    bool
	gotoDiscard bool
)

func init() {
	gotoCmd.Flags().BoolVar(&gotoSave, "save", false, "Save unsaved changes before switching")
	gotoCmd.Flags().BoolVar(&gotoDiscard, "discard", false, "Discard unsaved changes before switching")

	rootCmd.AddCommand(gotoCmd)
}

func runGoto(_ *cobra.Command, args []string) error {
	if gotoSave && gotoDiscard {
		return fmt.Errorf("--save and --discard are mutually exclusive")
	}

	rt, err := openRuntime()
	if err != nil {
		return err
	}

	destination := args[0]
	g := guard.New(rt.store, func(dest string) error {
		if err := rt.store.SetActiveSection(dest); err != nil {
			return err
		}
		fmt.Printf("Now on %q\n", dest)
		return nil
	})

	changed, err := g.RequestTransition(destination)
	if err != nil {
		return err
	}
	if g.State() == guard.Idle {
		return nil
	}

	// Transition is suspended behind the save/discard prompt.
	switch {
	case gotoSave:
		if err := g.ConfirmSave(); err != nil {
			return err
		}
		fmt.Println("Changes saved.")
		return nil
	case gotoDiscard:
		if err := g.ConfirmDiscard(); err != nil {
			return err
		}
		if err := rt.store.DropDraft(); err != nil {
			return err
		}
		fmt.Println("Changes discarded.")
		return nil
	default:
		fmt.Printf("Unsaved changes in: %v\n", changed)
		if err := g.Cancel(); err != nil {
			return err
		}
		return fmt.Errorf("switch to %q cancelled; rerun with --save or --discard", destination)
	}
}
