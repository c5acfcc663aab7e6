package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-builder/internal/types"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create or reset the stored profile",
	Long:  "Creates a fresh empty profile for the user and persists it. If a profile already exists it is only replaced with --force; unsaved changes and drafts are dropped.",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

var (
	initTemplate string
	initForce    bool
)

func init() {
	initCmd.Flags().StringVar(&initTemplate, "template", "", "Template for the new profile (default \"modern\")")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Replace an existing profile")

	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	rt, err := openRuntime()
	if err != nil {
		return err
	}

	exists, err := rt.store.Persisted()
	if err != nil {
		return err
	}
	if exists && !initForce {
		return fmt.Errorf("a profile already exists for user %q; rerun with --force to reset it", rt.cfg.UserID)
	}

	template := initTemplate
	if template == "" {
		template = rt.cfg.Template
	}
	if template != "" && !types.ValidTemplateID(template) {
		return fmt.Errorf("unknown template %q", template)
	}

	if err := rt.store.Reset(template); err != nil {
		return err
	}

	fmt.Printf("Initialized profile for user %q\n", rt.cfg.UserID)
	return nil
}
