// Package main provides the portfolio CLI, the interactive shell around the
// profile store, validator, change detector and navigation guard.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio profile editor",
	Long:  "Portfolio edits a locally stored portfolio profile (personal info, experience, education, skills, projects, certifications, achievements, languages, CV) with change tracking, validation and guarded section navigation.",
}

var (
	rootConfigPath string
	rootStateDir   string
	rootUserID     string
	rootLogLevel   string
	rootLogFile    string
	rootVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to JSON config file (optional)")
	rootCmd.PersistentFlags().StringVar(&rootStateDir, "state-dir", "", "State directory (default ~/.portfolio-builder)")
	rootCmd.PersistentFlags().StringVar(&rootUserID, "user", "", "User ID owning the profile (default \"default\")")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&rootLogFile, "log-file", "", "Log to file instead of stdout")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed boxed output")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
