package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-builder/internal/store"
	"github.com/jonathan/portfolio-builder/internal/types"
)

var cvCmd = &cobra.Command{
	Use:   "cv",
	Short: "Manage the attached CV record",
}

var cvAttachCmd = &cobra.Command{
	Use:   "attach <file>",
	Short: "Attach a CV file's metadata to the profile",
	Long:  "Records the file's name, size, MIME type and upload time on the profile. The file content itself stays where it is; the profile only keeps the metadata and an opaque storage key.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCVAttach,
}

var cvClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the attached CV record",
	Args:  cobra.NoArgs,
	RunE:  runCVClear,
}

func init() {
	cvCmd.AddCommand(cvAttachCmd)
	cvCmd.AddCommand(cvClearCmd)
	rootCmd.AddCommand(cvCmd)
}

func runCVAttach(_ *cobra.Command, args []string) error {
	rt, err := openRuntime()
	if err != nil {
		return err
	}

	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("CV file not found: %s", path)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	cv := types.CVFile{
		FileName:   filepath.Base(path),
		StorageKey: "cv/" + filepath.Base(path),
		UploadedAt: time.Now().UTC().Format(time.RFC3339),
		Size:       info.Size(),
		MimeType:   mimeType,
	}

	if err := rt.store.Apply(store.SetCV{CV: cv}); err != nil {
		return err
	}
	if err := rt.store.FlushDraft(); err != nil {
		return err
	}

	fmt.Printf("Attached CV %s (%d bytes, %s)\n", cv.FileName, cv.Size, cv.MimeType)
	printChangedSummary(rt)
	return nil
}

func runCVClear(_ *cobra.Command, _ []string) error {
	rt, err := openRuntime()
	if err != nil {
		return err
	}

	if err := rt.store.Apply(store.ClearCV{}); err != nil {
		return err
	}
	if err := rt.store.FlushDraft(); err != nil {
		return err
	}

	fmt.Println("Cleared CV")
	printChangedSummary(rt)
	return nil
}
