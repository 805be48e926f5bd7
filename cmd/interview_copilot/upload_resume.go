package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var uploadResumeCmd = &cobra.Command{
	Use:   "upload-resume <file>",
	Short: "Upload a resume file and extract structured information",
	Long:  "Upload a resume (.pdf, .docx, .doc, .txt), store it under a unique name, and extract the candidate's fields via the model. A field that fails to extract is reported as \"not extracted\" without failing the upload.",
	Args:  cobra.ExactArgs(1),
	RunE:  runUploadResume,
}

var uploadSaveInfo bool

func init() {
	uploadResumeCmd.Flags().BoolVar(&uploadSaveInfo, "save-info", false, "Also persist the extracted fields as a structured .json resume")
	rootCmd.AddCommand(uploadResumeCmd)
}

var runUploadResume = runWithApp(true, func(ctx context.Context, a *app, args []string) error {
	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	rec, err := a.resumes.Upload(ctx, content, filepath.Base(path))
	if err != nil {
		return err
	}

	if uploadSaveInfo {
		if _, err := a.resumes.SaveStructured(rec); err != nil {
			return err
		}
	}

	fmt.Printf("Resume uploaded. ID: %s\n", rec.ResumeID)
	a.printer.PrintResume(rec)
	return nil
})
