package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var listResumesCmd = &cobra.Command{
	Use:   "list-resumes",
	Short: "List stored resume files",
	RunE: runWithApp(false, func(_ context.Context, a *app, _ []string) error {
		paths, err := a.resumes.List()
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			fmt.Println("No resumes stored.")
			return nil
		}
		for _, p := range paths {
			fmt.Println(filepath.Base(p))
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(listResumesCmd)
}
