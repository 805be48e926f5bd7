package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteResumeCmd = &cobra.Command{
	Use:   "delete-resume <resume-id>",
	Short: "Delete a stored resume",
	Args:  cobra.ExactArgs(1),
	RunE: runWithApp(false, func(_ context.Context, a *app, args []string) error {
		if err := a.resumes.DeleteByID(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted resume %s\n", args[0])
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(deleteResumeCmd)
}
