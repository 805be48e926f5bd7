package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteInterviewCmd = &cobra.Command{
	Use:   "delete-interview <interview-id>",
	Short: "Delete an interview record",
	Args:  cobra.ExactArgs(1),
	RunE: runWithApp(false, func(_ context.Context, a *app, args []string) error {
		if err := a.interviews.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted interview %s\n", args[0])
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(deleteInterviewCmd)
}
