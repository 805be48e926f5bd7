package main

import (
	"context"

	"github.com/spf13/cobra"
)

var listInterviewsCmd = &cobra.Command{
	Use:   "list-interviews",
	Short: "List saved interviews, most recent first",
	RunE: runWithApp(false, func(_ context.Context, a *app, _ []string) error {
		records, err := a.interviews.List()
		if err != nil {
			return err
		}
		a.printer.PrintInterviewList(records)
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(listInterviewsCmd)
}
