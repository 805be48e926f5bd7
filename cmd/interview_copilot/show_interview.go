package main

import (
	"context"

	"github.com/spf13/cobra"
)

var showInterviewCmd = &cobra.Command{
	Use:   "show-interview <interview-id>",
	Short: "Show the full content of an interview record",
	Args:  cobra.ExactArgs(1),
	RunE: runWithApp(false, func(_ context.Context, a *app, args []string) error {
		rec, err := a.interviews.Load(args[0])
		if err != nil {
			return err
		}
		a.printer.PrintInterview(rec)
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(showInterviewCmd)
}
