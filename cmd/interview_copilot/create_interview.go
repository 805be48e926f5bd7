package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var createInterviewCmd = &cobra.Command{
	Use:   "create-interview",
	Short: "Create a new interview record",
	RunE:  runCreateInterview,
}

var (
	createTitle    string
	createCompany  string
	createPosition string
	createDate     string
)

func init() {
	createInterviewCmd.Flags().StringVar(&createTitle, "title", "", "Interview title")
	createInterviewCmd.Flags().StringVar(&createCompany, "company", "", "Company name")
	createInterviewCmd.Flags().StringVar(&createPosition, "position", "", "Position interviewed for")
	createInterviewCmd.Flags().StringVar(&createDate, "date", "", "Interview date (YYYY-MM-DD)")
	rootCmd.AddCommand(createInterviewCmd)
}

var runCreateInterview = runWithApp(false, func(_ context.Context, a *app, _ []string) error {
	rec, err := a.interviews.Create(createTitle, createCompany, createPosition, createDate)
	if err != nil {
		return err
	}
	fmt.Printf("Interview record created. ID: %s\n", rec.InterviewID)
	return nil
})
