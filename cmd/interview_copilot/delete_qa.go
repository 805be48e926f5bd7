package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteQACmd = &cobra.Command{
	Use:   "delete-qa",
	Short: "Delete a question/answer pair from an interview",
	RunE: runWithApp(false, func(_ context.Context, a *app, _ []string) error {
		if _, err := a.interviews.DeleteQA(deleteQAInterviewID, deleteQAIndex); err != nil {
			return err
		}
		fmt.Printf("Deleted question/answer #%d from interview %s\n", deleteQAIndex, deleteQAInterviewID)
		return nil
	}),
}

var (
	deleteQAInterviewID string
	deleteQAIndex       int
)

func init() {
	deleteQACmd.Flags().StringVar(&deleteQAInterviewID, "interview-id", "", "Interview ID (required)")
	deleteQACmd.Flags().IntVar(&deleteQAIndex, "index", 0, "QA item index (required)")
	_ = deleteQACmd.MarkFlagRequired("interview-id")
	_ = deleteQACmd.MarkFlagRequired("index")
	rootCmd.AddCommand(deleteQACmd)
}
