package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-copilot/internal/interview"
)

var updateQACmd = &cobra.Command{
	Use:   "update-qa",
	Short: "Update fields of a question/answer pair",
	Long:  "Update question, answer, or notes of one QA item by index. Only the provided flags change; the item's timestamp is refreshed.",
	RunE:  runUpdateQA,
}

var (
	updateQAInterviewID string
	updateQAIndex       int
	updateQAQuestion    string
	updateQAAnswer      string
	updateQANotes       string
)

func init() {
	updateQACmd.Flags().StringVar(&updateQAInterviewID, "interview-id", "", "Interview ID (required)")
	updateQACmd.Flags().IntVar(&updateQAIndex, "index", 0, "QA item index (required)")
	updateQACmd.Flags().StringVar(&updateQAQuestion, "question", "", "New question text")
	updateQACmd.Flags().StringVar(&updateQAAnswer, "answer", "", "New answer text")
	updateQACmd.Flags().StringVar(&updateQANotes, "notes", "", "New notes text")
	_ = updateQACmd.MarkFlagRequired("interview-id")
	_ = updateQACmd.MarkFlagRequired("index")
	rootCmd.AddCommand(updateQACmd)
}

func runUpdateQA(cmd *cobra.Command, args []string) error {
	var update interview.QAUpdate
	if cmd.Flags().Changed("question") {
		update.Question = &updateQAQuestion
	}
	if cmd.Flags().Changed("answer") {
		update.Answer = &updateQAAnswer
	}
	if cmd.Flags().Changed("notes") {
		update.Notes = &updateQANotes
	}

	return runWithApp(false, func(_ context.Context, a *app, _ []string) error {
		if _, err := a.interviews.UpdateQA(updateQAInterviewID, updateQAIndex, update); err != nil {
			return err
		}
		fmt.Printf("Updated question/answer #%d in interview %s\n", updateQAIndex, updateQAInterviewID)
		return nil
	})(cmd, args)
}
