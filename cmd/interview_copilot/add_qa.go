package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var addQACmd = &cobra.Command{
	Use:   "add-qa",
	Short: "Append a question/answer pair to an interview record",
	RunE:  runAddQA,
}

var (
	addQAInterviewID string
	addQAQuestion    string
	addQAAnswer      string
	addQANotes       string
)

func init() {
	addQACmd.Flags().StringVar(&addQAInterviewID, "interview-id", "", "Interview ID (required)")
	addQACmd.Flags().StringVar(&addQAQuestion, "question", "", "Interview question (required)")
	addQACmd.Flags().StringVar(&addQAAnswer, "answer", "", "Answer given (required)")
	addQACmd.Flags().StringVar(&addQANotes, "notes", "", "Optional notes")
	_ = addQACmd.MarkFlagRequired("interview-id")
	_ = addQACmd.MarkFlagRequired("question")
	_ = addQACmd.MarkFlagRequired("answer")
	rootCmd.AddCommand(addQACmd)
}

var runAddQA = runWithApp(false, func(_ context.Context, a *app, _ []string) error {
	rec, err := a.interviews.AddQA(addQAInterviewID, addQAQuestion, addQAAnswer, addQANotes)
	if err != nil {
		return err
	}
	fmt.Printf("Added question/answer #%d to interview %s\n", len(rec.QuestionsAnswers)-1, rec.InterviewID)
	return nil
})
