package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var analyzeAnswerCmd = &cobra.Command{
	Use:   "analyze-answer",
	Short: "Analyze one answer and record the result on the interview",
	RunE: runWithApp(true, func(ctx context.Context, a *app, _ []string) error {
		analysis, err := a.interviews.AnalyzeAnswer(ctx, analyzeInterviewID, analyzeIndex)
		if err != nil {
			return err
		}
		fmt.Println(analysis)
		return nil
	}),
}

var (
	analyzeInterviewID string
	analyzeIndex       int
)

func init() {
	analyzeAnswerCmd.Flags().StringVar(&analyzeInterviewID, "interview-id", "", "Interview ID (required)")
	analyzeAnswerCmd.Flags().IntVar(&analyzeIndex, "index", 0, "QA item index (required)")
	_ = analyzeAnswerCmd.MarkFlagRequired("interview-id")
	_ = analyzeAnswerCmd.MarkFlagRequired("index")
	rootCmd.AddCommand(analyzeAnswerCmd)
}
