package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <interview-id> [interview-id...]",
	Short: "Generate and persist an interview summary",
	Long:  "Summarize an interview transcript. With --index, summarize a single question/answer pair instead; with multiple IDs each interview is summarized independently.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSummarize,
}

var summarizeIndex int

func init() {
	summarizeCmd.Flags().IntVar(&summarizeIndex, "index", -1, "Summarize only the QA item at this index")
	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	return runWithApp(true, func(ctx context.Context, a *app, args []string) error {
		if cmd.Flags().Changed("index") {
			if len(args) != 1 {
				return fmt.Errorf("--index requires exactly one interview id")
			}
			summary, err := a.interviews.SummarizeQA(ctx, args[0], summarizeIndex)
			if err != nil {
				return err
			}
			fmt.Println(summary)
			return nil
		}

		if len(args) == 1 {
			result, err := a.interviews.Summarize(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Println(result.Summary)
			a.printer.PrintKeyPoints(result.KeyPoints)
			return nil
		}

		for _, r := range a.interviews.SummarizeBatch(ctx, args) {
			if r.Err != nil {
				fmt.Printf("%s: failed: %v\n", r.InterviewID, r.Err)
				continue
			}
			fmt.Printf("%s: summarized\n", r.InterviewID)
		}
		return nil
	})(cmd, args)
}
