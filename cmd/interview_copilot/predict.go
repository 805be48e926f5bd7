package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-copilot/internal/prediction"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict likely interview questions for a target position",
	Long:  "Generate predicted questions, recommended topics, and a preparation plan for a target position, optionally grounded in a stored resume and past interviews at similar positions.",
	RunE: runWithApp(true, func(ctx context.Context, a *app, _ []string) error {
		rec, err := a.predictions.Generate(ctx, prediction.Input{
			TargetPosition: predictPosition,
			TargetCompany:  predictCompany,
			ResumeID:       predictResumeID,
		})
		if err != nil {
			return err
		}
		a.printer.PrintPrediction(rec)
		return nil
	}),
}

var (
	predictPosition string
	predictCompany  string
	predictResumeID string
)

func init() {
	predictCmd.Flags().StringVar(&predictPosition, "position", "", "Target position (required)")
	predictCmd.Flags().StringVar(&predictCompany, "company", "", "Target company")
	predictCmd.Flags().StringVar(&predictResumeID, "resume-id", "", "Resume to use as context")
	_ = predictCmd.MarkFlagRequired("position")
	rootCmd.AddCommand(predictCmd)
}

var listPredictionsCmd = &cobra.Command{
	Use:   "list-predictions",
	Short: "List saved predictions, most recent first",
	RunE: runWithApp(false, func(_ context.Context, a *app, _ []string) error {
		records, err := a.predictions.List()
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No predictions stored.")
			return nil
		}
		for _, rec := range records {
			fmt.Printf("%s  %s  %s\n", rec.PredictionID, rec.GeneratedTime, rec.TargetPosition)
		}
		return nil
	}),
}

var showPredictionCmd = &cobra.Command{
	Use:   "show-prediction <prediction-id>",
	Short: "Show a saved prediction",
	Args:  cobra.ExactArgs(1),
	RunE: runWithApp(false, func(_ context.Context, a *app, args []string) error {
		rec, err := a.predictions.Load(args[0])
		if err != nil {
			return err
		}
		a.printer.PrintPrediction(rec)
		return nil
	}),
}

var deletePredictionCmd = &cobra.Command{
	Use:   "delete-prediction <prediction-id>",
	Short: "Delete a saved prediction",
	Args:  cobra.ExactArgs(1),
	RunE: runWithApp(false, func(_ context.Context, a *app, args []string) error {
		if err := a.predictions.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted prediction %s\n", args[0])
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(listPredictionsCmd)
	rootCmd.AddCommand(showPredictionCmd)
	rootCmd.AddCommand(deletePredictionCmd)
}
