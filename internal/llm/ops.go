// Package llm - ops.go provides the higher-level operations built on Client.
package llm

import (
	"context"
	"strconv"

	"github.com/jonathan/interview-copilot/internal/prompts"
)

// DefaultPredictedQuestions is how many questions a prediction asks for.
const DefaultPredictedQuestions = 10

// SummarizeText asks the model to condense text to roughly maxLength characters.
func SummarizeText(ctx context.Context, c Client, text string, maxLength int) (string, error) {
	if maxLength <= 0 {
		maxLength = 300
	}
	system := prompts.Format(prompts.MustGet("summary.json", "text-system"), map[string]string{
		"MaxLength": strconv.Itoa(maxLength),
	})
	return c.GenerateContent(ctx, text, system, TierLite)
}

// ExtractField pulls a single named field out of arbitrary text.
func ExtractField(ctx context.Context, c Client, text, field string) (string, error) {
	system := prompts.MustGet("extraction.json", "system")
	prompt := prompts.Format(prompts.MustGet("extraction.json", "field"), map[string]string{
		"Field": field,
		"Text":  text,
	})
	return c.GenerateContent(ctx, prompt, system, TierLite)
}

// AnalyzeAnswer reviews one question/answer pair and returns quality feedback.
func AnalyzeAnswer(ctx context.Context, c Client, question, answer string) (string, error) {
	system := prompts.MustGet("analysis.json", "system")
	prompt := prompts.Format(prompts.MustGet("analysis.json", "analyze"), map[string]string{
		"Question": question,
		"Answer":   answer,
	})
	return c.GenerateContent(ctx, prompt, system, TierStandard)
}

// Chat forwards a freeform prompt with no system instruction.
func Chat(ctx context.Context, c Client, prompt string) (string, error) {
	return c.GenerateContent(ctx, prompt, "", TierStandard)
}
