// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/interview-copilot/internal/resume"
	"github.com/jonathan/interview-copilot/internal/store"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for CLI commands
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		// Truncate on rune boundaries so CJK content stays valid UTF-8.
		if runes := []rune(line); len(runes) > boxWidth-4 {
			line = string(runes[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs the extracted resume fields in display order.
func (p *Printer) PrintResume(rec *store.ResumeRecord) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ID:       %s\n", rec.ResumeID))
	sb.WriteString(fmt.Sprintf("File:     %s\n", rec.FilePath))
	if rec.UploadTime != "" {
		sb.WriteString(fmt.Sprintf("Uploaded: %s\n", rec.UploadTime))
	}
	sb.WriteString("\n")
	for _, field := range resume.Fields {
		if value, ok := rec.UserInfo[field]; ok {
			sb.WriteString(fmt.Sprintf("%-14s %s\n", field+":", firstLine(value)))
		}
	}

	p.printBox("Resume", strings.TrimRight(sb.String(), "\n"))
}

// PrintInterview outputs one interview record in full.
func (p *Printer) PrintInterview(rec *store.InterviewRecord) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ID:       %s\n", rec.InterviewID))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", rec.Title))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", rec.Company))
	sb.WriteString(fmt.Sprintf("Position: %s\n", rec.Position))
	sb.WriteString(fmt.Sprintf("Date:     %s\n", rec.InterviewDate))

	if len(rec.QuestionsAnswers) > 0 {
		sb.WriteString("\n")
		for i, qa := range rec.QuestionsAnswers {
			sb.WriteString(fmt.Sprintf("[%d] Q: %s\n", i, firstLine(qa.Question)))
			sb.WriteString(fmt.Sprintf("    A: %s\n", firstLine(qa.Answer)))
			if qa.Notes != "" {
				sb.WriteString(fmt.Sprintf("    Notes: %s\n", firstLine(qa.Notes)))
			}
			if len(qa.Analysis) > 0 {
				sb.WriteString(fmt.Sprintf("    Analyses: %d\n", len(qa.Analysis)))
			}
		}
	}

	if rec.Summary != "" {
		sb.WriteString("\nSummary:\n")
		sb.WriteString(rec.Summary)
		sb.WriteString("\n")
	}

	p.printBox("Interview", strings.TrimRight(sb.String(), "\n"))
}

// PrintInterviewList outputs a one-line-per-record listing.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintInterviewList(records []*store.InterviewRecord) {
	fmt.Fprintf(p.out, "Found %d interview record(s)\n", len(records))
	for i, rec := range records {
		fmt.Fprintf(p.out, "%d. %s | %s | %s | %s (id: %s)\n",
			i+1, rec.Title, rec.Company, rec.Position, rec.InterviewDate, rec.InterviewID)
	}
}

// PrintPrediction outputs a prediction's questions, topics, and plan.
func (p *Printer) PrintPrediction(rec *store.PredictionRecord) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ID:       %s\n", rec.PredictionID))
	sb.WriteString(fmt.Sprintf("Position: %s\n", rec.TargetPosition))
	if rec.TargetCompany != "" {
		sb.WriteString(fmt.Sprintf("Company:  %s\n", rec.TargetCompany))
	}
	if rec.ResumeID != "" {
		sb.WriteString(fmt.Sprintf("Resume:   %s\n", rec.ResumeID))
	}

	if len(rec.RecommendedQuestions) > 0 {
		sb.WriteString("\nPredicted questions:\n")
		writeNumbered(&sb, rec.RecommendedQuestions)
	}
	if len(rec.RecommendedTopics) > 0 {
		sb.WriteString("\nRecommended topics:\n")
		writeNumbered(&sb, rec.RecommendedTopics)
	}

	p.printBox("Prediction", strings.TrimRight(sb.String(), "\n"))

	if rec.PreparationPlan != "" {
		fmt.Fprintf(p.out, "\nPreparation plan:\n%s\n", rec.PreparationPlan) //nolint:errcheck
	}
}

// PrintKeyPoints outputs the key-point index of a summary.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintKeyPoints(points []string) {
	if len(points) == 0 {
		return
	}
	fmt.Fprintln(p.out, "Key points:")
	for _, point := range points {
		fmt.Fprintf(p.out, "  • %s\n", point)
	}
}

func writeNumbered(sb *strings.Builder, items []string) {
	count := len(items)
	if count > maxItemsToShow {
		count = maxItemsToShow
	}
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, firstLine(items[i])))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

func firstLine(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		return text[:idx] + " ..."
	}
	return text
}
