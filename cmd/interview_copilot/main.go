// Package main provides the command-line entry point for Interview Copilot.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "interview_copilot",
	Short: "Personal interview preparation assistant",
	Long:  "Interview Copilot stores resumes and interview records on local files and uses an LLM to extract resume information, summarize interviews, analyze answers, and predict likely questions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
