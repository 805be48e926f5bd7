package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-copilot/internal/llm"
)

var chatCmd = &cobra.Command{
	Use:   "chat <prompt...>",
	Short: "Send a free-form prompt to the model",
	Args:  cobra.MinimumNArgs(1),
	RunE: runWithApp(true, func(ctx context.Context, a *app, args []string) error {
		reply, err := llm.Chat(ctx, a.client, strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Println(reply)
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
