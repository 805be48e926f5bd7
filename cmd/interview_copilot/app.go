package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-copilot/internal/config"
	"github.com/jonathan/interview-copilot/internal/interview"
	"github.com/jonathan/interview-copilot/internal/llm"
	"github.com/jonathan/interview-copilot/internal/logging"
	"github.com/jonathan/interview-copilot/internal/observability"
	"github.com/jonathan/interview-copilot/internal/prediction"
	"github.com/jonathan/interview-copilot/internal/resume"
	"github.com/jonathan/interview-copilot/internal/store"
)

// Flags shared by every command. Precedence: flag > env > config file >
// built-in defaults.
var (
	flagConfig  string
	flagDataDir string
	flagAPIKey  string
	flagModel   string
	flagVerbose bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Root directory for stored data (default \"data\")")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&flagModel, "model", "", "Model name override for all tiers")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose logging")
}

// loadAppConfig merges flags over env over an optional config file over
// defaults, validates the result, and initializes logging.
func loadAppConfig() (*config.Config, error) {
	merged := config.Config{
		APIKey:  flagAPIKey,
		Model:   flagModel,
		DataDir: flagDataDir,
	}
	merged = merged.MergeWithDefaults(config.FromEnv())

	if flagConfig != "" {
		fileCfg, err := config.LoadConfig(flagConfig)
		if err != nil {
			return nil, err
		}
		merged = merged.MergeWithDefaults(*fileCfg)
	}
	merged = merged.MergeWithDefaults(config.DefaultConfig())
	merged.Verbose = merged.Verbose || flagVerbose

	if err := merged.Validate(); err != nil {
		return nil, err
	}

	level := merged.LogLevel
	if merged.Verbose {
		level = "debug"
	}
	logging.Init(level, merged.Verbose)

	return &merged, nil
}

// app bundles the wired services for one command invocation.
type app struct {
	cfg         *config.Config
	store       *store.Store
	client      llm.Client
	resumes     *resume.Service
	interviews  *interview.Service
	predictions *prediction.Service
	printer     *observability.Printer
}

// newApp wires the store and services. When withLLM is false the client is
// nil and commands that only touch local files need no API key.
func newApp(ctx context.Context, withLLM bool) (*app, error) {
	cfg, err := loadAppConfig()
	if err != nil {
		return nil, err
	}

	st, err := store.New(cfg.DataDir, cfg.ResumeExtensions)
	if err != nil {
		return nil, err
	}

	var client llm.Client
	if withLLM {
		llmCfg := llm.DefaultConfig().WithTimeout(cfg.Timeout())
		if cfg.Model != "" {
			llmCfg = llmCfg.WithAllTiers(cfg.Model)
		}
		client, err = llm.NewClient(ctx, llmCfg, cfg.APIKey)
		if err != nil {
			return nil, err
		}
	}

	resumes := resume.NewService(st, client)
	return &app{
		cfg:         cfg,
		store:       st,
		client:      client,
		resumes:     resumes,
		interviews:  interview.NewService(st, client),
		predictions: prediction.NewService(st, client, resumes),
		printer:     observability.NewPrinter(os.Stdout),
	}, nil
}

// close releases the LLM client if one was created.
func (a *app) close() {
	if a.client != nil {
		_ = a.client.Close()
	}
}

// runWithApp wraps a command body with app construction and teardown.
func runWithApp(withLLM bool, body func(ctx context.Context, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		a, err := newApp(ctx, withLLM)
		if err != nil {
			return err
		}
		defer a.close()
		return body(ctx, a, args)
	}
}
