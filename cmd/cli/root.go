package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	githubToken  string
	llmProvider  string
	outputFormat string
	quiet        bool
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "optimizer-cli",
	Short: "optimizer-cli reviews and optimizes code with a language model.",
	Long: `A command-line client for the code optimizer. It reviews local files or
a single file in a GitHub repository and prints a structured report with an
optimized rewrite.

Configuration is read from the environment and an optional .env file, the same
way the server reads it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if _, err := parseFormat(outputFormat); err != nil {
			return err
		}
		applyEnvOverrides()
		return nil
	},
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	rootCmd.PersistentFlags().StringVarP(&githubToken, "github-token", "t", "", "GitHub token (overrides GITHUB_TOKEN)")
	rootCmd.PersistentFlags().StringVarP(&llmProvider, "provider", "p", "", "LLM provider: openai, gemini or ollama (overrides LLM_PROVIDER)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", string(formatText), "Output format: text, json, yaml or markdown")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Do not show a progress spinner")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
}

// applyEnvOverrides maps flags onto the environment variables the shared
// config loader reads, and keeps logs off stdout so reports stay pipeable.
func applyEnvOverrides() {
	setEnv := func(key, value string) {
		if err := os.Setenv(key, value); err != nil {
			fmt.Fprintf(os.Stderr, "failed to set %s: %v\n", key, err)
		}
	}

	if githubToken != "" {
		setEnv("GITHUB_TOKEN", githubToken)
	}
	if llmProvider != "" {
		setEnv("LLM_PROVIDER", llmProvider)
	}
	if _, ok := os.LookupEnv("LOG_OUTPUT"); !ok {
		setEnv("LOG_OUTPUT", "stderr")
	}
	switch {
	case verbose:
		setEnv("LOG_LEVEL", "debug")
	case os.Getenv("LOG_LEVEL") == "":
		setEnv("LOG_LEVEL", "warn")
	}
}
