package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sevigo/code-optimizer/internal/core"
	"github.com/sevigo/code-optimizer/internal/review"
	"github.com/sevigo/code-optimizer/internal/wire"
)

const stdinPath = "-"

var (
	snippetLanguage    string
	snippetConcurrency int
)

var snippetCmd = &cobra.Command{
	Use:   "snippet [files...]",
	Short: "Review local source files",
	Long: `Review one or more local source files. Use "-" to read from stdin.

The language is inferred from each file extension unless --language is given.
Several files are reviewed concurrently, each as an independent request.

Examples:
  optimizer-cli snippet main.go
  optimizer-cli snippet --format json src/a.py src/b.py
  cat app.js | optimizer-cli snippet --language JavaScript -`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSnippet,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	snippetCmd.Flags().StringVarP(&snippetLanguage, "language", "l", "", "Language of the code (default: inferred from the extension)")
	snippetCmd.Flags().IntVarP(&snippetConcurrency, "concurrency", "c", 2, "Number of files reviewed at the same time")
	rootCmd.AddCommand(snippetCmd)
}

type snippetResult struct {
	path   string
	report *core.ReviewReport
}

func runSnippet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	format, _ := parseFormat(outputFormat)

	if snippetConcurrency < 1 {
		return fmt.Errorf("--concurrency must be at least 1, got %d", snippetConcurrency)
	}

	sources := make([]string, len(args))
	for i, path := range args {
		code, err := readSource(path)
		if err != nil {
			return err
		}
		sources[i] = code
	}

	appInstance, err := wire.InitializeApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w\n\nTip: check your .env file and LLM_PROVIDER", err)
	}

	results := make([]snippetResult, len(args))
	err = withSpinner(ctx, spinnerLabel(len(args)), func(ctx context.Context) error {
		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(snippetConcurrency)
		for i, path := range args {
			g.Go(func() error {
				language := snippetLanguage
				if language == "" {
					language = review.InferLanguage(path)
				}
				report, err := appInstance.Service.ReviewSnippet(ctx, sources[i], language)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				results[i] = snippetResult{path: path, report: report}
				return nil
			})
		}
		return g.Wait()
	})
	if err != nil {
		return err
	}

	for _, res := range results {
		if err := printReport(os.Stdout, format, res.path, res.report, nil); err != nil {
			return err
		}
	}
	return nil
}

func readSource(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == stdinPath {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

func spinnerLabel(files int) string {
	if files == 1 {
		return "Reviewing 1 file"
	}
	return fmt.Sprintf("Reviewing %d files", files)
}
