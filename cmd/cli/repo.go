package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sevigo/code-optimizer/internal/core"
	"github.com/sevigo/code-optimizer/internal/wire"
)

var repoCmd = &cobra.Command{
	Use:   "repo [repo-url] [file-path]",
	Short: "Review a file in a GitHub repository and commit the optimized version",
	Long: `Fetch one file from a GitHub repository, review it and commit the optimized
code to the branch optimized/<sanitized-path>. Running it again updates the same
branch.

Examples:
  optimizer-cli repo https://github.com/acme/widgets src/utils/helper.js
  optimizer-cli repo -t $TOKEN https://github.com/acme/widgets.git main.go`,
	Args: cobra.ExactArgs(2),
	RunE: runRepo,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(repoCmd)
}

func runRepo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	format, _ := parseFormat(outputFormat)
	repoURL, filePath := args[0], args[1]

	appInstance, err := wire.InitializeApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w\n\nTip: check your .env file and LLM_PROVIDER", err)
	}

	var result *core.RepoReviewResult
	err = withSpinner(ctx, "Reviewing "+filePath, func(ctx context.Context) error {
		var err error
		result, err = appInstance.Service.ReviewRepositoryFile(ctx, repoURL, filePath)
		return err
	})
	if err != nil {
		return err
	}

	return printReport(os.Stdout, format, filePath, &result.ReviewReport, result)
}
