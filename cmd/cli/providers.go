package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sevigo/code-optimizer/internal/config"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List supported LLM providers and their default models",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		active := strings.ToLower(os.Getenv("LLM_PROVIDER"))
		if active == "" {
			active = config.ProviderOpenAI
		}

		names := make([]string, 0, len(config.DefaultModels))
		for name := range config.DefaultModels {
			names = append(names, name)
		}
		slices.Sort(names)

		titleColor.Println("Supported providers")
		for _, name := range names {
			marker := "  "
			if name == active {
				marker = successColor.Sprint("* ")
			}
			fmt.Printf("%s%-8s %s\n", marker, name, dimColor.Sprint(config.DefaultModels[name]))
		}
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(providersCmd)
}
