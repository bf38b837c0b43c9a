package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/sevigo/code-optimizer/internal/core"
	"github.com/sevigo/code-optimizer/internal/review"
)

type reportFormat string

const (
	formatText     reportFormat = "text"
	formatJSON     reportFormat = "json"
	formatYAML     reportFormat = "yaml"
	formatMarkdown reportFormat = "markdown"
)

func parseFormat(s string) (reportFormat, error) {
	switch f := reportFormat(strings.ToLower(s)); f {
	case formatText, formatJSON, formatYAML, formatMarkdown:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json, yaml or markdown)", s)
	}
}

// Color definitions
var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	infoColor    = color.New(color.FgWhite)
	dimColor     = color.New(color.FgHiBlack)
	boldColor    = color.New(color.Bold)
)

// Score thresholds match the web UI: excellent, good, fair, poor.
const (
	scoreExcellent = 80
	scoreGood      = 60
	scoreFair      = 40
)

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= scoreExcellent:
		return lipgloss.Color("42")
	case score >= scoreGood:
		return lipgloss.Color("51")
	case score >= scoreFair:
		return lipgloss.Color("214")
	default:
		return lipgloss.Color("196")
	}
}

func scoreBadge(score int) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(scoreColor(score)).
		Padding(0, 1).
		Render(fmt.Sprintf("%d/100", score))
}

// printReport writes report in the chosen format. result is set for
// repository reviews and adds the branch details.
func printReport(w io.Writer, format reportFormat, title string, report *core.ReviewReport, result *core.RepoReviewResult) error {
	var payload any = report
	if result != nil {
		payload = result
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(payload); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case formatMarkdown:
		md := reportMarkdown(title, report, result)
		if !isTerminal(os.Stdout) {
			_, err := io.WriteString(w, md)
			return err
		}
		rendered, err := glamour.Render(md, "dark")
		if err != nil {
			return fmt.Errorf("failed to render markdown: %w", err)
		}
		_, err = io.WriteString(w, rendered)
		return err
	default:
		printText(w, title, report, result)
		return nil
	}
}

func reportMarkdown(title string, report *core.ReviewReport, result *core.RepoReviewResult) string {
	language := review.InferLanguage(title)
	var b strings.Builder

	fmt.Fprintf(&b, "# Review: %s\n\n", title)
	fmt.Fprintf(&b, "**Score:** %d/100 · **Severity:** %s\n\n", report.Score, report.Severity)
	if result != nil {
		fmt.Fprintf(&b, "> %s\n\n", result.Message)
	}
	fmt.Fprintf(&b, "%s\n\n", report.Summary)

	fmt.Fprintf(&b, "## Issues (%d)\n\n", len(report.Issues))
	if len(report.Issues) == 0 {
		b.WriteString("No issues found.\n\n")
	}
	for _, issue := range report.Issues {
		fmt.Fprintf(&b, "### [%s] %s\n\n", issue.Severity, issue.Title)
		fmt.Fprintf(&b, "*Category:* %s\n\n", issue.Category)
		fmt.Fprintf(&b, "%s\n\n", issue.Description)
		if issue.Suggestion != "" {
			fmt.Fprintf(&b, "**Suggestion:** %s\n\n", issue.Suggestion)
		}
	}

	b.WriteString("## Complexity\n\n")
	fmt.Fprintf(&b, "- Time: `%s`\n- Space: `%s`\n\n", report.Complexity.Time, report.Complexity.Space)
	if report.Complexity.Analysis != "" {
		fmt.Fprintf(&b, "%s\n\n", report.Complexity.Analysis)
	}

	b.WriteString("## Optimized code\n\n")
	fmt.Fprintf(&b, "```%s\n%s\n```\n", strings.ToLower(language), strings.TrimRight(report.OptimizedCode, "\n"))
	return b.String()
}

func printText(w io.Writer, title string, report *core.ReviewReport, result *core.RepoReviewResult) {
	separator := strings.Repeat("═", 60)
	thinSeparator := strings.Repeat("─", 60)

	fmt.Fprintln(w)
	titleColor.Fprintln(w, separator)
	titleColor.Fprintf(w, "REVIEW  %s\n", title)
	titleColor.Fprintln(w, separator)
	fmt.Fprintf(w, "\n%s  ", scoreBadge(report.Score))
	printSeverityBadge(w, report.Severity)
	fmt.Fprintln(w)
	fmt.Fprintln(w)
	infoColor.Fprintln(w, report.Summary)

	if result != nil {
		fmt.Fprintln(w)
		successColor.Fprintln(w, result.Message)
	}

	fmt.Fprintln(w)
	dimColor.Fprintln(w, thinSeparator)
	boldColor.Fprintf(w, "ISSUES (%d)\n", len(report.Issues))
	dimColor.Fprintln(w, thinSeparator)
	if len(report.Issues) == 0 {
		successColor.Fprintln(w, "No issues found!")
	}
	for _, issue := range report.Issues {
		fmt.Fprintln(w)
		printSeverityBadge(w, issue.Severity)
		boldColor.Fprintf(w, " %s\n", issue.Title)
		dimColor.Fprintf(w, "   Category: %s\n", issue.Category)
		infoColor.Fprintf(w, "   %s\n", issue.Description)
		if issue.Suggestion != "" {
			successColor.Fprintf(w, "   → %s\n", issue.Suggestion)
		}
	}

	fmt.Fprintln(w)
	dimColor.Fprintln(w, thinSeparator)
	boldColor.Fprintln(w, "COMPLEXITY")
	dimColor.Fprintln(w, thinSeparator)
	fmt.Fprintf(w, "Time: %s   Space: %s\n", report.Complexity.Time, report.Complexity.Space)
	if report.Complexity.Analysis != "" {
		dimColor.Fprintln(w, report.Complexity.Analysis)
	}

	fmt.Fprintln(w)
	dimColor.Fprintln(w, thinSeparator)
	boldColor.Fprintln(w, "OPTIMIZED CODE")
	dimColor.Fprintln(w, thinSeparator)
	printCode(w, report.OptimizedCode, review.InferLanguage(title))
	fmt.Fprintln(w)
}

// printCode highlights code for terminals and prints it unchanged otherwise.
func printCode(w io.Writer, code, language string) {
	if color.NoColor {
		fmt.Fprintln(w, code)
		return
	}
	if err := quick.Highlight(w, code, strings.ToLower(language), "terminal256", "dracula"); err != nil {
		fmt.Fprintln(w, code)
		return
	}
	fmt.Fprintln(w)
}

func printSeverityBadge(w io.Writer, severity string) {
	switch severity {
	case core.SeverityCritical:
		color.New(color.BgRed, color.FgWhite, color.Bold).Fprintf(w, " %s ", severity)
	case core.SeverityMajor:
		color.New(color.BgHiRed, color.FgWhite).Fprintf(w, " %s ", severity)
	case core.SeverityMinor:
		color.New(color.BgYellow, color.FgBlack).Fprintf(w, " %s ", severity)
	case core.SeverityClean:
		color.New(color.BgGreen, color.FgWhite).Fprintf(w, " %s ", severity)
	default:
		color.New(color.BgWhite, color.FgBlack).Fprintf(w, " %s ", severity)
	}
}
