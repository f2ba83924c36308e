package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"offtime/internal/rules"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check rules file health",
	Long:  `Check the rules file and report on its health, including any malformed rule lines.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		checkRulesFile()
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkRulesFile reports the rules file health status
func checkRulesFile() {
	cfg, ok := loadConfig()
	if !ok {
		return
	}
	path, ok := resolveRulesPath(cfg)
	if !ok {
		return
	}

	health, err := rules.Check(path)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to check rules file: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Rules file: %s\n", path)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Total lines:     %d\n", health.TotalLines)
	_, _ = fmt.Fprintf(deps.Stdout, "Valid rules:     %d\n", health.ValidRules)
	_, _ = fmt.Fprintf(deps.Stdout, "Malformed lines: %d\n", health.BadLines)

	if len(health.Warnings) > 0 {
		_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
		_, _ = fmt.Fprintln(deps.Stdout, "Malformed lines:")
		for _, warning := range health.Warnings {
			_, _ = fmt.Fprintln(deps.Stdout, formatRuleWarning(warning))
		}
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	if health.BadLines == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: ✓ Rules file is healthy")
	} else {
		_, _ = fmt.Fprintf(deps.Stderr, "Status: ⚠ Rules file has %d malformed line(s)\n", health.BadLines)
		deps.Exit(1)
	}
}

// formatRuleWarning formats a ParseWarning into a human-readable string
// with line number, truncated content (max 50 chars), and error description.
func formatRuleWarning(warning rules.ParseWarning) string {
	content := warning.Content
	if len(content) > 50 {
		content = content[:47] + "..."
	}
	return fmt.Sprintf("  Line %d: %s (error: %s)", warning.LineNumber, content, warning.Error)
}
