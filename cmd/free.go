package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// freeCmd represents the free command
var freeCmd = &cobra.Command{
	Use:   "free [from <start-date> to <end-date>]",
	Short: "Show trackable time for a window",
	Long: `Show the portions of a window that remain trackable once the exclusion
rules are applied. Additive "day on" rules restore days that a recurring
rule would otherwise exclude.

With no arguments the current week is shown.

Examples:
  offtime free                                  Trackable time for this week
  offtime free from 2024-01-01 to 2024-01-07    Trackable time for a custom window`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleFreeCommand(args)
	},
}

func init() {
	rootCmd.AddCommand(freeCmd)
}

// handleFreeCommand resolves the query window and lists trackable intervals
func handleFreeCommand(args []string) {
	cfg, ok := loadConfig()
	if !ok {
		return
	}
	window, period, ok := resolveWindow(args, cfg)
	if !ok {
		return
	}

	set, ok := loadRuleSet(cfg)
	if !ok {
		return
	}

	trackable, err := set.Trackable(window)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to expand exclusion rules")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Time blocks must look like <09:00:00, >17:00:00 or 12:00:00-13:00:00")
		deps.Exit(1)
		return
	}

	if len(trackable) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No trackable time for %s\n", period)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Trackable time for %s:\n", period)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	var total time.Duration
	for _, iv := range trackable {
		total += iv.Duration()
		_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", formatSpan(iv))
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Total trackable: %s\n", formatDuration(total))
}
