package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"offtime/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse excluded time interactively",
	Long: `Launch the interactive terminal UI: a week-by-week browser of the
excluded time your rules produce.

Keyboard shortcuts:
  - h/l or arrows: Previous/next week
  - t: Jump to the current week
  - ?: Toggle help
  - q: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// runTUI initializes and runs the TUI application
func runTUI() {
	cfg, ok := loadConfig()
	if !ok {
		return
	}
	set, ok := loadRuleSet(cfg)
	if !ok {
		return
	}

	if err := tui.Run(set, cfg); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
