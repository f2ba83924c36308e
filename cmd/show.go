package cmd

import (
	"github.com/spf13/cobra"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [from <start-date> to <end-date>]",
	Short: "Show excluded time for a window",
	Long: `Show the concrete excluded intervals the rules produce within a window.

With no arguments the current week is shown. Supported date formats are
YYYY-MM-DD and DD/MM/YYYY; the end date is inclusive.

Examples:
  offtime show                                  Excluded time for this week
  offtime show from 2024-01-01 to 2024-01-31    Excluded time for January 2024
  offtime show 2024-03-15 to 2024-03-15         Excluded time for a single day`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleShowCommand(args)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

// handleShowCommand resolves the query window and lists excluded intervals
func handleShowCommand(args []string) {
	cfg, ok := loadConfig()
	if !ok {
		return
	}
	window, period, ok := resolveWindow(args, cfg)
	if !ok {
		return
	}
	listExcluded(period, window, cfg)
}
