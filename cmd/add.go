package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"offtime/internal/exclusion"
	"offtime/internal/interval"
	"offtime/internal/rules"
	"offtime/internal/timeutil"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add exc <words>...",
	Short: "Add an exclusion rule to the rules file",
	Long: `Validate an exclusion rule and append it to the rules file.

The rule is given as arguments, exactly as it would appear in the file.
Quote time blocks starting with < or > so the shell doesn't redirect:

  offtime add exc monday '<09:00:00' '>17:00:00'
  offtime add exc saturday '>00:00:00'
  offtime add exc day off 2024-12-25
  offtime add exc day on 2024-12-28

The rule's time blocks and dates are verified before anything is written.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handleAddCommand(args)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}

// handleAddCommand validates a rule line and appends it to the rules file
func handleAddCommand(args []string) {
	line := strings.Join(args, " ")

	rule, err := exclusion.Parse(line)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid rule '%s'\n", line)
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Valid forms are 'exc <weekday> <block>...', 'exc day on <date>', 'exc day off <date>'")
		deps.Exit(1)
		return
	}

	// Rule syntax alone doesn't cover block tokens or dates; expand over a
	// sample week so bad tokens surface now instead of at query time.
	now := time.Now()
	probe := interval.New(timeutil.StartOfDay(now), timeutil.StartOfDay(now).AddDate(0, 0, 7))
	if _, err := rule.Ranges(probe); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid rule '%s'\n", line)
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Time blocks must look like <09:00:00, >17:00:00 or 12:00:00-13:00:00")
		deps.Exit(1)
		return
	}

	cfg, ok := loadConfig()
	if !ok {
		return
	}
	path, ok := resolveRulesPath(cfg)
	if !ok {
		return
	}

	if err := rules.Append(path, rule); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to save rule to the rules file")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that the file is writable: %s\n", path)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Added: %s\n", rule.Serialize())
}
