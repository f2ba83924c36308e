package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"offtime/internal/config"
	"offtime/internal/interval"
	"offtime/internal/rules"
	"offtime/internal/timeutil"
)

var rootCmd = &cobra.Command{
	Use:   "offtime",
	Short: "Define and inspect untrackable time",
	Long: `offtime manages exclusion rules: declarative statements describing
periods that are never trackable work time, such as weekends, evenings,
lunch breaks and holidays.

Usage:
  offtime                                       Show today's excluded time
  offtime show [from <date> to <date>]          Show excluded time for a window
  offtime free [from <date> to <date>]          Show trackable time for a window
  offtime add exc monday '<09:00:00' '>17:00:00'  Add a rule to the rules file
  offtime rules                                 List the loaded rules
  offtime check                                 Check rules file health
  offtime tui                                   Browse excluded time interactively

Rule syntax, one rule per line in the rules file:
  exc <weekday> <block> [<block> ...]
  exc day on <date>
  exc day off <date>

where a block is <HH:MM:SS (before), >HH:MM:SS (after), or
HH:MM:SS-HH:MM:SS (explicit range), and a date is YYYY-MM-DD or DD/MM/YYYY.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, ok := loadConfig()
		if !ok {
			return
		}
		start, end := todayWindow(cfg)
		listExcluded("today", interval.New(start, end), cfg)
	},
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"offtime version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig loads the effective configuration, reporting failures to the
// user and exiting nonzero.
func loadConfig() (config.Config, bool) {
	configPath, err := deps.ConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return config.Config{}, false
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that your config file is valid TOML format: %s\n", configPath)
		deps.Exit(1)
		return config.Config{}, false
	}

	return cfg, true
}

// resolveRulesPath returns the rules file location, honoring the config
// override.
func resolveRulesPath(cfg config.Config) (string, bool) {
	if cfg.RulesPath != "" {
		return cfg.RulesPath, true
	}

	path, err := deps.RulesPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine rules file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return "", false
	}
	return path, true
}

// loadRuleSet reads the rules file into a Set, reporting failures to the
// user and exiting nonzero.
func loadRuleSet(cfg config.Config) (*rules.Set, bool) {
	path, ok := resolveRulesPath(cfg)
	if !ok {
		return nil, false
	}

	loaded, err := rules.Load(path)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load exclusion rules")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Run 'offtime check' to inspect the rules file: %s\n", path)
		deps.Exit(1)
		return nil, false
	}

	return rules.NewSet(loaded), true
}

// todayWindow returns the [midnight, midnight) window for the current day
// in the configured timezone.
func todayWindow(cfg config.Config) (time.Time, time.Time) {
	loc, _ := cfg.Location()
	start := timeutil.StartOfDay(time.Now().In(loc))
	return start, timeutil.NextDay(start)
}

// weekWindow returns the week window containing the current day in the
// configured timezone, honoring the configured week start.
func weekWindow(cfg config.Config) (time.Time, time.Time) {
	loc, _ := cfg.Location()
	return timeutil.WeekOf(time.Now().In(loc), cfg.WeekStart())
}

// listExcluded expands the rule set over the window and prints the merged
// excluded intervals.
func listExcluded(period string, window interval.Interval, cfg config.Config) {
	set, ok := loadRuleSet(cfg)
	if !ok {
		return
	}

	excluded, err := set.Excluded(window)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to expand exclusion rules")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Time blocks must look like <09:00:00, >17:00:00 or 12:00:00-13:00:00")
		deps.Exit(1)
		return
	}

	if len(excluded) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No excluded time for %s\n", period)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Excluded time for %s:\n", period)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	var total time.Duration
	for _, iv := range excluded {
		total += iv.Duration()
		_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", formatSpan(iv))
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Total excluded: %s\n", formatDuration(total))
}

// formatSpan renders one interval as a single display line.
func formatSpan(iv interval.Interval) string {
	sameDay := timeutil.StartOfDay(iv.Start).Equal(timeutil.StartOfDay(iv.End))
	endsAtMidnight := iv.End.Equal(timeutil.NextDay(timeutil.StartOfDay(iv.Start)))

	if sameDay || endsAtMidnight {
		return fmt.Sprintf("%s  %s - %s  (%s)",
			iv.Start.Format("Mon 2006-01-02"),
			iv.Start.Format("15:04:05"),
			iv.End.Format("15:04:05"),
			formatDuration(iv.Duration()))
	}
	return fmt.Sprintf("%s %s - %s %s  (%s)",
		iv.Start.Format("Mon 2006-01-02"),
		iv.Start.Format("15:04:05"),
		iv.End.Format("Mon 2006-01-02"),
		iv.End.Format("15:04:05"),
		formatDuration(iv.Duration()))
}

// formatDuration formats a duration as a human-readable string like
// "9h 30m" or "45m".
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}
