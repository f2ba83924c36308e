package cmd

import (
	"fmt"
	"strings"
	"time"

	"offtime/internal/config"
	"offtime/internal/interval"
	"offtime/internal/timeutil"
)

// resolveWindow turns command arguments into a query window.
//
// With no arguments the current week is used. Otherwise the arguments must
// have the shape "<start-date> to <end-date>" (the leading "from" is the
// command name itself or optional). The end date is inclusive, so the
// returned window extends to midnight after it.
func resolveWindow(args []string, cfg config.Config) (interval.Interval, string, bool) {
	if len(args) == 0 {
		start, end := weekWindow(cfg)
		return interval.New(start, end), "this week", true
	}

	// Tolerate an explicit leading "from"
	if strings.EqualFold(args[0], "from") {
		args = args[1:]
	}

	// Find "to" keyword in arguments
	toIndex := -1
	for i, arg := range args {
		if strings.EqualFold(arg, "to") {
			toIndex = i
			break
		}
	}

	if toIndex == -1 {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Missing 'to' keyword in date range")
		_, _ = fmt.Fprintln(deps.Stderr, "Usage: offtime show from <start-date> to <end-date>")
		_, _ = fmt.Fprintln(deps.Stderr, "Example: offtime show from 2024-01-01 to 2024-01-31")
		deps.Exit(1)
		return interval.Interval{}, "", false
	}

	if toIndex == 0 {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Missing start date")
		_, _ = fmt.Fprintln(deps.Stderr, "Usage: offtime show from <start-date> to <end-date>")
		deps.Exit(1)
		return interval.Interval{}, "", false
	}

	if toIndex >= len(args)-1 {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Missing end date")
		_, _ = fmt.Fprintln(deps.Stderr, "Usage: offtime show from <start-date> to <end-date>")
		deps.Exit(1)
		return interval.Interval{}, "", false
	}

	startDateStr := strings.TrimSpace(strings.Join(args[:toIndex], " "))
	endDateStr := strings.TrimSpace(strings.Join(args[toIndex+1:], " "))

	startDate, err := timeutil.ParseDate(startDateStr)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid start date '%s'\n", startDateStr)
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use format YYYY-MM-DD or DD/MM/YYYY")
		deps.Exit(1)
		return interval.Interval{}, "", false
	}

	endDate, err := timeutil.ParseDate(endDateStr)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid end date '%s'\n", endDateStr)
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use format YYYY-MM-DD or DD/MM/YYYY")
		deps.Exit(1)
		return interval.Interval{}, "", false
	}

	if startDate.After(endDate) {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Start date (%s) is after end date (%s)\n",
			startDate.Format("2006-01-02"),
			endDate.Format("2006-01-02"))
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Ensure start date comes before or equals end date")
		deps.Exit(1)
		return interval.Interval{}, "", false
	}

	window := interval.New(startDate, timeutil.NextDay(endDate))
	return window, formatWindowForDisplay(startDate, endDate), true
}

// formatWindowForDisplay describes a date range for headers, collapsing
// single-day ranges to one date.
func formatWindowForDisplay(startDate, endDate time.Time) string {
	if startDate.Equal(endDate) {
		return startDate.Format("Mon, Jan 2, 2006")
	}
	return fmt.Sprintf("%s to %s",
		startDate.Format("Mon, Jan 2, 2006"),
		endDate.Format("Mon, Jan 2, 2006"))
}
