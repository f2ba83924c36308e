package cmd

import (
	"strings"
	"testing"
)

func TestHandleFreeCommand_WorkdayHours(t *testing.T) {
	stdout, _, _ := setupTest(t, "exc monday <09:00:00 >17:00:00\n")

	// Single Monday
	handleFreeCommand([]string{"2024-01-01", "to", "2024-01-01"})

	output := stdout.String()
	if !strings.Contains(output, "Trackable time for") {
		t.Errorf("expected trackable time header, got: %s", output)
	}
	if !strings.Contains(output, "09:00:00 - 17:00:00") {
		t.Errorf("expected working hours in output, got: %s", output)
	}
	if !strings.Contains(output, "Total trackable: 8h") {
		t.Errorf("expected total of 8h, got: %s", output)
	}
}

func TestHandleFreeCommand_AdditiveDayRestored(t *testing.T) {
	stdout, _, _ := setupTest(t,
		"exc saturday >00:00:00\nexc sunday >00:00:00\nexc day on 2024-01-06\n")

	// Week of Monday 2024-01-01; Saturday the 6th is marked back on.
	handleFreeCommand([]string{"2024-01-01", "to", "2024-01-07"})

	output := stdout.String()
	// Five weekdays plus the restored Saturday
	if !strings.Contains(output, "Total trackable: 144h") {
		t.Errorf("expected total of 144h, got: %s", output)
	}
}

func TestHandleFreeCommand_NoRules(t *testing.T) {
	stdout, _, _ := setupTest(t, "")

	handleFreeCommand([]string{"2024-01-01", "to", "2024-01-01"})

	output := stdout.String()
	if !strings.Contains(output, "Total trackable: 24h") {
		t.Errorf("expected the whole window to be trackable, got: %s", output)
	}
}

func TestHandleFreeCommand_FullyExcludedWindow(t *testing.T) {
	stdout, _, _ := setupTest(t, "exc day off 2024-01-01\n")

	handleFreeCommand([]string{"2024-01-01", "to", "2024-01-01"})

	if !strings.Contains(stdout.String(), "No trackable time for") {
		t.Errorf("expected empty result message, got: %s", stdout.String())
	}
}

func TestHandleFreeCommand_MalformedBlock(t *testing.T) {
	_, stderr, exitCalled := setupTest(t, "exc monday 9-17\n")

	handleFreeCommand([]string{"2024-01-01", "to", "2024-01-07"})

	if !*exitCalled {
		t.Error("expected exit to be called for malformed time block")
	}
	if !strings.Contains(stderr.String(), "Failed to expand exclusion rules") {
		t.Errorf("expected expansion failure message, got: %s", stderr.String())
	}
}
