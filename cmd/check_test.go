package cmd

import (
	"strings"
	"testing"
)

func TestCheckRulesFile_Healthy(t *testing.T) {
	stdout, _, exitCalled := setupTest(t, "# comment\nexc monday <09:00:00\nexc day off 2024-12-25\n")

	checkRulesFile()

	output := stdout.String()
	if !strings.Contains(output, "Valid rules:     2") {
		t.Errorf("expected 2 valid rules, got: %s", output)
	}
	if !strings.Contains(output, "Rules file is healthy") {
		t.Errorf("expected healthy status, got: %s", output)
	}
	if *exitCalled {
		t.Error("expected no exit for a healthy file")
	}
}

func TestCheckRulesFile_MalformedLines(t *testing.T) {
	stdout, stderr, exitCalled := setupTest(t, "exc monday <09:00:00\nbogus line\n")

	checkRulesFile()

	if !strings.Contains(stdout.String(), "Malformed lines: 1") {
		t.Errorf("expected malformed line count, got: %s", stdout.String())
	}
	if !strings.Contains(stdout.String(), "Line 2: bogus line") {
		t.Errorf("expected line detail, got: %s", stdout.String())
	}
	if !strings.Contains(stderr.String(), "1 malformed line(s)") {
		t.Errorf("expected unhealthy status on stderr, got: %s", stderr.String())
	}
	if !*exitCalled {
		t.Error("expected exit for an unhealthy file")
	}
}

func TestCheckRulesFile_MissingFile(t *testing.T) {
	stdout, _, exitCalled := setupTest(t, "")

	checkRulesFile()

	if !strings.Contains(stdout.String(), "Rules file is healthy") {
		t.Errorf("expected healthy status for missing file, got: %s", stdout.String())
	}
	if *exitCalled {
		t.Error("expected no exit for a missing file")
	}
}
