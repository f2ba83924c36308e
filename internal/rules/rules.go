// Package rules loads exclusion rules from the rules file and combines
// them into excluded and trackable time for a query window.
package rules

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"offtime/internal/exclusion"
	"offtime/internal/osutil"
)

const (
	// AppName is the application name used for the config directory
	AppName = "offtime"
	// RulesFile is the name of the plain-text rules file
	RulesFile = "rules.conf"
)

// ParseWarning describes a rule line that failed to parse.
type ParseWarning struct {
	LineNumber int    // Line number in the file (1-indexed)
	Content    string // Raw content of the offending line
	Error      string // Description of the parsing error
}

// ScanResult contains the rules that parsed successfully along with
// warnings about every line that did not.
type ScanResult struct {
	Rules    []exclusion.Rule
	Warnings []ParseWarning
}

// GetRulesPath returns the path to the rules file.
// Uses the XDG-compliant user config directory and creates the
// application directory if it doesn't exist.
func GetRulesPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)
	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, RulesFile), nil
}

// skippable reports whether a line carries no rule: blank lines and
// '#' comments.
func skippable(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}

// Load reads all exclusion rules from the rules file, aborting on the
// first malformed line with the line number attached. A missing file is
// not an error; it yields an empty rule set.
func Load(path string) ([]exclusion.Rule, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []exclusion.Rule{}, nil
		}
		return nil, err
	}
	defer func() { _ = file.Close() }()

	loaded := []exclusion.Rule{}
	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if skippable(line) {
			continue
		}

		rule, err := exclusion.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		loaded = append(loaded, rule)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return loaded, nil
}

// Scan reads the rules file like Load but collects a warning for every
// malformed line instead of aborting, so the whole file can be reported on.
func Scan(path string) (ScanResult, error) {
	result := ScanResult{
		Rules:    []exclusion.Rule{},
		Warnings: []ParseWarning{},
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return result, err
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if skippable(line) {
			continue
		}

		rule, err := exclusion.Parse(line)
		if err != nil {
			result.Warnings = append(result.Warnings, ParseWarning{
				LineNumber: lineNumber,
				Content:    line,
				Error:      err.Error(),
			})
			continue
		}
		result.Rules = append(result.Rules, rule)
	}

	if err := scanner.Err(); err != nil {
		return result, err
	}
	return result, nil
}

// Append serializes a rule and appends it to the rules file.
// Creates the file if it doesn't exist.
func Append(path string, rule exclusion.Rule) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	_, err = file.WriteString(rule.Serialize() + "\n")
	return err
}

// FileHealth contains information about the health status of the rules file.
type FileHealth struct {
	TotalLines int            // Total number of lines in the file
	ValidRules int            // Number of successfully parsed rules
	BadLines   int            // Number of malformed rule lines
	Warnings   []ParseWarning // Detailed information about each malformed line
}

// Check analyzes the rules file and returns health status information.
// Returns empty health status if the file doesn't exist.
func Check(path string) (FileHealth, error) {
	health := FileHealth{Warnings: []ParseWarning{}}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return health, nil
		}
		return health, err
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		health.TotalLines++
	}
	if err := scanner.Err(); err != nil {
		return health, err
	}

	result, err := Scan(path)
	if err != nil {
		return health, err
	}

	health.ValidRules = len(result.Rules)
	health.BadLines = len(result.Warnings)
	health.Warnings = result.Warnings
	return health, nil
}
