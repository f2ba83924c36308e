// Package exclusion implements exclusion rules: declarative statements
// describing periods that are never trackable work time, such as holidays,
// weekends, evenings and lunch.
//
// Syntax, one rule per line:
//
//	exc <weekday> <block> [<block> ...]
//	exc day on <date>
//	exc day off <date>
//
// where a block is <HH:MM:SS, >HH:MM:SS, or HH:MM:SS-HH:MM:SS.
package exclusion

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"offtime/internal/interval"
	"offtime/internal/timeutil"
)

// Errors reported by rule parsing and expansion. Both abort the operation
// that raised them; a failed Initialize leaves the rule unpopulated.
var (
	ErrUnrecognizedSyntax = errors.New("unrecognized exclusion syntax")
	ErrMalformedTimeBlock = errors.New("malformed time block")
)

// Rule is a single parsed exclusion rule. The zero value is unpopulated;
// call Initialize once to populate it. A populated rule is immutable and
// safe for concurrent reads.
type Rule struct {
	tokens   []string
	additive bool
}

// Parse is a convenience wrapper that initializes a new rule from one line.
func Parse(line string) (Rule, error) {
	var r Rule
	if err := r.Initialize(line); err != nil {
		return Rule{}, err
	}
	return r, nil
}

// Initialize validates one rule line and populates the rule. Only the syntax
// is validated here; time-block tokens on weekday rules are checked when the
// rule is expanded. On failure the rule is left untouched and the error wraps
// ErrUnrecognizedSyntax with the offending line.
func (r *Rule) Initialize(line string) error {
	tokens := strings.Fields(line)

	if len(tokens) >= 2 && tokens[0] == "exc" {
		if len(tokens) == 4 && tokens[1] == "day" && tokens[2] == "on" {
			r.tokens = tokens
			r.additive = true
			return nil
		}
		if len(tokens) == 4 && tokens[1] == "day" && tokens[2] == "off" {
			r.tokens = tokens
			r.additive = false
			return nil
		}
		if timeutil.DayOfWeek(tokens[1]) != -1 {
			r.tokens = tokens
			r.additive = false
			return nil
		}
	}

	return fmt.Errorf("%w: '%s'", ErrUnrecognizedSyntax, line)
}

// Ranges expands the rule within the query window and returns the concrete
// intervals it covers there, possibly none.
//
//	exc <weekday> <block> [...]  --> one interval per block, for every
//	                                 matching weekday inside the window
//	exc day on <date>            --> the single day, if inside the window
//	exc day off <date>           --> the single day, if inside the window
//
// Expansion is a pure function of the rule's tokens and the window.
func (r *Rule) Ranges(window interval.Interval) ([]interval.Interval, error) {
	results := []interval.Interval{}

	if r.tokens[1] == "day" && (r.tokens[2] == "on" || r.tokens[2] == "off") {
		start, err := timeutil.ParseDate(r.tokens[3])
		if err != nil {
			return nil, err
		}
		day := interval.New(start, timeutil.NextDay(start))
		if window.Overlaps(day) {
			results = append(results, day)
		}
		return results, nil
	}

	if target := timeutil.DayOfWeek(r.tokens[1]); target != -1 {
		for day := window.Start; day.Before(window.End); day = timeutil.NextDay(day) {
			if int(day.Weekday()) != target {
				continue
			}
			dayEnd := timeutil.NextDay(day)
			for _, block := range r.tokens[2:] {
				iv, err := rangeFromTimeBlock(block, day, dayEnd)
				if err != nil {
					return nil, err
				}
				results = append(results, iv)
			}
		}
	}

	return results, nil
}

// Tokens returns a copy of the whitespace-split words of the original
// rule line.
func (r *Rule) Tokens() []string {
	return slices.Clone(r.tokens)
}

// Additive reports whether this rule adds back trackable time ("day on")
// rather than removing it.
func (r *Rule) Additive() bool {
	return r.additive
}

// Serialize reconstructs the rule line for persistence round-trips.
func (r *Rule) Serialize() string {
	return strings.Join(r.tokens, " ")
}

// Dump returns a diagnostic line describing the rule.
func (r *Rule) Dump() string {
	return "Exclusion " + strings.Join(r.tokens, " ") + "\n"
}
