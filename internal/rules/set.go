package rules

import (
	"fmt"

	"offtime/internal/exclusion"
	"offtime/internal/interval"
)

// Set is an ordered collection of exclusion rules, typically the contents
// of one rules file.
type Set struct {
	Rules []exclusion.Rule
}

// NewSet creates a Set from already-parsed rules.
func NewSet(parsed []exclusion.Rule) *Set {
	return &Set{Rules: parsed}
}

// Excluded returns the merged excluded intervals within the window: the
// union of every non-additive rule's expansion, with the days reinstated
// by additive "day on" rules punched back out.
func (s *Set) Excluded(window interval.Interval) ([]interval.Interval, error) {
	var removed, restored []interval.Interval

	for i := range s.Rules {
		rule := &s.Rules[i]
		spans, err := rule.Ranges(window)
		if err != nil {
			return nil, fmt.Errorf("rule '%s': %w", rule.Serialize(), err)
		}
		if rule.Additive() {
			restored = append(restored, spans...)
		} else {
			removed = append(removed, spans...)
		}
	}

	merged := interval.Merge(removed)
	if len(restored) == 0 {
		return merged, nil
	}

	excluded := []interval.Interval{}
	for _, iv := range merged {
		excluded = append(excluded, interval.Subtract(iv, restored)...)
	}
	return excluded, nil
}

// Trackable returns the portions of the window not excluded by the set.
func (s *Set) Trackable(window interval.Interval) ([]interval.Interval, error) {
	excluded, err := s.Excluded(window)
	if err != nil {
		return nil, err
	}
	return interval.Subtract(window, excluded), nil
}
