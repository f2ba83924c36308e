// Package interval provides the half-open time interval primitive used for
// exclusion windows and expansion results.
package interval

import (
	"fmt"
	"sort"
	"time"
)

// Interval represents a half-open time span [Start, End).
// Start is inclusive, End is exclusive.
type Interval struct {
	Start time.Time
	End   time.Time
}

// New creates a new Interval spanning [start, end).
func New(start, end time.Time) Interval {
	return Interval{Start: start, End: end}
}

// Overlaps reports whether the two intervals intersect in a non-empty way.
// Touching endpoints do not overlap (End is exclusive).
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Contains reports whether t falls within the interval.
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}

// Duration returns the length of the interval. Negative for inverted intervals.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// IsEmpty reports whether the interval covers no time at all.
func (iv Interval) IsEmpty() bool {
	return !iv.Start.Before(iv.End)
}

// String returns a human-readable representation of the interval.
func (iv Interval) String() string {
	return fmt.Sprintf("%s - %s", iv.Start.Format(time.RFC3339), iv.End.Format(time.RFC3339))
}

// Merge sorts the given intervals by start time and coalesces overlapping or
// touching spans into a minimal covering set. Empty intervals are dropped.
func Merge(intervals []Interval) []Interval {
	spans := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if !iv.IsEmpty() {
			spans = append(spans, iv)
		}
	}
	if len(spans) == 0 {
		return spans
	}

	sort.Slice(spans, func(i, j int) bool {
		return spans[i].Start.Before(spans[j].Start)
	})

	merged := spans[:1]
	for _, iv := range spans[1:] {
		last := &merged[len(merged)-1]
		if !iv.Start.After(last.End) {
			if iv.End.After(last.End) {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// Subtract removes the given spans from window and returns what remains,
// in increasing order. The spans need not be sorted or disjoint.
func Subtract(window Interval, spans []Interval) []Interval {
	remaining := []Interval{}
	if window.IsEmpty() {
		return remaining
	}

	cursor := window.Start
	for _, iv := range Merge(spans) {
		if !iv.End.After(cursor) {
			continue
		}
		if !iv.Start.Before(window.End) {
			break
		}
		if iv.Start.After(cursor) {
			remaining = append(remaining, Interval{Start: cursor, End: iv.Start})
		}
		cursor = iv.End
	}
	if cursor.Before(window.End) {
		remaining = append(remaining, Interval{Start: cursor, End: window.End})
	}
	return remaining
}
