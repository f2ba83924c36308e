package interval

import (
	"testing"
	"time"
)

func at(hour int) time.Time {
	return time.Date(2024, time.January, 1, hour, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{
			name: "partial overlap",
			a:    New(at(9), at(12)),
			b:    New(at(11), at(14)),
			want: true,
		},
		{
			name: "containment",
			a:    New(at(9), at(17)),
			b:    New(at(12), at(13)),
			want: true,
		},
		{
			name: "identical",
			a:    New(at(9), at(17)),
			b:    New(at(9), at(17)),
			want: true,
		},
		{
			name: "touching endpoints do not overlap",
			a:    New(at(9), at(12)),
			b:    New(at(12), at(14)),
			want: false,
		},
		{
			name: "disjoint",
			a:    New(at(9), at(10)),
			b:    New(at(14), at(15)),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, expected %v", got, tt.want)
			}
			// Overlap is symmetric
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("reverse Overlaps = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	iv := New(at(9), at(17))

	if !iv.Contains(at(9)) {
		t.Error("start should be contained (inclusive)")
	}
	if iv.Contains(at(17)) {
		t.Error("end should not be contained (exclusive)")
	}
	if !iv.Contains(at(12)) {
		t.Error("midpoint should be contained")
	}
	if iv.Contains(at(8)) {
		t.Error("instant before start should not be contained")
	}
}

func TestIsEmpty(t *testing.T) {
	if !New(at(9), at(9)).IsEmpty() {
		t.Error("zero-length interval should be empty")
	}
	if !New(at(17), at(9)).IsEmpty() {
		t.Error("inverted interval should be empty")
	}
	if New(at(9), at(10)).IsEmpty() {
		t.Error("non-degenerate interval should not be empty")
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name  string
		input []Interval
		want  []Interval
	}{
		{
			name:  "empty input",
			input: nil,
			want:  []Interval{},
		},
		{
			name:  "disjoint stay separate",
			input: []Interval{New(at(14), at(15)), New(at(9), at(10))},
			want:  []Interval{New(at(9), at(10)), New(at(14), at(15))},
		},
		{
			name:  "overlapping coalesce",
			input: []Interval{New(at(9), at(12)), New(at(11), at(14))},
			want:  []Interval{New(at(9), at(14))},
		},
		{
			name:  "touching coalesce",
			input: []Interval{New(at(9), at(12)), New(at(12), at(14))},
			want:  []Interval{New(at(9), at(14))},
		},
		{
			name:  "empty spans dropped",
			input: []Interval{New(at(9), at(9)), New(at(10), at(11))},
			want:  []Interval{New(at(10), at(11))},
		},
		{
			name:  "contained span absorbed",
			input: []Interval{New(at(9), at(17)), New(at(10), at(11))},
			want:  []Interval{New(at(9), at(17))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.input)
			assertIntervals(t, got, tt.want)
		})
	}
}

func TestSubtract(t *testing.T) {
	day := New(at(0), at(24))

	tests := []struct {
		name  string
		spans []Interval
		want  []Interval
	}{
		{
			name:  "nothing removed",
			spans: nil,
			want:  []Interval{day},
		},
		{
			name:  "hole in the middle",
			spans: []Interval{New(at(9), at(17))},
			want:  []Interval{New(at(0), at(9)), New(at(17), at(24))},
		},
		{
			name:  "removal clipped at window start",
			spans: []Interval{New(at(-3), at(6))},
			want:  []Interval{New(at(6), at(24))},
		},
		{
			name:  "removal past window end",
			spans: []Interval{New(at(20), at(30))},
			want:  []Interval{New(at(0), at(20))},
		},
		{
			name:  "entire window removed",
			spans: []Interval{New(at(-1), at(25))},
			want:  []Interval{},
		},
		{
			name:  "two holes",
			spans: []Interval{New(at(12), at(13)), New(at(6), at(7))},
			want: []Interval{
				New(at(0), at(6)),
				New(at(7), at(12)),
				New(at(13), at(24)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Subtract(day, tt.spans)
			assertIntervals(t, got, tt.want)
		})
	}
}

func assertIntervals(t *testing.T, got, want []Interval) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d intervals, expected %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if !got[i].Start.Equal(want[i].Start) || !got[i].End.Equal(want[i].End) {
			t.Errorf("interval %d = %v, expected %v", i, got[i], want[i])
		}
	}
}
