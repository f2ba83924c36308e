package timeutil

import "strings"

// weekdayNames is indexed by time.Weekday order: Sunday == 0.
var weekdayNames = []string{
	"sunday",
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
}

// DayOfWeek resolves a weekday name to its index, 0 (Sunday) through
// 6 (Saturday). Names are matched case-insensitively and may be
// abbreviated to any unambiguous prefix of at least three characters
// ("mon", "thurs"). Returns -1 if the name is not a weekday.
func DayOfWeek(name string) int {
	lower := strings.ToLower(name)
	if len(lower) < 3 {
		return -1
	}
	for i, day := range weekdayNames {
		if strings.HasPrefix(day, lower) {
			return i
		}
	}
	return -1
}
