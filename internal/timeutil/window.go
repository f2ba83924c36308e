package timeutil

import "time"

// StartOfDay returns midnight (00:00:00) of the given day in the same timezone
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NextDay returns the same instant one calendar day later.
// Uses calendar arithmetic, so DST transitions keep the wall-clock time.
func NextDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1)
}

// StartOfWeek returns midnight of the first day of the week containing t,
// where weekStart selects which weekday opens the week (Monday or Sunday).
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	offset := (int(t.Weekday()) - int(weekStart) + 7) % 7
	return StartOfDay(t).AddDate(0, 0, -offset)
}

// Today returns the half-open window [midnight today, midnight tomorrow).
func Today() (start, end time.Time) {
	start = StartOfDay(time.Now())
	return start, NextDay(start)
}

// ThisWeek returns the half-open window covering the current week,
// [week start, week start + 7 days).
func ThisWeek(weekStart time.Weekday) (start, end time.Time) {
	start = StartOfWeek(time.Now(), weekStart)
	return start, start.AddDate(0, 0, 7)
}

// WeekOf returns the half-open week window containing t.
func WeekOf(t time.Time, weekStart time.Weekday) (start, end time.Time) {
	start = StartOfWeek(t, weekStart)
	return start, start.AddDate(0, 0, 7)
}
