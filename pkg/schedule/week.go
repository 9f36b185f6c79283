package schedule

import "time"

// StartOfDay returns midnight of t's calendar day in t's location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether t falls on ref's calendar day, read in ref's location
func SameDay(t, ref time.Time) bool {
	t = t.In(ref.Location())
	y1, m1, d1 := t.Date()
	y2, m2, d2 := ref.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// WeekBounds returns the half-open range [start, end) of the week containing ref.
// weekStart is the single week convention shared by filters and calendars.
func WeekBounds(ref time.Time, weekStart time.Weekday) (time.Time, time.Time) {
	day := StartOfDay(ref)
	back := (int(day.Weekday()) - int(weekStart) + 7) % 7
	start := day.AddDate(0, 0, -back)
	return start, start.AddDate(0, 0, 7)
}

// MonthBounds returns the half-open range [start, end) of ref's calendar month
func MonthBounds(ref time.Time) (time.Time, time.Time) {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return start, start.AddDate(0, 1, 0)
}

// Within reports whether t falls in [start, end)
func Within(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

// CalendarDays returns every day shown by a month calendar: whole weeks covering the month of ref
func CalendarDays(ref time.Time, weekStart time.Weekday) []time.Time {
	monthStart, monthEnd := MonthBounds(ref)
	first, _ := WeekBounds(monthStart, weekStart)
	_, last := WeekBounds(monthEnd.AddDate(0, 0, -1), weekStart)

	var days []time.Time
	for d := first; d.Before(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
