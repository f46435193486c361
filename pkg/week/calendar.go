package week

import (
	"time"

	"tableflip.dev/weekly/pkg/day"
)

const layoutLabel = "Jan 2"

// Dates holds the calendar date of each day, Monday first, at local midnight.
type Dates [7]time.Time

// Current returns the Monday..Sunday dates of the week containing now.
func Current(now time.Time) Dates {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// Sunday is weekday 0; step back to Monday.
	back := (int(now.Weekday()) + 6) % 7
	monday := midnight.AddDate(0, 0, -back)

	var dates Dates
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i)
	}
	return dates
}

// Date returns the calendar date of d.
func (ds Dates) Date(d day.Key) time.Time {
	i := d.Index()
	if i < 0 {
		return time.Time{}
	}
	return ds[i]
}

// Monday is the first date of the week.
func (ds Dates) Monday() time.Time {
	return ds[0]
}

// Today returns the day key whose date is today, if now falls in this week.
func (ds Dates) Today(now time.Time) (day.Key, bool) {
	for i, date := range ds {
		if IsToday(date, now) {
			return day.All()[i], true
		}
	}
	return "", false
}

// IsToday compares calendar days, ignoring the time of day.
func IsToday(date, now time.Time) bool {
	date = date.In(now.Location())
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Label formats a date for a day header, "Mar 3".
func Label(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(layoutLabel)
}
