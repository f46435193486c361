// Package day defines the seven fixed day keys that partition the week.
package day

import (
	"fmt"
	"strings"
	"time"
)

// Key identifies one bucket of the week.
type Key string

const (
	Monday    Key = "monday"
	Tuesday   Key = "tuesday"
	Wednesday Key = "wednesday"
	Thursday  Key = "thursday"
	Friday    Key = "friday"
	Saturday  Key = "saturday"
	Sunday    Key = "sunday"
)

var all = []Key{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// All returns the day keys in display order, Monday first.
func All() []Key {
	out := make([]Key, len(all))
	copy(out, all)
	return out
}

// Valid reports whether k is one of the seven day keys.
func (k Key) Valid() bool {
	return k.Index() >= 0
}

// Index is the zero based position of k in the week, or -1.
func (k Key) Index() int {
	for i, d := range all {
		if d == k {
			return i
		}
	}
	return -1
}

// Title is the capitalised day name, "Monday".
func (k Key) Title() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// Short is the three letter abbreviation, "Mon".
func (k Key) Short() string {
	t := k.Title()
	if len(t) < 3 {
		return t
	}
	return t[:3]
}

func (k Key) String() string {
	return string(k)
}

// FromWeekday maps a time.Weekday to its day key.
func FromWeekday(wd time.Weekday) Key {
	// time.Sunday is 0, the week starts on Monday.
	return all[(int(wd)+6)%7]
}

// Parse resolves a day name. It is case insensitive and accepts three letter
// aliases plus "today", which is resolved against now.
func Parse(s string, now time.Time) (Key, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "today" {
		return FromWeekday(now.Weekday()), nil
	}
	for _, d := range all {
		if v == string(d) || v == strings.ToLower(d.Short()) {
			return d, nil
		}
	}
	return "", fmt.Errorf("day: unknown day %q", s)
}

// Names lists the day keys as strings, handy for shell completion.
func Names() []string {
	out := make([]string, 0, len(all))
	for _, d := range all {
		out = append(out, string(d))
	}
	return out
}
