package day

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	// 2025-03-05 is a Wednesday.
	now := time.Date(2025, time.March, 5, 9, 0, 0, 0, time.UTC)
	cases := map[string]Key{
		"monday":  Monday,
		"Tuesday": Tuesday,
		" wed ":   Wednesday,
		"THU":     Thursday,
		"fri":     Friday,
		"sat":     Saturday,
		"sun":     Sunday,
		"today":   Wednesday,
	}
	for in, want := range cases {
		got, err := Parse(in, now)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("parse %q: expected %s, got %s", in, want, got)
		}
	}

	if _, err := Parse("someday", now); err == nil {
		t.Fatal("expected error for unknown day")
	}
}

func TestFromWeekday(t *testing.T) {
	if got := FromWeekday(time.Sunday); got != Sunday {
		t.Fatalf("expected sunday, got %s", got)
	}
	if got := FromWeekday(time.Monday); got != Monday {
		t.Fatalf("expected monday, got %s", got)
	}
}

func TestKeyHelpers(t *testing.T) {
	if Monday.Title() != "Monday" || Friday.Short() != "Fri" {
		t.Fatalf("unexpected names %q %q", Monday.Title(), Friday.Short())
	}
	if Key("funday").Valid() {
		t.Fatal("funday should not be valid")
	}
	if Sunday.Index() != 6 {
		t.Fatalf("expected sunday index 6, got %d", Sunday.Index())
	}
	days := All()
	days[0] = "mutated"
	if All()[0] != Monday {
		t.Fatal("All must return a copy")
	}
}
