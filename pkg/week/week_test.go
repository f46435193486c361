package week

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"tableflip.dev/weekly/pkg/day"
	"tableflip.dev/weekly/pkg/task"
)

func TestCurrentStartsOnMonday(t *testing.T) {
	// March 3 2025 is a Monday; walk every day of that week including Sunday.
	monday := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		now := monday.AddDate(0, 0, i).Add(15*time.Hour + 42*time.Minute)
		dates := Current(now)
		if !dates.Monday().Equal(monday) {
			t.Fatalf("%s: expected monday %v, got %v", now.Weekday(), monday, dates.Monday())
		}
		sunday := dates.Date(day.Sunday)
		if want := monday.AddDate(0, 0, 6); !sunday.Equal(want) {
			t.Fatalf("%s: expected sunday %v, got %v", now.Weekday(), want, sunday)
		}
		today, ok := dates.Today(now)
		if !ok || today != day.FromWeekday(now.Weekday()) {
			t.Fatalf("%s: unexpected today %q (%v)", now.Weekday(), today, ok)
		}
	}
}

func TestCurrentCrossesMonthBoundary(t *testing.T) {
	now := time.Date(2025, time.March, 1, 8, 0, 0, 0, time.UTC) // Saturday
	dates := Current(now)
	if got := Label(dates.Monday()); got != "Feb 24" {
		t.Fatalf("expected Feb 24, got %s", got)
	}
	if got := Label(dates.Date(day.Sunday)); got != "Mar 2" {
		t.Fatalf("expected Mar 2, got %s", got)
	}
}

func TestIsTodayIgnoresTime(t *testing.T) {
	now := time.Date(2025, time.March, 5, 23, 59, 0, 0, time.UTC)
	if !IsToday(time.Date(2025, time.March, 5, 0, 0, 1, 0, time.UTC), now) {
		t.Fatal("expected same calendar day to be today")
	}
	if IsToday(time.Date(2025, time.March, 4, 23, 59, 0, 0, time.UTC), now) {
		t.Fatal("expected previous day not to be today")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	created := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	w := Empty()
	w[day.Monday] = []*task.Task{
		{ID: "task_1_a", Text: "Buy milk", CreatedAt: task.Timestamp{Time: created}},
		{ID: "task_2_b", Text: "Call Bob", Completed: true, CreatedAt: task.Timestamp{Time: created.Add(time.Minute)}},
	}
	w[day.Friday] = []*task.Task{
		{ID: "task_3_c", Text: "Deploy", CreatedAt: task.Timestamp{Time: created.Add(time.Hour)}},
	}

	data, err := w.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, notes, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(notes) != 0 {
		t.Fatalf("unexpected notes: %v", notes)
	}
	if !reflect.DeepEqual(stripLocation(w), stripLocation(got)) {
		t.Fatalf("round trip mismatch:\nwant %s\ngot  %s", dump(w), dump(got))
	}
}

func TestDecodeNormalizes(t *testing.T) {
	raw := `{
		"monday": [null, {"id":"a","text":"  ","completed":false,"createdAt":""}, {"id":"b","text":"ok","completed":false,"createdAt":""}],
		"tuesday": [{"id":"b","text":"dup","completed":false,"createdAt":""}],
		"someday": []
	}`
	w, notes, err := Decode([]byte(raw))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(w) != 7 {
		t.Fatalf("expected seven days, got %d", len(w))
	}
	if len(w[day.Monday]) != 1 || w[day.Monday][0].ID != "b" {
		t.Fatalf("unexpected monday %v", w[day.Monday])
	}
	if len(w[day.Tuesday]) != 0 {
		t.Fatalf("expected duplicate dropped, got %v", w[day.Tuesday])
	}
	if w[day.Sunday] == nil {
		t.Fatal("missing day should be an empty slice")
	}
	if len(notes) != 4 {
		t.Fatalf("expected 4 notes, got %d: %v", len(notes), notes)
	}
}

func TestDecodeCorrupt(t *testing.T) {
	for _, raw := range []string{"{not json", "null", `{"monday": "nope"}`} {
		if _, _, err := Decode([]byte(raw)); err == nil {
			t.Fatalf("expected error decoding %q", raw)
		}
	}
}

func stripLocation(w Week) Week {
	out := w.Clone()
	for _, tasks := range out {
		for _, t := range tasks {
			t.CreatedAt.Time = t.CreatedAt.UTC()
		}
	}
	return out
}

func dump(w Week) string {
	var b strings.Builder
	for _, d := range day.All() {
		b.WriteString(string(d) + ":")
		for _, t := range w[d] {
			b.WriteString(" " + t.String())
		}
		b.WriteString("; ")
	}
	return b.String()
}
