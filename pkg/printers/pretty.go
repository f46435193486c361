package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/termenv"

	"tableflip.dev/weekly/pkg/day"
	"tableflip.dev/weekly/pkg/task"
	"tableflip.dev/weekly/pkg/week"
)

const idWidth = len("task_1741165200000_0123456789  ")

var spacing = strings.Repeat(" ", idWidth)

// DisableColorFromEnv turns colour off when NO_COLOR is set.
func DisableColorFromEnv() {
	if termenv.EnvNoColor() {
		color.NoColor = true
	}
}

type PrettyPrint struct {
	ShowID bool
	Out    io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

// Message prints a plain status line.
func (pp *PrettyPrint) Message(format string, args ...any) {
	_, _ = fmt.Fprintf(pp.out(), format+"\n", args...)
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(d day.Key, date time.Time, today bool) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)
	if today {
		c = color.New(color.FgHiBlue, color.Bold)
	}

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), d.Title())
	_, _ = c.Fprintf(pp.out(), " %s\n", week.Label(date))
}

func (pp *PrettyPrint) Tasks(tasks ...*task.Task) {
	w := pp.out()
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Fprint(w, spacing)
		}
		_, _ = f.Fprint(w, " No tasks yet\n\n")
		return
	}

	open := color.New()
	done := color.New(color.Faint, color.CrossedOut)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, t := range tasks {
		if pp.ShowID {
			_, _ = y.Fprint(w, t.ID)
			if pad := idWidth - len(t.ID); pad > 0 {
				_, _ = y.Fprint(w, strings.Repeat(" ", pad))
			} else {
				_, _ = y.Fprint(w, " ")
			}
		}
		if t.Completed {
			_, _ = done.Fprintf(w, "[x] %s\n", t.Text)
		} else {
			_, _ = open.Fprintf(w, "[ ] %s\n", t.Text)
		}
	}
	_, _ = fmt.Fprintln(w, "")
}

// Week prints the given days of wk, all seven when none are named.
func (pp *PrettyPrint) Week(wk week.Week, now time.Time, only ...day.Key) {
	if len(only) == 0 {
		only = day.All()
	}
	dates := week.Current(now)
	for _, d := range only {
		date := dates.Date(d)
		pp.Title(d, date, week.IsToday(date, now))
		pp.Tasks(wk[d]...)
	}
}

// Summary prints one row per day with open and completed counts.
func (pp *PrettyPrint) Summary(wk week.Week, now time.Time) {
	bold := color.New(color.Bold)
	dates := week.Current(now)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Day"), bold.Sprint("Date"), bold.Sprint("Open"), bold.Sprint("Done"))
	for _, d := range day.All() {
		open, done := 0, 0
		for _, t := range wk[d] {
			if t.Completed {
				done++
			} else {
				open++
			}
		}
		label := week.Label(dates.Date(d))
		tbl.AddRow(d.Title(), label, open, done)
	}
	tbl.RightAlign(2)
	tbl.RightAlign(3)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// JSON writes v indented.
func (pp *PrettyPrint) JSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(pp.out(), string(b))
	return err
}
