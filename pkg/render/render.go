// Package render projects the week into HTML.
//
// Every interactive element carries a data-action tag naming what the router
// should do with events on it, plus the data-day and data-task-id it refers
// to. User text goes through html/template, so it is always escaped.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"tableflip.dev/weekly/pkg/day"
	"tableflip.dev/weekly/pkg/task"
	"tableflip.dev/weekly/pkg/week"
)

// EmptyState is shown in a day with no tasks.
const EmptyState = "No tasks yet"

//go:embed templates/*.html
var templateFS embed.FS

type taskView struct {
	ID        string
	Text      string
	Completed bool
	Day       day.Key
}

type dayView struct {
	Key   day.Key
	Title string
	Label string
	Today bool
	Tasks []taskView
}

type pageView struct {
	Title     string
	Days      []dayView
	Total     int
	Completed int
}

// Renderer holds the parsed templates.
type Renderer struct {
	tmpl  *template.Template
	title string
}

// New parses the embedded templates.
func New(title string) (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"empty": func() string { return EmptyState },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("render: parse templates: %w", err)
	}
	if title == "" {
		title = "Weekly"
	}
	return &Renderer{tmpl: tmpl, title: title}, nil
}

// Page writes the full board for the week containing now.
func (r *Renderer) Page(w io.Writer, wk week.Week, now time.Time) error {
	dates := week.Current(now)
	pv := pageView{Title: r.title}
	for _, d := range day.All() {
		date := dates.Date(d)
		dv := dayView{
			Key:   d,
			Title: d.Title(),
			Label: week.Label(date),
			Today: week.IsToday(date, now),
			Tasks: views(d, wk[d]),
		}
		for _, t := range wk[d] {
			pv.Total++
			if t.Completed {
				pv.Completed++
			}
		}
		pv.Days = append(pv.Days, dv)
	}
	return r.tmpl.ExecuteTemplate(w, "page.html", pv)
}

// Day writes the inner markup of one day's task list.
func (r *Renderer) Day(w io.Writer, d day.Key, tasks []*task.Task) error {
	if !d.Valid() {
		return fmt.Errorf("render: unknown day %q", d)
	}
	return r.tmpl.ExecuteTemplate(w, "tasks", dayView{Key: d, Tasks: views(d, tasks)})
}

// DayHTML is Day into a string.
func (r *Renderer) DayHTML(d day.Key, tasks []*task.Task) (string, error) {
	var buf bytes.Buffer
	if err := r.Day(&buf, d, tasks); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func views(d day.Key, tasks []*task.Task) []taskView {
	out := make([]taskView, 0, len(tasks))
	for _, t := range tasks {
		if t == nil {
			continue
		}
		out = append(out, taskView{ID: t.ID, Text: t.Text, Completed: t.Completed, Day: d})
	}
	return out
}
