// Package snake fills in command arguments interactively.
package snake

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/day"
	"tableflip.dev/weekly/pkg/task"
	"tableflip.dev/weekly/pkg/week"
)

// ErrNoTasks is returned by PickTask for an empty day.
var ErrNoTasks = errors.New("no tasks to pick from")

type dayItem struct {
	Key   day.Key
	Title string
	Label string
	Today bool
}

func dayItems(now time.Time) []dayItem {
	dates := week.Current(now)
	items := make([]dayItem, 0, 7)
	for _, d := range day.All() {
		date := dates.Date(d)
		items = append(items, dayItem{
			Key:   d,
			Title: d.Title(),
			Label: week.Label(date),
			Today: week.IsToday(date, now),
		})
	}
	return items
}

// PickDay asks for a day of the week containing now, starting on today.
func PickDay(cmd *cobra.Command, label string, now time.Time) (day.Key, error) {
	items := dayItems(now)
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Title | bold }} {{ .Label | green }}{{ if .Today }} {{ \"today\" | cyan }}{{ end }}",
		Inactive: "   {{ .Title }} {{ .Label | faint }}{{ if .Today }} {{ \"today\" | cyan }}{{ end }}",
		Selected: "{{ .Title | bold }}",
	}

	searcher := func(input string, index int) bool {
		name := strings.ToLower(items[index].Title)
		return strings.HasPrefix(name, strings.ToLower(strings.TrimSpace(input)))
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     label,
		Items:     items,
		Templates: templates,
		Size:      7,
		CursorPos: day.FromWeekday(now.Weekday()).Index(),
		Searcher:  searcher,
		Stdin:     io.NopCloser(cmd.InOrStdin()),
		Stdout:    nopCloser{cmd.OutOrStdout()},
	}

	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return items[i].Key, nil
}

// PickTask asks for one of tasks.
func PickTask(cmd *cobra.Command, label string, tasks []*task.Task) (*task.Task, error) {
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ if .Completed }}[x]{{ else }}[ ]{{ end }} {{ .Text | bold }}",
		Inactive: "   {{ if .Completed }}[x]{{ else }}[ ]{{ end }} {{ .Text }}",
		Selected: "{{ .Text | bold }}",
		Details: `
--------- Task ----------
id: {{ .ID }}
`,
	}

	searcher := func(input string, index int) bool {
		text := strings.Replace(strings.ToLower(tasks[index].Text), " ", "", -1)
		input = strings.Replace(strings.ToLower(input), " ", "", -1)
		return strings.Contains(text, input)
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     label,
		Items:     tasks,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
		Stdin:     io.NopCloser(cmd.InOrStdin()),
		Stdout:    nopCloser{cmd.OutOrStdout()},
	}

	i, _, err := prompt.Run()
	if err != nil {
		return nil, err
	}
	return tasks[i], nil
}

// PromptText asks for a line of non-blank text, prefilled with initial.
func PromptText(cmd *cobra.Command, label, initial string) (string, error) {
	validate := func(input string) error {
		if strings.TrimSpace(input) == "" {
			return errors.New("empty")
		}
		return nil
	}

	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }}: ",
		Valid:   "{{ . | green }}: ",
		Invalid: "{{ . | red }}: ",
		Success: "{{ . | bold }}: ",
	}

	prompt := promptui.Prompt{
		Label:     label,
		Templates: templates,
		Validate:  validate,
		Default:   initial,
		AllowEdit: initial != "",
		Stdin:     io.NopCloser(cmd.InOrStdin()),
		Stdout:    nopCloser{cmd.OutOrStdout()},
	}

	result, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
