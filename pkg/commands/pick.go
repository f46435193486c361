package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/commands/options"
	"tableflip.dev/weekly/pkg/day"
	"tableflip.dev/weekly/pkg/snake"
	"tableflip.dev/weekly/pkg/task"
)

// dayArg resolves args[i], prompting for it when missing.
func dayArg(cmd *cobra.Command, e *env, args []string, i int, label string) (day.Key, error) {
	if i < len(args) {
		days, err := options.ParseDays(args[i:i+1], e.store.Now())
		if err != nil {
			return "", err
		}
		return days[0], nil
	}
	return snake.PickDay(cmd, label, e.store.Now())
}

// taskArg resolves the task id in args[i], prompting with the tasks of d
// when missing.
func taskArg(cmd *cobra.Command, e *env, args []string, i int, d day.Key) (*task.Task, error) {
	if i < len(args) {
		if _, t, ok := e.store.Find(args[i]); ok {
			return t, nil
		}
		return &task.Task{ID: args[i]}, nil
	}
	return snake.PickTask(cmd, "Task on "+d.Title(), e.store.Tasks(d))
}

// interactiveArgs accepts n arguments, or fewer when prompting.
func interactiveArgs(i *options.InteractiveOptions, n int, msg string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) > n || (!i.Interactive && len(args) < n) {
			return errors.New(msg)
		}
		return nil
	}
}
