package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/day"
)

// ParseDays resolves day arguments against now.
func ParseDays(args []string, now time.Time) ([]day.Key, error) {
	out := make([]day.Key, 0, len(args))
	for _, a := range args {
		d, err := day.Parse(a, now)
		if err != nil {
			return nil, fmt.Errorf("%w (want one of %s)", err, strings.Join(day.Names(), ", "))
		}
		out = append(out, d)
	}
	return out, nil
}

// CompleteDays offers day names for the first n positional arguments.
func CompleteDays(n int) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) >= n {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		names := append(day.Names(), "today")
		out := make([]string, 0, len(names))
		for _, name := range names {
			if strings.HasPrefix(name, strings.ToLower(toComplete)) {
				out = append(out, name)
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}
