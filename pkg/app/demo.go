package app

import (
	"tableflip.dev/weekly/pkg/day"
)

var demoTasks = []struct {
	day  day.Key
	text string
}{
	{day.Monday, "Review GitHub Copilot features"},
	{day.Monday, "Plan weekly sprint"},
	{day.Tuesday, "Team standup meeting"},
	{day.Tuesday, "Code review session"},
	{day.Wednesday, "Implement new features"},
	{day.Thursday, "Write documentation"},
	{day.Friday, "Deploy to production"},
	{day.Friday, "Weekend planning"},
}

// SeedDemo fills an empty week with a handful of sample tasks. A week that
// already has tasks is left alone.
func (s *Store) SeedDemo() []day.Key {
	if s.Count() > 0 {
		return nil
	}
	s.log.Info("adding demo tasks")
	for _, dt := range demoTasks {
		s.Add(dt.day, dt.text)
	}
	return day.All()
}
