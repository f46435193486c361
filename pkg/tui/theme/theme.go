package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the board.
type Theme struct {
	Header HeaderTheme
	Column ColumnTheme
	Task   TaskTheme
	Footer FooterTheme
}

// HeaderTheme styles the line above the columns.
type HeaderTheme struct {
	Title   lipgloss.Style
	Summary lipgloss.Style
}

// ColumnTheme styles a day column and its heading.
type ColumnTheme struct {
	Frame      lipgloss.Style
	Focused    lipgloss.Style
	DropTarget lipgloss.Style
	Title      lipgloss.Style
	Today      lipgloss.Style
	Date       lipgloss.Style
	Empty      lipgloss.Style
}

// TaskTheme styles task rows.
type TaskTheme struct {
	Open      lipgloss.Style
	Completed lipgloss.Style
	Selected  lipgloss.Style
	Dragged   lipgloss.Style
}

// FooterTheme groups styles used by the bottom status/input bar.
type FooterTheme struct {
	Help    lipgloss.Style
	Status  lipgloss.Style
	Prompt  lipgloss.Style
	Confirm lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return Theme{
		Header: HeaderTheme{
			Title:   lipgloss.NewStyle().Bold(true),
			Summary: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Column: ColumnTheme{
			Frame:      frame,
			Focused:    frame.BorderForeground(lipgloss.Color("212")),
			DropTarget: frame.BorderForeground(lipgloss.Color("39")).BorderStyle(lipgloss.DoubleBorder()),
			Title:      lipgloss.NewStyle().Bold(true),
			Today:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
			Date:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Empty:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		},
		Task: TaskTheme{
			Open:      lipgloss.NewStyle(),
			Completed: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
			Selected:  lipgloss.NewStyle().Reverse(true),
			Dragged:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		},
		Footer: FooterTheme{
			Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Confirm: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		},
	}
}
