// Package tui draws the week as seven columns in the terminal and turns key
// presses into the same router events the browser sends.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"go.uber.org/zap"

	"tableflip.dev/weekly/pkg/app"
	"tableflip.dev/weekly/pkg/day"
	"tableflip.dev/weekly/pkg/logging"
	"tableflip.dev/weekly/pkg/router"
	"tableflip.dev/weekly/pkg/store"
	"tableflip.dev/weekly/pkg/task"
	"tableflip.dev/weekly/pkg/tui/theme"
	"tableflip.dev/weekly/pkg/week"
)

type mode int

const (
	modeNormal mode = iota
	modeAdd
	modeEdit
	modeConfirm
)

const (
	defaultWidth = 112
	minInner     = 10
	helpText     = "←/→ day · ↑/↓ task · a add · e edit · x toggle · d delete · m move · c clear done · ! clear all · t today · r reload · q quit"
)

// Options wires the board to the shared store and router.
type Options struct {
	Store  *app.Store
	Router *router.Router
	// Watcher, when set, reloads the board after external writes to Key.
	Watcher store.Watcher
	Key     string
	Logger  *zap.Logger
}

// Model is the Bubble Tea model for the board.
type Model struct {
	ctx     context.Context
	store   *app.Store
	router  *router.Router
	watcher store.Watcher
	key     string
	log     *zap.Logger
	theme   theme.Theme

	width  int
	height int

	dayIdx      int
	row         int
	week        week.Week
	dropTargets []day.Key

	mode   mode
	input  textinput.Model
	editID string
	status string

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New builds the board focused on today's column.
func New(ctx context.Context, opts Options) *Model {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "Describe the task…"

	key := opts.Key
	if key == "" {
		key = store.DefaultKey
	}
	m := &Model{
		ctx:     ctx,
		store:   opts.Store,
		router:  opts.Router,
		watcher: opts.Watcher,
		key:     key,
		log:     logging.OrNop(opts.Logger),
		theme:   theme.Default(),
		input:   input,
		status:  "Ready",
	}
	now := m.store.Now()
	if k, ok := week.Current(now).Today(now); ok {
		m.dayIdx = k.Index()
	}
	m.refresh()
	return m
}

// Run launches the Bubble Tea program.
func Run(ctx context.Context, opts Options) error {
	m := New(ctx, opts)
	defer m.stopWatch()
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return startWatchCmd(m.ctx, m.watcher, m.key)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(max(20, m.width-24))
	case watchStartedMsg:
		if msg.err != nil {
			m.log.Warn("watch failed", zap.Error(msg.err))
			m.status = "ERR: watch " + msg.err.Error()
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		cmds = appendCmd(cmds, m.waitForWatch())
	case watchEventMsg:
		m.store.Reload()
		m.refresh()
		m.status = "Reloaded after an external change"
		cmds = appendCmd(cmds, m.waitForWatch())
	case watchStoppedMsg:
		m.stopWatch()
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	default:
		if m.editing() {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = appendCmd(cmds, cmd)
		}
	}

	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		m.stopWatch()
		return tea.Quit
	}
	switch m.mode {
	case modeAdd, modeEdit:
		return m.handleInputKey(msg)
	case modeConfirm:
		m.handleConfirmKey(msg)
		return nil
	}

	switch msg.String() {
	case "q":
		m.stopWatch()
		return tea.Quit
	case "left", "h":
		m.focusDay(m.dayIdx - 1)
	case "right", "l":
		m.focusDay(m.dayIdx + 1)
	case "up", "k":
		m.row--
		m.clampRow()
	case "down", "j":
		m.row++
		m.clampRow()
	case "t":
		now := m.store.Now()
		if k, ok := week.Current(now).Today(now); ok {
			m.focusDay(k.Index())
		}
	case "a":
		return m.beginInput(modeAdd, "")
	case "e":
		if t := m.selected(); t != nil {
			m.editID = t.ID
			return m.beginInput(modeEdit, t.Text)
		}
	case "enter":
		if m.dragging() {
			m.drop()
		} else if t := m.selected(); t != nil {
			m.editID = t.ID
			return m.beginInput(modeEdit, t.Text)
		}
	case "x", "space":
		if t := m.selected(); t != nil {
			m.dispatch(router.Event{Type: router.Click, Action: router.ActionToggle, Day: m.currentDay(), TaskID: t.ID})
		}
	case "d", "delete", "backspace":
		if t := m.selected(); t != nil {
			m.dispatch(router.Event{Type: router.Click, Action: router.ActionDelete, Day: m.currentDay(), TaskID: t.ID})
			m.status = "Deleted " + t.Text
		}
	case "m":
		if m.dragging() {
			m.drop()
		} else {
			m.pickUp()
		}
	case "esc":
		if m.dragging() {
			m.dispatch(router.Event{Type: router.DragEnd, Action: router.ActionDrag})
			m.status = "Move cancelled"
		}
	case "c":
		m.dispatch(router.Event{Type: router.Click, Action: router.ActionClearCompleted})
		m.status = "Cleared completed tasks"
	case "!":
		m.mode = modeConfirm
	case "r":
		m.store.Reload()
		m.refresh()
		m.status = "Reloaded"
	}
	return nil
}

func (m *Model) handleInputKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.endInput()
		m.status = "Cancelled"
		return nil
	case "enter":
		d := m.currentDay()
		if m.mode == modeAdd {
			res := m.dispatch(router.Event{Type: router.KeyDown, Action: router.ActionAdd, Day: d, Key: router.EnterKey, Value: m.input.Value()})
			if !res.ClearInput {
				m.endInput()
				return nil
			}
			m.input.SetValue("")
			m.row = len(m.week[d]) - 1
			m.status = "Added to " + d.Title()
			return nil
		}
		res := m.dispatch(router.Event{Type: router.KeyDown, Action: router.ActionRename, Day: d, TaskID: m.editID, Key: router.EnterKey})
		if res.Blur {
			m.dispatch(router.Event{Type: router.Blur, Action: router.ActionRename, Day: d, TaskID: m.editID, Value: m.input.Value()})
			m.status = "Saved"
		}
		m.endInput()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) handleConfirmKey(msg tea.KeyPressMsg) {
	m.mode = modeNormal
	switch msg.String() {
	case "y", "Y":
		m.dispatch(router.Event{Type: router.Click, Action: router.ActionClearAll, Confirmed: true})
		m.status = "Cleared all tasks"
	default:
		m.status = "Kept all tasks"
	}
}

func (m *Model) beginInput(md mode, value string) tea.Cmd {
	m.mode = md
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) endInput() {
	m.mode = modeNormal
	m.editID = ""
	m.input.SetValue("")
	m.input.Blur()
}

func (m *Model) editing() bool {
	return m.mode == modeAdd || m.mode == modeEdit
}

func (m *Model) dispatch(ev router.Event) router.Result {
	res := m.router.Dispatch(ev)
	m.dropTargets = res.DropTargets
	if len(res.Redraw) > 0 {
		m.refresh()
	}
	return res
}

func (m *Model) dragging() bool {
	st, _ := m.router.DragState()
	return st == router.Dragging
}

func (m *Model) pickUp() {
	t := m.selected()
	if t == nil {
		m.status = "Nothing to move"
		return
	}
	d := m.currentDay()
	m.dispatch(router.Event{Type: router.DragStart, Action: router.ActionDrag, Day: d, TaskID: t.ID})
	m.dispatch(router.Event{Type: router.DragEnter, Action: router.ActionDropZone, Day: d})
	m.status = "Moving " + t.Text + ": pick a day, m to drop, esc to cancel"
}

func (m *Model) drop() {
	_, tok := m.router.DragState()
	d := m.currentDay()
	res := m.dispatch(router.Event{Type: router.Drop, Action: router.ActionDropZone, Day: d})
	m.dispatch(router.Event{Type: router.DragEnd, Action: router.ActionDrag, Day: tok.Source, TaskID: tok.TaskID})
	if len(res.Redraw) == 0 {
		m.status = "Not moved"
		return
	}
	m.row = len(m.week[d]) - 1
	m.status = "Moved to " + d.Title()
}

// focusDay moves the column focus; while dragging the drop target follows.
func (m *Model) focusDay(i int) {
	i = min(max(i, 0), len(day.All())-1)
	if i == m.dayIdx {
		return
	}
	if m.dragging() {
		m.dispatch(router.Event{Type: router.DragLeave, Action: router.ActionDropZone, Day: m.currentDay()})
		m.dispatch(router.Event{Type: router.DragEnter, Action: router.ActionDropZone, Day: day.All()[i]})
	}
	m.dayIdx = i
	m.clampRow()
}

func (m *Model) refresh() {
	m.week = m.store.Snapshot()
	m.clampRow()
}

func (m *Model) clampRow() {
	n := len(m.week[m.currentDay()])
	m.row = min(max(m.row, 0), max(n-1, 0))
}

func (m *Model) currentDay() day.Key {
	return day.All()[m.dayIdx]
}

func (m *Model) selected() *task.Task {
	tasks := m.week[m.currentDay()]
	if m.row < 0 || m.row >= len(tasks) {
		return nil
	}
	return tasks[m.row]
}

// View renders the board.
func (m *Model) View() (string, *tea.Cursor) {
	header := m.renderHeader()
	board := m.renderBoard()
	footer, prefix := m.renderFooter()
	body := lipgloss.JoinVertical(lipgloss.Left, header, board, footer)

	var cursor *tea.Cursor
	if m.editing() {
		if c := m.input.Cursor(); c != nil {
			clone := *c
			clone.Position.X += prefix
			clone.Position.Y += lipgloss.Height(header) + lipgloss.Height(board)
			cursor = &clone
		}
	}
	return body, cursor
}

func (m *Model) renderHeader() string {
	now := m.store.Now()
	dates := week.Current(now)
	total, done := 0, 0
	for _, tasks := range m.week {
		for _, t := range tasks {
			total++
			if t.Completed {
				done++
			}
		}
	}
	title := m.theme.Header.Title.Render("Week of " + week.Label(dates.Monday()))
	summary := m.theme.Header.Summary.Render(fmt.Sprintf("  %d of %d done", done, total))
	return title + summary
}

func (m *Model) renderBoard() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	inner := max(width/7-4, minInner)

	rows := 1
	for _, tasks := range m.week {
		rows = max(rows, len(tasks))
	}

	now := m.store.Now()
	dates := week.Current(now)
	_, tok := m.router.DragState()
	dragging := m.dragging()

	cols := make([]string, 0, 7)
	for i, d := range day.All() {
		date := dates.Date(d)
		titleStyle := m.theme.Column.Title
		if week.IsToday(date, now) {
			titleStyle = m.theme.Column.Today
		}
		lines := []string{
			titleStyle.Render(d.Short()) + " " + m.theme.Column.Date.Render(week.Label(date)),
		}

		tasks := m.week[d]
		if len(tasks) == 0 {
			lines = append(lines, m.theme.Column.Empty.Render(truncate.StringWithTail("No tasks yet", uint(inner-2), "…")))
		}
		for r, t := range tasks {
			box := "[ ] "
			style := m.theme.Task.Open
			if t.Completed {
				box = "[x] "
				style = m.theme.Task.Completed
			}
			if dragging && t.ID == tok.TaskID {
				style = m.theme.Task.Dragged
			}
			if i == m.dayIdx && r == m.row {
				style = m.theme.Task.Selected
			}
			text := truncate.StringWithTail(t.Text, uint(max(inner-len(box)-2, 1)), "…")
			lines = append(lines, box+style.Render(text))
		}
		for len(lines) < rows+1 {
			lines = append(lines, "")
		}

		frame := m.theme.Column.Frame
		switch {
		case containsDay(m.dropTargets, d):
			frame = m.theme.Column.DropTarget
		case i == m.dayIdx:
			frame = m.theme.Column.Focused
		}
		cols = append(cols, frame.Width(inner+2).Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m *Model) renderFooter() (string, int) {
	switch m.mode {
	case modeAdd, modeEdit:
		label := "Add to " + m.currentDay().Title() + ": "
		if m.mode == modeEdit {
			label = "Edit: "
		}
		prefix := m.theme.Footer.Prompt.Render(label)
		return prefix + m.input.View(), lipgloss.Width(prefix)
	case modeConfirm:
		return m.theme.Footer.Confirm.Render(router.ClearAllPrompt + " [y/N]"), 0
	}
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	status := m.theme.Footer.Status.Render(m.status)
	help := m.theme.Footer.Help.Render(wordwrap.String(helpText, width))
	return lipgloss.JoinVertical(lipgloss.Left, status, help), 0
}

func containsDay(days []day.Key, d day.Key) bool {
	for _, k := range days {
		if k == d {
			return true
		}
	}
	return false
}

func appendCmd(cmds []tea.Cmd, cmd tea.Cmd) []tea.Cmd {
	if cmd == nil {
		return cmds
	}
	return append(cmds, cmd)
}
