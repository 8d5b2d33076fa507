// Package ui provides a read-only terminal viewer for snapshot files.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/tasker-go/internal/todo"
)

// linesPerTask is the height of one rendered task entry.
const linesPerTask = 2

// RunViewer opens the snapshot file at path in a full-screen viewer.
func RunViewer(ctx context.Context, path string) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("view requires a TTY")
	}
	program := tea.NewProgram(newViewerModel(path), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type viewerModel struct {
	path     string
	keys     keyMap
	tasks    []todo.Task
	visible  []todo.Task
	loadErr  error
	filter   *todo.Priority
	offset   int
	height   int
	showHelp bool
}

func newViewerModel(path string) *viewerModel {
	return &viewerModel{
		path: path,
		keys: defaultKeyMap(),
	}
}

func (m *viewerModel) Init() tea.Cmd {
	m.reload()
	return nil
}

func (m *viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.clampOffset()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reload):
			m.reload()
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
		case key.Matches(msg, m.keys.Up):
			m.offset--
			m.clampOffset()
		case key.Matches(msg, m.keys.Down):
			m.offset++
			m.clampOffset()
		case key.Matches(msg, m.keys.FilterLow):
			m.setFilter(todo.PriorityLow)
		case key.Matches(msg, m.keys.FilterMed):
			m.setFilter(todo.PriorityMedium)
		case key.Matches(msg, m.keys.FilterHigh):
			m.setFilter(todo.PriorityHigh)
		case key.Matches(msg, m.keys.ClearFilter):
			m.filter = nil
			m.applyFilter()
		}
	}
	return m, nil
}

func (m *viewerModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Tasks: "+m.path) + "\n\n")

	if m.showHelp {
		m.writeHelp(&b)
		writeFooter(&b)
		return b.String()
	}

	if m.loadErr != nil {
		b.WriteString(errorStyle.Render("Error loading snapshot file:") + "\n")
		b.WriteString("  " + m.loadErr.Error() + "\n\n")
		writeFooter(&b)
		return b.String()
	}

	writeOverview(&b, m.tasks)
	if m.filter != nil {
		b.WriteString(fmt.Sprintf("Filter: %s (0 to clear)\n\n", *m.filter))
	}

	if len(m.visible) == 0 {
		b.WriteString(mutedStyle.Render("  No tasks.") + "\n\n")
	}
	end := len(m.visible)
	if rows := m.visibleRows(); rows > 0 && m.offset+rows < end {
		end = m.offset + rows
	}
	for _, task := range m.visible[m.offset:end] {
		b.WriteString(formatTask(task))
	}
	if end < len(m.visible) {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  ... %d more", len(m.visible)-end)) + "\n")
	}

	b.WriteString("\n")
	writeFooter(&b)
	return b.String()
}

func (m *viewerModel) reload() {
	tasks, err := todo.ReadFile(m.path)
	if err != nil {
		m.loadErr = err
		m.tasks = nil
	} else {
		m.loadErr = nil
		m.tasks = tasks
	}
	m.applyFilter()
}

func (m *viewerModel) setFilter(p todo.Priority) {
	m.filter = &p
	m.applyFilter()
}

// applyFilter rebuilds the visible tasks, keeping file order.
func (m *viewerModel) applyFilter() {
	m.visible = m.visible[:0]
	for _, task := range m.tasks {
		if m.filter == nil || task.Priority == *m.filter {
			m.visible = append(m.visible, task)
		}
	}
	m.offset = 0
}

// visibleRows returns how many tasks fit on screen, or 0 if unknown.
func (m *viewerModel) visibleRows() int {
	if m.height == 0 {
		return 0
	}
	// Title, overview, filter and footer lines
	rows := (m.height - 8) / linesPerTask
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *viewerModel) clampOffset() {
	maxOffset := len(m.visible) - m.visibleRows()
	if m.visibleRows() == 0 || maxOffset < 0 {
		maxOffset = 0
	}
	if m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func writeOverview(b *strings.Builder, tasks []todo.Task) {
	counts := map[todo.Priority]int{}
	for _, task := range tasks {
		counts[task.Priority]++
	}
	b.WriteString(fmt.Sprintf("  Total: %d  High: %d  Medium: %d  Low: %d\n\n",
		len(tasks),
		counts[todo.PriorityHigh],
		counts[todo.PriorityMedium],
		counts[todo.PriorityLow],
	))
}

func (m *viewerModel) writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	for _, binding := range m.keys.all() {
		help := binding.Help()
		b.WriteString(fmt.Sprintf("  %-12s %s\n", help.Key, help.Desc))
	}
	b.WriteString("\n")
}

func writeFooter(b *strings.Builder) {
	b.WriteString(mutedStyle.Render("Press h for help | r to reload | q to quit") + "\n")
}

func formatTask(t todo.Task) string {
	label := fmt.Sprintf("[%-6s]", t.Priority)
	line := fmt.Sprintf("  %s %s  %s\n",
		priorityStyle(t.Priority).Render(label),
		nameStyle.Render(t.Name),
		mutedStyle.Render(t.AddTime.Format(todo.TimeLayout)),
	)
	details := t.Description
	if len(details) > 60 {
		details = details[:57] + "..."
	}
	return line + "      " + details + "\n"
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
