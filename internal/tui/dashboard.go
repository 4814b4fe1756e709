package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/devMohamedYusri/life-pilot-evolved-app/internal/auth"
	"github.com/devMohamedYusri/life-pilot-evolved-app/internal/journal"
	"github.com/devMohamedYusri/life-pilot-evolved-app/internal/task"
)

const (
	panelToday = iota
	panelJournal
)

// RunDashboard opens the interactive dashboard for a logged-in user.
func RunDashboard(ctx context.Context, user auth.User, tasks *task.Store, entries *journal.Store, out io.Writer) error {
	m := newDashboardModel(ctx, user, tasks, entries)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}

type dashboardModel struct {
	ctx     context.Context
	user    auth.User
	tasks   *task.Store
	journal *journal.Store

	width  int
	height int

	today    []task.Task
	routines []task.Task
	entries  []journal.Entry

	panel    int
	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	today    []task.Task
	routines []task.Task
	entries  []journal.Entry
}

type completedMsg struct {
	id      string
	title   string
	applied bool
	err     error
}

type deletedMsg struct {
	title   string
	applied bool
	err     error
}

func newDashboardModel(ctx context.Context, user auth.User, tasks *task.Store, entries *journal.Store) dashboardModel {
	return dashboardModel{
		ctx:     ctx,
		user:    user,
		tasks:   tasks,
		journal: entries,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m dashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		entries := m.journal.Entries()
		// Most recent first, matching the dashboard page.
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
		return loadedMsg{
			today:    m.tasks.TodaysTasks(),
			routines: m.tasks.RoutineTasks(),
			entries:  entries,
		}
	}
}

func (m dashboardModel) completeCmd(t task.Task) tea.Cmd {
	return func() tea.Msg {
		applied, err := m.tasks.Complete(m.ctx, t.ID)
		return completedMsg{id: t.ID, title: t.Title, applied: applied, err: err}
	}
}

func (m dashboardModel) deleteCmd(t task.Task) tea.Cmd {
	return func() tea.Msg {
		applied, err := m.tasks.Delete(m.ctx, t.ID)
		return deletedMsg{title: t.Title, applied: applied, err: err}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.today = msg.today
		m.routines = msg.routines
		m.entries = msg.entries
		m.clampSelection()
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		if !msg.applied {
			m.lastLog = "Task not found."
			return m, m.loadCmd()
		}
		m.lastLog = fmt.Sprintf("Completed %q.", msg.title)
		return m, m.loadCmd()
	case deletedMsg:
		if msg.err != nil {
			m.lastLog = "Delete failed: " + msg.err.Error()
			return m, nil
		}
		if !msg.applied {
			m.lastLog = "Task not found."
			return m, m.loadCmd()
		}
		m.lastLog = fmt.Sprintf("Deleted %q.", msg.title)
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "tab":
			m.panel = (m.panel + 1) % 2
			m.selected = 0
			return m, nil
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < m.panelLen()-1 {
				m.selected++
			}
			return m, nil
		case "c", " ":
			if m.panel != panelToday {
				m.lastLog = "Switch to the Today panel to complete tasks."
				return m, nil
			}
			if m.selected < 0 || m.selected >= len(m.today) {
				return m, nil
			}
			t := m.today[m.selected]
			if t.Completed {
				m.lastLog = "Already done."
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Completing %q…", t.Title)
			return m, m.completeCmd(t)
		case "d":
			if m.panel != panelToday {
				return m, nil
			}
			if m.selected < 0 || m.selected >= len(m.today) {
				return m, nil
			}
			t := m.today[m.selected]
			m.lastLog = fmt.Sprintf("Deleting %q…", t.Title)
			return m, m.deleteCmd(t)
		}
	}
	return m, nil
}

func (m *dashboardModel) panelLen() int {
	if m.panel == panelToday {
		return len(m.today)
	}
	return len(m.entries)
}

func (m *dashboardModel) clampSelection() {
	if n := m.panelLen(); m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m dashboardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	left := m.renderToday()
	right := m.renderJournal()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 44
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 24 {
			leftW = 24
		}
	}

	linesLeft := strings.Split(left, "\n")
	linesRight := strings.Split(right, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m dashboardModel) renderHeader() string {
	now := time.Now()
	return fmt.Sprintf("LifePilot | %s, %s | %s | %d routines",
		greeting(now), m.user.FirstName, now.Format("Mon Jan 2"), len(m.routines))
}

func (m dashboardModel) renderToday() string {
	var out []string
	title := "Today"
	if m.panel == panelToday {
		title = "[ Today ]"
	}
	out = append(out, title)
	if m.loading {
		out = append(out, "Loading…")
		return strings.Join(out, "\n")
	}
	if len(m.today) == 0 {
		out = append(out, "(nothing scheduled today)")
		return strings.Join(out, "\n")
	}
	for i, t := range m.today {
		cursor := "  "
		if m.panel == panelToday && i == m.selected {
			cursor = "> "
		}
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		kind := ""
		if t.IsRoutine {
			kind = "[R] "
		}
		out = append(out, fmt.Sprintf("%s%s %s%s (%s)", cursor, mark, kind, t.Title, t.Priority))
	}
	return strings.Join(out, "\n")
}

func (m dashboardModel) renderJournal() string {
	var out []string
	title := "Journal"
	if m.panel == panelJournal {
		title = "[ Journal ]"
	}
	out = append(out, title)
	if m.loading {
		out = append(out, "Loading…")
		return strings.Join(out, "\n")
	}
	if len(m.entries) == 0 {
		out = append(out, "(no entries yet)")
		return strings.Join(out, "\n")
	}
	shown := m.entries
	if len(shown) > 8 {
		shown = shown[:8]
	}
	for i, e := range shown {
		cursor := "  "
		if m.panel == panelJournal && i == m.selected {
			cursor = "> "
		}
		mood := ""
		if e.Mood != "" {
			mood = fmt.Sprintf(" (%s)", e.Mood)
		}
		out = append(out, fmt.Sprintf("%s%s — %s%s", cursor, e.CreatedAt.Format("Jan 2"), e.Title, mood))
	}
	return strings.Join(out, "\n")
}

func (m dashboardModel) renderFooter() string {
	keys := "tab: panel · j/k: move · c/space: complete · d: delete · r: refresh · q: quit"
	return "\n" + keys + "\n" + m.lastLog
}

func greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
