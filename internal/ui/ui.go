package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"termcal/internal"
	"termcal/internal/view"
)

const panelWidth = 38

// Model is the render bridge: it feeds terminal key events to the view
// machine and draws whatever state the machine settles on. All store
// calls happen synchronously inside Update, one key at a time.
type Model struct {
	ctx     context.Context
	machine *view.Machine
	input   textinput.Model
	styles  Styles
	width   int
	height  int
}

func Run(ctx context.Context, store internal.Store, start internal.Date) error {
	machine := view.NewMachine(store, start)
	machine.Reload(ctx)

	ti := textinput.New()
	ti.Placeholder = "Event text"
	ti.CharLimit = 200
	ti.Width = 40
	ti.Focus()

	m := Model{
		ctx:     ctx,
		machine: machine,
		input:   ti,
		styles:  DefaultStyles(),
	}

	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key, ok := keyEvent(msg)
		if !ok {
			return m, nil
		}
		m.machine.Handle(m.ctx, key)
		if m.machine.Done() {
			return m, tea.Quit
		}
		m.syncInput()
		return m, nil
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

// syncInput mirrors the machine's draft into the text input widget; the
// machine stays the source of truth for the prompt buffer.
func (m *Model) syncInput() {
	if st, ok := m.machine.State().(view.AddEventPrompt); ok {
		m.input.SetValue(st.Draft)
		m.input.SetCursor(len([]rune(st.Draft)))
	} else {
		m.input.SetValue("")
	}
}

func (m Model) View() string {
	var b strings.Builder

	switch st := m.machine.State().(type) {
	case view.CalendarView:
		b.WriteString(m.renderCalendar(m.machine.Cursor()))
	case view.AddEventPrompt:
		b.WriteString(m.renderCalendar(st.Date))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Header.Render("New event for " + st.Date.String()))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("enter save • esc cancel"))
	case view.EventListView:
		b.WriteString(m.renderList(st))
	}

	if msg := m.machine.Message(); msg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Message.Render(msg))
	}
	return b.String()
}

func (m Model) renderCalendar(sel internal.Date) string {
	grid := RenderMonth(m.styles, sel.Year(), sel.Month(), sel, internal.Today(), m.machine.HasEvents)
	body := lipgloss.JoinHorizontal(lipgloss.Top, grid, "   ", m.renderDayPanel(sel))
	help := m.styles.Help.Render("arrows move • pgup/pgdn month • home/end • enter add • tab events • q quit")
	return body + "\n\n" + help
}

func (m Model) renderDayPanel(sel internal.Date) string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Events for " + sel.String()))
	b.WriteString("\n")

	events := m.machine.EventsOn(sel)
	if len(events) == 0 {
		b.WriteString(m.styles.Help.Render("no events"))
		return b.String()
	}
	for _, ev := range events {
		b.WriteString("• ")
		b.WriteString(truncate(ev.Text, panelWidth-2))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderList(st view.EventListView) string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Events for " + st.Date.String()))
	b.WriteString("\n\n")

	for i, ev := range st.Events {
		line := truncate(ev.Text, panelWidth)
		if i == st.Selected {
			b.WriteString("> ")
			b.WriteString(m.styles.Selected.Render(line))
		} else {
			b.WriteString("  ")
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("up/down select • enter full text • del delete • tab back"))
	return b.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
