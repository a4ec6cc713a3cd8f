package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/jask/clockface/core"
	"github.com/jask/clockface/widgets"
)

const (
	headerRows = 2
	paneGap    = 2

	statusErrColor = "#f38ba8"
)

type entry struct {
	title  string
	picker *core.Picker
}

type model struct {
	entries []entry
	focus   int
	keys    *core.KeyRegistry
	colors  widgets.Colors
	help    help.Model
	log     zerolog.Logger

	width  int
	height int

	status    string
	statusErr bool
	showHelp  bool
}

func newModel(entries []entry, bindings []core.KeyBinding, colors widgets.Colors, log zerolog.Logger) model {
	m := model{
		entries: entries,
		keys:    core.NewKeyRegistry(bindings),
		colors:  colors.WithDefaults(),
		help:    help.New(),
		log:     log,
	}
	m.setFocus(0)
	m.place()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.place()
		return m, nil
	case tea.KeyMsg:
		switch m.keys.Action(msg, core.ScopeApp) {
		case core.ActionQuit:
			return m, tea.Quit
		case core.ActionFocusNext:
			if len(m.entries) > 0 {
				m.setFocus((m.focus + 1) % len(m.entries))
			}
			return m, nil
		case core.ActionHelp:
			m.showHelp = !m.showHelp
			return m, nil
		}
		if m.showHelp {
			if msg.Type == tea.KeyEsc {
				m.showHelp = false
			}
			return m, nil
		}
		if len(m.entries) == 0 {
			return m, nil
		}
		return m, m.entries[m.focus].picker.Update(msg)
	case tea.MouseMsg:
		if m.showHelp {
			return m, nil
		}
		m.place()
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if i := m.paneAt(msg.X, msg.Y); i >= 0 && i != m.focus {
				m.setFocus(i)
			}
		}
		return m, m.broadcast(msg)
	case core.ChangedMsg:
		m.status = fmt.Sprintf("%s: %s", m.title(msg.ID), msg.Value)
		m.statusErr = false
		return m, nil
	case core.SubmittedMsg:
		h, mm := msg.Value.Clock24()
		m.log.Info().Str("picker", m.title(msg.ID)).Str("value", msg.Value.String()).Msg("value submitted")
		return m, core.StatusCmd(fmt.Sprintf("%s confirmed %02d:%02d", m.title(msg.ID), h, mm))
	case core.StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	}
	return m, m.broadcast(msg)
}

// broadcast hands msg to every picker. Pickers ignore messages addressed to
// other instances.
func (m model) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.entries))
	for _, e := range m.entries {
		cmds = append(cmds, e.picker.Update(msg))
	}
	return tea.Batch(cmds...)
}

func (m *model) setFocus(i int) {
	if i < 0 || i >= len(m.entries) {
		return
	}
	m.focus = i
	for j, e := range m.entries {
		if j == i {
			e.picker.Focus()
		} else {
			e.picker.Blur()
		}
	}
}

func (m model) title(id int) string {
	for _, e := range m.entries {
		if e.picker.ID() == id {
			return e.title
		}
	}
	return fmt.Sprintf("picker %d", id)
}

// Values reports each picker's current reading, in display order.
func (m model) Values() []core.Value {
	out := make([]core.Value, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.picker.Value()
	}
	return out
}

func (m model) stack() widgets.HStack {
	ws := make([]widgets.Widget, len(m.entries))
	for i, e := range m.entries {
		ws[i] = widgets.Pane{
			Title:   e.title,
			Content: e.picker.View(),
			Focused: i == m.focus,
			Colors:  m.colors,
		}
	}
	return widgets.HStack{Widgets: ws, Gap: paneGap}
}

// layoutWidth is the terminal width, or the natural width of the panes
// before the first size message.
func (m model) layoutWidth() int {
	if m.width > 0 {
		return m.width
	}
	w := 0
	for i, e := range m.entries {
		if i > 0 {
			w += paneGap
		}
		w += lipgloss.Width(e.picker.View()) + 2*widgets.PaneInsetX
	}
	return w
}

func (m model) paneHeight() int {
	h := 0
	for _, e := range m.entries {
		h = max(h, lipgloss.Height(e.picker.View())+2*widgets.PaneInsetY)
	}
	return h
}

// place tells each picker where its pane content starts on screen.
func (m model) place() {
	offsets := m.stack().Offsets(m.layoutWidth())
	for i, e := range m.entries {
		if i < len(offsets) {
			e.picker.SetOrigin(offsets[i]+widgets.PaneInsetX, headerRows+widgets.PaneInsetY)
		}
	}
}

// paneAt returns the index of the pane under (x, y), or -1.
func (m model) paneAt(x, y int) int {
	if y < headerRows || y >= headerRows+m.paneHeight() {
		return -1
	}
	offsets := m.stack().Offsets(m.layoutWidth())
	for i := len(offsets) - 1; i >= 0; i-- {
		if x >= offsets[i] {
			return i
		}
	}
	return -1
}

func (m model) helpBindings() []key.Binding {
	bindings := m.keys.Help(core.ScopeApp)
	if len(m.entries) > 0 {
		bindings = append(bindings, m.entries[m.focus].picker.Keys().Help(core.ScopePicker)...)
	}
	return bindings
}

// helpGroups is the full help: host keys in one column, picker keys in
// the other.
func (m model) helpGroups() [][]key.Binding {
	groups := [][]key.Binding{m.keys.Help(core.ScopeApp)}
	if len(m.entries) > 0 {
		groups = append(groups, m.entries[m.focus].picker.Keys().Help(core.ScopePicker))
	}
	return groups
}

func (m model) View() string {
	width := m.layoutWidth()
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.colors.ClockActive)).Render("clockface")
	header := widgets.PadCenter(title, width)
	lines := []string{header, ""}
	lines = append(lines, m.stack().Render(width, m.paneHeight()))
	lines = append(lines, "", m.help.ShortHelpView(m.helpBindings()))

	status, fg := m.status, m.colors.ClockText
	if status == "" {
		status = "Ready"
	}
	if m.statusErr {
		fg = statusErrColor
	}
	lines = append(lines, widgets.Bar(status, width, fg, m.colors.ClockBackground))

	out := strings.Join(lines, "\n")
	if m.showHelp {
		return widgets.Popup(out, m.help.FullHelpView(m.helpGroups()), width, lipgloss.Height(out), m.colors)
	}
	return out
}
