package core

import tea "github.com/charmbracelet/bubbletea"

// ChangedMsg is sent after a picker commits a new value.
type ChangedMsg struct {
	ID    int
	Value Value
}

// SubmittedMsg is sent when the user confirms the value.
type SubmittedMsg struct {
	ID    int
	Value Value
}

// StatusMsg carries a line for a host status bar.
type StatusMsg struct {
	Text  string
	IsErr bool
}

type switchFieldMsg struct {
	id    int
	field Field
}

type setPeriodMsg struct {
	id     int
	period Period
}

type togglePeriodMsg struct {
	id int
}

// frameMsg asks for one tween step. The step reads the picker's injected
// clock, not the tick time.
type frameMsg struct {
	id  int
	gen uint64
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}
