package main

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jask/clockface/core"
	"github.com/jask/clockface/internal/config"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CLOCKFACE_CONFIG", "")
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	cfg.Clock.SwitchDuration = 0
	entries, base, err := buildEntries(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("buildEntries: %v", err)
	}
	m := newModel(entries, base.Keys, base.Colors, zerolog.Nop())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(model)
}

// drain runs cmd and feeds every resulting message back into the model.
func drain(t *testing.T, m model, cmd tea.Cmd) model {
	t.Helper()
	for depth := 0; cmd != nil && depth < 16; depth++ {
		msg := cmd()
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				m = drain(t, m, c)
			}
			return m
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			return m
		}
		next, c := m.Update(msg)
		m, cmd = next.(model), c
	}
	return m
}

func send(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, cmd := m.Update(msg)
	return drain(t, next.(model), cmd)
}

func TestTabMovesFocus(t *testing.T) {
	m := newTestModel(t)
	if !m.entries[0].picker.Focused() || m.entries[1].picker.Focused() {
		t.Fatalf("first picker should start focused")
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != 1 || m.entries[0].picker.Focused() || !m.entries[1].picker.Focused() {
		t.Fatalf("tab did not move focus: focus=%d", m.focus)
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != 0 {
		t.Fatalf("focus should wrap, got %d", m.focus)
	}
}

func TestKeysReachOnlyFocusedPicker(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})

	vals := m.Values()
	if vals[0].Period != core.PeriodPM || vals[1].Period != core.PeriodAM {
		t.Fatalf("periods = %s, %s", vals[0].Period, vals[1].Period)
	}
	if !strings.Contains(m.status, "basic") || !strings.Contains(m.status, "pm") {
		t.Fatalf("status = %q", m.status)
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestClickSecondPicker(t *testing.T) {
	m := newTestModel(t)
	// Panes split 100 columns as 49 + gap 2 + 49; the second pane's content
	// starts at column 53, row 3. Three o'clock sits 25 right, 9 down.
	x, y := 53+25, 3+9
	m = send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})

	if m.focus != 1 {
		t.Fatalf("press should focus the second pane, focus=%d", m.focus)
	}
	vals := m.Values()
	if vals[1].Hour != 3 {
		t.Fatalf("second picker hour = %d, want 3", vals[1].Hour)
	}
	if vals[0].Hour != 12 {
		t.Fatalf("first picker changed: %s", vals[0])
	}
	if m.entries[1].picker.Active() != core.FieldMinute {
		t.Fatalf("hour release should advance to minutes")
	}
}

func TestSubmitStatus(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'P'}})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.status != "basic confirmed 12:00" {
		t.Fatalf("status = %q", m.status)
	}
}

func TestViewShowsPanesAndHelp(t *testing.T) {
	m := newTestModel(t)
	out := m.View()
	for _, want := range []string{"basic", "customised", "quit", "Ready"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}

func TestHelpPopupSwallowsPickerKeys(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !m.showHelp {
		t.Fatalf("? should open help")
	}
	if !strings.Contains(m.View(), "anticlockwise") {
		t.Fatalf("full help missing picker bindings")
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	if m.Values()[0].Period != core.PeriodAM {
		t.Fatalf("picker changed while help was open")
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showHelp {
		t.Fatalf("esc should close help")
	}
}

func TestHelpPopupSwallowsMouse(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})

	x, y := 53+25, 3+9
	m = send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})

	if m.focus != 0 {
		t.Fatalf("click behind help moved focus to %d", m.focus)
	}
	if got := m.Values()[1]; got.Hour != 12 {
		t.Fatalf("click behind help changed the second picker: %s", got)
	}
	if m.entries[1].picker.Dragging() {
		t.Fatalf("click behind help started a drag")
	}
}

func TestErrorStatusShown(t *testing.T) {
	m := newTestModel(t)
	m = drain(t, m, core.ErrorCmd(errors.New("config unreadable")))
	if !m.statusErr || m.status != "config unreadable" {
		t.Fatalf("status = %q err=%v", m.status, m.statusErr)
	}
	if !strings.Contains(m.View(), "config unreadable") {
		t.Fatalf("error missing from status bar")
	}
}

func TestApplyFlags(t *testing.T) {
	cmd := &cobra.Command{}
	var f flags
	cmd.Flags().Float64Var(&f.radius, "radius", 0, "")
	cmd.Flags().IntVar(&f.minuteStep, "minute-step", 0, "")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "")
	if err := cmd.Flags().Parse([]string{"--radius", "7", "--minute-step", "5"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	saved := opts
	opts = f
	defer func() { opts = saved }()

	cfg := config.Config{Clock: config.ClockConfig{Radius: 14, NumberRadius: 11, MinuteStep: 1}}
	applyFlags(cmd, &cfg)
	if cfg.Clock.Radius != 7 || cfg.Clock.NumberRadius != 5.5 || cfg.Clock.MinuteStep != 5 {
		t.Fatalf("clock = %+v", cfg.Clock)
	}
	if cfg.Log.File != "" {
		t.Fatalf("unset flag overrode log file: %q", cfg.Log.File)
	}
}
