package core

import (
	"fmt"
	"math"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/clockface/widgets"
)

// Components replaces parts of the default rendering. Any nil slot uses
// the built-in renderer.
type Components struct {
	Number NumberRenderer
	Top    TopRenderer
	Line   LineRenderer
	Center CenterRenderer
	End    EndRenderer
}

type NumberProps struct {
	Value   int
	Active  bool
	Field   Field
	Opacity float64
	Colors  widgets.Colors
	Styles  widgets.Styles
}

type NumberRenderer interface {
	RenderNumber(NumberProps) string
}

type NumberFunc func(NumberProps) string

func (f NumberFunc) RenderNumber(p NumberProps) string { return f(p) }

// TopProps carries the current reading and mutators. Mutators return
// commands; bind them to Targets so clicks reach the picker.
type TopProps struct {
	Hour         int
	Minute       int
	Period       Period
	Active       Field
	Colors       widgets.Colors
	Styles       widgets.Styles
	SwitchField  func(Field) tea.Cmd
	SetPeriod    func(Period) tea.Cmd
	TogglePeriod func() tea.Cmd
}

// Target is a clickable rectangle, in cells relative to the top view.
type Target struct {
	X, Y, W, H int
	OnClick    tea.Cmd
}

func (t Target) Contains(x, y int) bool {
	return x >= t.X && x < t.X+t.W && y >= t.Y && y < t.Y+t.H
}

type TopView struct {
	Content string
	Targets []Target
}

type TopRenderer interface {
	RenderTop(TopProps) TopView
}

type TopFunc func(TopProps) TopView

func (f TopFunc) RenderTop(p TopProps) TopView { return f(p) }

// LineProps describes one cell of the indicator line. Step counts from the
// centre outwards.
type LineProps struct {
	Step    int
	Steps   int
	Angle   float64
	Opacity float64
	Colors  widgets.Colors
	Styles  widgets.Styles
}

type LineRenderer interface {
	RenderLine(LineProps) string
}

type LineFunc func(LineProps) string

func (f LineFunc) RenderLine(p LineProps) string { return f(p) }

type CenterProps struct {
	Active Field
	Colors widgets.Colors
	Styles widgets.Styles
}

type CenterRenderer interface {
	RenderCenter(CenterProps) string
}

type CenterFunc func(CenterProps) string

func (f CenterFunc) RenderCenter(p CenterProps) string { return f(p) }

type EndProps struct {
	Value   int
	Active  Field
	Opacity float64
	Colors  widgets.Colors
	Styles  widgets.Styles
}

type EndRenderer interface {
	RenderEnd(EndProps) string
}

type EndFunc func(EndProps) string

func (f EndFunc) RenderEnd(p EndProps) string { return f(p) }

func (c Components) withDefaults() Components {
	if c.Number == nil {
		c.Number = NumberFunc(defaultNumber)
	}
	if c.Top == nil {
		c.Top = TopFunc(defaultTop)
	}
	if c.Line == nil {
		c.Line = LineFunc(defaultLine)
	}
	if c.Center == nil {
		c.Center = CenterFunc(defaultCenter)
	}
	if c.End == nil {
		c.End = EndFunc(defaultEnd)
	}
	return c
}

func fg(s lipgloss.Style, hex, bg string, opacity float64) lipgloss.Style {
	return s.Foreground(lipgloss.Color(widgets.Fade(hex, bg, opacity)))
}

func defaultNumber(p NumberProps) string {
	label := strconv.Itoa(p.Value)
	if p.Field == FieldMinute {
		label = fmt.Sprintf("%02d", p.Value)
	}
	if p.Active {
		st := p.Styles.ActiveNumber.
			Background(lipgloss.Color(widgets.Fade(p.Colors.ClockActive, p.Colors.ClockBackground, p.Opacity)))
		return fg(st, p.Colors.ClockActiveText, p.Colors.ClockBackground, p.Opacity).Render(label)
	}
	return fg(p.Styles.Number, p.Colors.ClockText, p.Colors.ClockBackground, p.Opacity).Render(label)
}

func defaultTop(p TopProps) TopView {
	field := func(f Field, text string) string {
		if p.Active == f {
			return p.Styles.TopFieldActive.Render(text)
		}
		return p.Styles.TopField.Render(text)
	}
	period := func(want Period, text string) string {
		if p.Period == want {
			return p.Styles.PeriodActive.Render(text)
		}
		return p.Styles.Period.Render(text)
	}
	hour := field(FieldHour, fmt.Sprintf("%02d", p.Hour))
	sep := p.Styles.TopSeparator.Render(":")
	minute := field(FieldMinute, fmt.Sprintf("%02d", p.Minute))
	am := period(PeriodAM, " AM ")
	pm := period(PeriodPM, " PM ")

	parts := []struct {
		text  string
		click tea.Cmd
	}{
		{hour, p.SwitchField(FieldHour)},
		{sep, nil},
		{minute, p.SwitchField(FieldMinute)},
		{" ", nil},
		{am, p.SetPeriod(PeriodAM)},
		{pm, p.SetPeriod(PeriodPM)},
	}
	view := TopView{}
	x := 0
	for _, part := range parts {
		w := lipgloss.Width(part.text)
		if part.click != nil {
			view.Targets = append(view.Targets, Target{X: x, Y: 0, W: w, H: 1, OnClick: part.click})
		}
		view.Content += part.text
		x += w
	}
	return view
}

func defaultLine(p LineProps) string {
	return fg(p.Styles.Line, p.Colors.Line, p.Colors.ClockBackground, p.Opacity).Render(lineGlyph(p.Angle))
}

// lineGlyph picks the box-drawing character closest to the direction of
// angle (radians, y pointing down).
func lineGlyph(angle float64) string {
	deg := math.Mod(angle*180/math.Pi, 180)
	if deg < 0 {
		deg += 180
	}
	switch {
	case deg < 22.5 || deg >= 157.5:
		return "─"
	case deg < 67.5:
		return "╲"
	case deg < 112.5:
		return "│"
	default:
		return "╱"
	}
}

func defaultCenter(p CenterProps) string {
	return p.Styles.Center.Render("●")
}

func defaultEnd(p EndProps) string {
	return fg(p.Styles.End, p.Colors.End, p.Colors.ClockBackground, p.Opacity).Render("•")
}
