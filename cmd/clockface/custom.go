package main

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/clockface/core"
	"github.com/jask/clockface/widgets"
)

// Colours for the customised picker.
const (
	customAccent = "#fab387"
	customMuted  = "#7f849c"
	customText   = "#1e1e2e"
)

func customColors(base widgets.Colors) widgets.Colors {
	c := base
	c.ClockActive = customAccent
	c.ClockActiveText = customText
	c.TopActive = customAccent
	c.TopActiveText = customText
	c.Line = customAccent
	c.End = customAccent
	return c
}

// customComponents replaces the number and top slots. Numbers render bare
// with the active one underlined; the top row toggles the period from a
// single AM|PM switch.
func customComponents() core.Components {
	return core.Components{
		Number: core.NumberFunc(customNumber),
		Top:    core.TopFunc(customTop),
	}
}

func customNumber(p core.NumberProps) string {
	label := strconv.Itoa(p.Value)
	st := lipgloss.NewStyle().Background(lipgloss.Color(p.Colors.ClockBackground))
	if p.Active {
		return st.Bold(true).Underline(true).
			Foreground(lipgloss.Color(widgets.Fade(customAccent, p.Colors.ClockBackground, p.Opacity))).
			Render(label)
	}
	return st.Foreground(lipgloss.Color(widgets.Fade(customMuted, p.Colors.ClockBackground, p.Opacity))).Render(label)
}

func customTop(p core.TopProps) core.TopView {
	on := lipgloss.NewStyle().Bold(true).Padding(0, 1).
		Foreground(lipgloss.Color(p.Colors.TopActiveText)).
		Background(lipgloss.Color(p.Colors.TopActive))
	off := lipgloss.NewStyle().Padding(0, 1).
		Foreground(lipgloss.Color(customMuted))

	pick := func(active bool) lipgloss.Style {
		if active {
			return on
		}
		return off
	}
	hour := pick(p.Active == core.FieldHour).Render(fmt.Sprintf("%02d", p.Hour))
	minute := pick(p.Active == core.FieldMinute).Render(fmt.Sprintf("%02d", p.Minute))
	period := pick(p.Period == core.PeriodAM).Render("AM") + pick(p.Period == core.PeriodPM).Render("PM")

	parts := []struct {
		text  string
		click tea.Cmd
	}{
		{hour, p.SwitchField(core.FieldHour)},
		{" ", nil},
		{minute, p.SwitchField(core.FieldMinute)},
		{"  ", nil},
		{period, p.TogglePeriod()},
	}
	var view core.TopView
	x := 0
	for _, part := range parts {
		w := lipgloss.Width(part.text)
		if part.click != nil {
			view.Targets = append(view.Targets, core.Target{X: x, W: w, H: 1, OnClick: part.click})
		}
		view.Content += part.text
		x += w
	}
	return view
}
