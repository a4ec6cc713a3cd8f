package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane frames a block of content with a rounded border and a title in the
// top edge. Content starts at PaneInset cells from the pane's corner.
type Pane struct {
	Title   string
	Content string
	Focused bool
	Colors  Colors
}

// PaneInset is the column and row offset of pane content.
const (
	PaneInsetX = 2
	PaneInsetY = 1
)

func (p Pane) Render(width, height int) string {
	if width <= 0 {
		return ""
	}
	colors := p.Colors.WithDefaults()
	contentLines := strings.Split(p.Content, "\n")
	h := len(contentLines) + 2
	if height > 0 && h > height {
		h = height
	}
	if h < 3 {
		h = 3
	}
	if width < 4 {
		width = 4
	}

	border := lipgloss.Color(colors.Border)
	titlePrefix := "  "
	if p.Focused {
		border = lipgloss.Color(colors.BorderFocused)
		titlePrefix = "● "
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colors.ClockText)).Bold(true)

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	title := strings.TrimSpace(titlePrefix + p.Title)
	titleText := " " + title + " "
	if ansi.StringWidth(titleText) > innerWidth {
		titleText = " " + ansi.Truncate(title, max(1, innerWidth-2), "") + " "
	}
	dashes := max(0, innerWidth-ansi.StringWidth(titleText))
	leftDash := min(1, dashes)
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	top := borderStyle.Render("╭"+strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)+"╮")

	rows := make([]string, 0, h)
	rows = append(rows, top)
	for i := 0; i < h-2; i++ {
		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		rows = append(rows, v+" "+padRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}
