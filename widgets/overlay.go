package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Popup draws content in a bordered card centred over base, which is
// padded or clipped to width x height first.
func Popup(base, content string, width, height int, colors Colors) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	colors = colors.WithDefaults()
	canvas := fitLines(base, width, height)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.BorderFocused)).
		Padding(1, 2).
		Render(content)
	cardLines := strings.Split(card, "\n")
	cardWidth := maxLineWidth(cardLines)
	if cardWidth <= 0 {
		return strings.Join(canvas, "\n")
	}
	x := max(0, (width-cardWidth)/2)
	y := max(0, (height-len(cardLines))/2)
	for i, line := range cardLines {
		row := y + i
		if row >= len(canvas) {
			break
		}
		canvas[row] = splice(canvas[row], padRight(line, cardWidth), x, width)
	}
	return strings.Join(canvas, "\n")
}

// Bar renders one full-width line of text on a solid background.
func Bar(text string, width int, fg, bg string) string {
	if width <= 0 {
		return ""
	}
	line := padRight(strings.ReplaceAll(text, "\n", " "), width)
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Width(width).
		MaxWidth(width).
		Render(line)
}

// splice replaces the columns of target starting at x with over.
func splice(target, over string, x, width int) string {
	target = padRight(target, width)
	left := ansi.Truncate(target, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}
	pos := x + ansi.StringWidth(over)
	right := ansi.TruncateLeft(target, pos, "")
	return ansi.Truncate(left+over+right, width, "")
}

func fitLines(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return lines
}

func maxLineWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		w = max(w, ansi.StringWidth(l))
	}
	return w
}
