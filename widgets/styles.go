package widgets

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the palette the rest of the UI uses.
const (
	hexText     = "#cdd6f4"
	hexSubtext0 = "#a6adc8"
	hexOverlay1 = "#7f849c"
	hexOverlay0 = "#6c7086"
	hexSurface1 = "#45475a"
	hexSurface0 = "#313244"
	hexBase     = "#1e1e2e"
	hexMantle   = "#181825"
	hexPink     = "#f5c2e7"
	hexLavender = "#b4befe"
	hexGreen    = "#a6e3a1"
)

// Colors is the picker theme. Values are hex strings so they can be blended
// during the field switch fade; empty fields fall back to DefaultColors.
type Colors struct {
	Background      string
	ClockBackground string
	ClockRing       string
	ClockText       string
	ClockActive     string
	ClockActiveText string
	TopInactive     string
	TopInactiveText string
	TopActive       string
	TopActiveText   string
	Line            string
	Center          string
	End             string
	Border          string
	BorderFocused   string
}

func DefaultColors() Colors {
	return Colors{
		Background:      hexBase,
		ClockBackground: hexSurface0,
		ClockRing:       hexOverlay0,
		ClockText:       hexText,
		ClockActive:     hexPink,
		ClockActiveText: hexBase,
		TopInactive:     hexSurface1,
		TopInactiveText: hexSubtext0,
		TopActive:       hexPink,
		TopActiveText:   hexBase,
		Line:            hexOverlay1,
		Center:          hexText,
		End:             hexPink,
		Border:          hexOverlay0,
		BorderFocused:   hexGreen,
	}
}

// WithDefaults fills every empty field from DefaultColors.
func (c Colors) WithDefaults() Colors {
	d := DefaultColors()
	pick := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}
	return Colors{
		Background:      pick(c.Background, d.Background),
		ClockBackground: pick(c.ClockBackground, d.ClockBackground),
		ClockRing:       pick(c.ClockRing, d.ClockRing),
		ClockText:       pick(c.ClockText, d.ClockText),
		ClockActive:     pick(c.ClockActive, d.ClockActive),
		ClockActiveText: pick(c.ClockActiveText, d.ClockActiveText),
		TopInactive:     pick(c.TopInactive, d.TopInactive),
		TopInactiveText: pick(c.TopInactiveText, d.TopInactiveText),
		TopActive:       pick(c.TopActive, d.TopActive),
		TopActiveText:   pick(c.TopActiveText, d.TopActiveText),
		Line:            pick(c.Line, d.Line),
		Center:          pick(c.Center, d.Center),
		End:             pick(c.End, d.End),
		Border:          pick(c.Border, d.Border),
		BorderFocused:   pick(c.BorderFocused, d.BorderFocused),
	}
}

// Styles holds one lipgloss style per picker element. A picker builds its
// own copy at construction; nothing here is shared between instances.
type Styles struct {
	Container      lipgloss.Style
	Outside        lipgloss.Style
	Clock          lipgloss.Style
	Ring           lipgloss.Style
	Number         lipgloss.Style
	ActiveNumber   lipgloss.Style
	Line           lipgloss.Style
	End            lipgloss.Style
	Center         lipgloss.Style
	TopField       lipgloss.Style
	TopFieldActive lipgloss.Style
	Period         lipgloss.Style
	PeriodActive   lipgloss.Style
	TopSeparator   lipgloss.Style
}

func NewStyles(c Colors) Styles {
	c = c.WithDefaults()
	clockBg := lipgloss.Color(c.ClockBackground)
	return Styles{
		Container: lipgloss.NewStyle(),
		Outside:   lipgloss.NewStyle(),
		Clock:     lipgloss.NewStyle().Background(clockBg),
		Ring:      lipgloss.NewStyle().Foreground(lipgloss.Color(c.ClockRing)).Background(clockBg),
		Number:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.ClockText)).Background(clockBg).Bold(true),
		ActiveNumber: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.ClockActiveText)).
			Background(lipgloss.Color(c.ClockActive)).
			Bold(true),
		Line:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Line)).Background(clockBg),
		End:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.End)).Background(clockBg),
		Center: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Center)).Background(clockBg),
		TopField: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.TopInactiveText)).
			Background(lipgloss.Color(c.TopInactive)).
			Bold(true).
			Padding(0, 1),
		TopFieldActive: lipgloss.NewStyle().
				Foreground(lipgloss.Color(c.TopActiveText)).
				Background(lipgloss.Color(c.TopActive)).
				Bold(true).
				Padding(0, 1),
		Period: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.TopInactiveText)).
			Background(lipgloss.Color(c.TopInactive)),
		PeriodActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.TopActiveText)).
			Background(lipgloss.Color(c.TopActive)).
			Bold(true),
		TopSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color(c.TopInactiveText)),
	}
}

// Inset is the number of cells a style's margin, border and padding push
// content away from the top-left corner.
func Inset(s lipgloss.Style) (x, y int) {
	x = s.GetMarginLeft() + s.GetBorderLeftSize() + s.GetPaddingLeft()
	y = s.GetMarginTop() + s.GetBorderTopSize() + s.GetPaddingTop()
	return x, y
}
