package widgets

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Fade blends fg towards bg. opacity 1 returns fg, 0 returns bg. Terminals
// have no alpha channel, so this is how a fade is drawn. Colours that are
// not hex (ANSI indexes) snap at the halfway point instead.
func Fade(fg, bg string, opacity float64) string {
	if opacity >= 1 {
		return fg
	}
	if opacity <= 0 {
		return bg
	}
	f, err := colorful.Hex(fg)
	if err != nil {
		return snap(fg, bg, opacity)
	}
	b, err := colorful.Hex(bg)
	if err != nil {
		return snap(fg, bg, opacity)
	}
	return b.BlendLab(f, opacity).Clamped().Hex()
}

func snap(fg, bg string, opacity float64) string {
	if opacity >= 0.5 {
		return fg
	}
	return bg
}
