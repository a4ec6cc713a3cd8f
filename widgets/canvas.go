package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Canvas is a fixed grid of terminal cells. Text is placed at cell
// positions and may already carry ANSI styling; a multi-column string owns
// the cells it covers. Empty cells are painted with one of two blank styles
// chosen by the Inside mask.
type Canvas struct {
	width   int
	height  int
	text    []string
	owner   []int // index of the cell whose text covers this one, or -1
	inside  func(col, row int) bool
	blankIn lipgloss.Style
	blank   lipgloss.Style
}

func NewCanvas(width, height int, inside func(col, row int) bool, blankIn, blank lipgloss.Style) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &Canvas{
		width:   width,
		height:  height,
		text:    make([]string, width*height),
		owner:   make([]int, width*height),
		inside:  inside,
		blankIn: blankIn,
		blank:   blank,
	}
	for i := range c.owner {
		c.owner[i] = -1
	}
	return c
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Empty reports whether nothing has been drawn at (col, row).
func (c *Canvas) Empty(col, row int) bool {
	if !c.in(col, row) {
		return false
	}
	return c.owner[row*c.width+col] < 0
}

// Put draws s with its first column at (col, row), clipping at the edges.
func (c *Canvas) Put(col, row int, s string) {
	if row < 0 || row >= c.height || s == "" {
		return
	}
	if col < 0 {
		s = ansi.TruncateLeft(s, -col, "")
		col = 0
	}
	if col >= c.width {
		return
	}
	w := ansi.StringWidth(s)
	if col+w > c.width {
		s = ansi.Truncate(s, c.width-col, "")
		w = ansi.StringWidth(s)
	}
	if w == 0 {
		return
	}
	base := row * c.width
	for i := col; i < col+w; i++ {
		c.clear(base + i)
	}
	c.text[base+col] = s
	for i := col; i < col+w; i++ {
		c.owner[base+i] = base + col
	}
}

// PutCentered draws s so that its middle column sits on col.
func (c *Canvas) PutCentered(col, row int, s string) {
	c.Put(col-(ansi.StringWidth(s)-1)/2, row, s)
}

func (c *Canvas) clear(i int) {
	o := c.owner[i]
	if o < 0 {
		return
	}
	row := o / c.width
	end := (row + 1) * c.width
	for j := o; j < end && c.owner[j] == o; j++ {
		c.owner[j] = -1
	}
	c.text[o] = ""
}

func (c *Canvas) in(col, row int) bool {
	return col >= 0 && col < c.width && row >= 0 && row < c.height
}

func (c *Canvas) isInside(col, row int) bool {
	return c.inside != nil && c.inside(col, row)
}

// Render paints the grid, merging runs of blank cells that share a style.
func (c *Canvas) Render() string {
	lines := make([]string, c.height)
	for row := 0; row < c.height; row++ {
		var b strings.Builder
		base := row * c.width
		col := 0
		for col < c.width {
			i := base + col
			if o := c.owner[i]; o >= 0 {
				if o == i {
					b.WriteString(c.text[i])
				}
				col++
				continue
			}
			in := c.isInside(col, row)
			run := 0
			for col < c.width && c.owner[base+col] < 0 && c.isInside(col, row) == in {
				run++
				col++
			}
			style := c.blank
			if in {
				style = c.blankIn
			}
			b.WriteString(style.Render(strings.Repeat(" ", run)))
		}
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}
