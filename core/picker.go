package core

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/jask/clockface/widgets"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Picker is a clock-face time picker. It is driven from a bubbletea
// Update loop and owns its state; nothing else mutates it.
type Picker struct {
	id     int
	opts   Options
	colors widgets.Colors
	styles widgets.Styles
	comps  Components
	keys   *KeyRegistry
	log    zerolog.Logger
	now    func() time.Time

	value   Value
	active  Field
	focused bool

	face    Face
	cols    int
	rows    int
	originX int
	originY int

	gesture *Gesture
	tween   *Tween
}

// New validates opts and builds a picker laid out at its natural size.
func New(opts Options) (*Picker, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	colors := opts.Colors.WithDefaults()
	styles := widgets.NewStyles(colors)
	if opts.Styles != nil {
		styles = opts.Styles(styles)
	}
	bindings := opts.Keys
	if len(bindings) == 0 {
		bindings = DefaultKeyBindings()
	}

	p := &Picker{
		id:      nextID(),
		opts:    opts,
		colors:  colors,
		styles:  styles,
		comps:   opts.Components.withDefaults(),
		keys:    NewKeyRegistry(bindings),
		now:     now,
		value:   opts.initial(),
		active:  FieldHour,
		focused: true,
		gesture: NewGesture(opts.ThrottleInterval, now),
		tween:   NewTween(opts.SwitchDuration),
	}
	p.log = logger.With().Int("picker", p.id).Logger()
	p.Resize(0, 0)
	return p, nil
}

func (p *Picker) ID() int            { return p.id }
func (p *Picker) Value() Value       { return p.value }
func (p *Picker) Active() Field      { return p.active }
func (p *Picker) Face() Face         { return p.face }
func (p *Picker) Focused() bool      { return p.focused }
func (p *Picker) Focus()             { p.focused = true }
func (p *Picker) Blur()              { p.focused = false }
func (p *Picker) Dragging() bool     { return p.gesture.State() == GestureDragging }
func (p *Picker) Animating() bool    { return p.tween.Phase() != TweenIdle }
func (p *Picker) Opacity() float64   { return p.tween.Value() }
func (p *Picker) Keys() *KeyRegistry { return p.keys }

// SurfaceSize is the cell size of the clock surface.
func (p *Picker) SurfaceSize() (cols, rows int) { return p.cols, p.rows }

// SetOrigin records where the host drew the picker's top-left corner, in
// screen cells. Mouse coordinates are made local with it.
func (p *Picker) SetOrigin(x, y int) {
	p.originX, p.originY = x, y
}

// Resize lays the face out on a cols x rows surface. Non-positive sizes
// mean the natural size for the configured radius. The value is untouched.
func (p *Picker) Resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		cols, rows = p.opts.surfaceSize()
	}
	if cols == p.cols && rows == p.rows {
		return
	}
	p.cols, p.rows = cols, rows
	p.face = Layout(float64(cols), float64(rows)*p.opts.CellAspect, p.opts.Radius, p.opts.NumberRadius, p.opts.MinuteStep)
	p.log.Debug().Int("cols", cols).Int("rows", rows).Msg("face laid out")
}

func (p *Picker) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return p.handleMouse(msg)
	case tea.KeyMsg:
		if !p.focused {
			return nil
		}
		return p.handleKey(msg)
	case switchFieldMsg:
		if msg.id == p.id {
			return p.SwitchField(msg.field)
		}
	case setPeriodMsg:
		if msg.id == p.id {
			return p.SetPeriod(msg.period)
		}
	case togglePeriodMsg:
		if msg.id == p.id {
			return p.SetPeriod(p.value.Period.Toggle())
		}
	case frameMsg:
		if msg.id == p.id {
			return p.handleFrame(msg)
		}
	}
	return nil
}

// SwitchField makes field the one being edited, animating the change when a
// switch duration is configured.
func (p *Picker) SwitchField(field Field) tea.Cmd {
	if p.opts.SwitchDuration <= 0 {
		if field == p.active {
			return nil
		}
		p.active = field
		p.gesture.Cancel()
		p.log.Debug().Stringer("field", field).Msg("field switched")
		return nil
	}
	if !p.tween.Start(p.active, field, p.now()) {
		return nil
	}
	p.log.Debug().Stringer("from", p.active).Stringer("to", field).Uint64("gen", p.tween.Generation()).Msg("field switch started")
	return p.frame(p.tween.Generation())
}

// SetPeriod commits am or pm. Any other period is refused and reported as
// an error status.
func (p *Picker) SetPeriod(period Period) tea.Cmd {
	if period != PeriodAM && period != PeriodPM {
		p.log.Warn().Str("period", string(period)).Msg("period refused")
		return ErrorCmd(fmt.Errorf("period %q: %w", period, ErrInvalidValue))
	}
	next := p.value
	next.Period = period
	return p.commit(next)
}

func (p *Picker) frame(gen uint64) tea.Cmd {
	id := p.id
	return tea.Tick(p.opts.FrameInterval, func(time.Time) tea.Msg {
		return frameMsg{id: id, gen: gen}
	})
}

func (p *Picker) handleFrame(msg frameMsg) tea.Cmd {
	if msg.gen != p.tween.Generation() {
		p.log.Debug().Uint64("gen", msg.gen).Uint64("current", p.tween.Generation()).Msg("stale frame dropped")
		return nil
	}
	flip, done := p.tween.Step(p.now())
	if flip {
		p.active = p.tween.Target()
		p.gesture.Cancel()
		p.log.Debug().Stringer("field", p.active).Msg("field switched")
	}
	if done {
		return nil
	}
	return p.frame(msg.gen)
}

// pendingField is the field the picker is on or is switching to.
func (p *Picker) pendingField() Field {
	if p.tween.Phase() == TweenOut {
		return p.tween.Target()
	}
	return p.active
}

func (p *Picker) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch p.keys.Action(msg, ScopePicker) {
	case ActionSwitchHour:
		return p.SwitchField(FieldHour)
	case ActionSwitchMinute:
		return p.SwitchField(FieldMinute)
	case ActionToggleField:
		return p.SwitchField(p.pendingField().Other())
	case ActionTogglePeriod:
		return p.SetPeriod(p.value.Period.Toggle())
	case ActionSetAM:
		return p.SetPeriod(PeriodAM)
	case ActionSetPM:
		return p.SetPeriod(PeriodPM)
	case ActionNext:
		return p.step(1)
	case ActionPrev:
		return p.step(-1)
	case ActionSubmit:
		id, v := p.id, p.value
		p.log.Debug().Str("value", v.String()).Msg("value submitted")
		return func() tea.Msg { return SubmittedMsg{ID: id, Value: v} }
	}
	return nil
}

type viewGeometry struct {
	top   TopView
	topX  int
	topH  int
	faceX int
	faceY int
	width int
	insX  int
	insY  int
}

func (p *Picker) geometry() viewGeometry {
	top := p.comps.Top.RenderTop(p.topProps())
	tw := lipgloss.Width(top.Content)
	width := max(p.cols, tw)
	topH := lipgloss.Height(top.Content)
	insX, insY := widgets.Inset(p.styles.Container)
	return viewGeometry{
		top:   top,
		topX:  (width - tw) / 2,
		topH:  topH,
		faceX: (width - p.cols) / 2,
		faceY: topH + 1,
		width: width,
		insX:  insX,
		insY:  insY,
	}
}

func (p *Picker) topProps() TopProps {
	id := p.id
	return TopProps{
		Hour:   p.value.Hour,
		Minute: p.value.Minute,
		Period: p.value.Period,
		Active: p.pendingField(),
		Colors: p.colors,
		Styles: p.styles,
		SwitchField: func(f Field) tea.Cmd {
			return func() tea.Msg { return switchFieldMsg{id: id, field: f} }
		},
		SetPeriod: func(period Period) tea.Cmd {
			return func() tea.Msg { return setPeriodMsg{id: id, period: period} }
		},
		TogglePeriod: func() tea.Cmd {
			return func() tea.Msg { return togglePeriodMsg{id: id} }
		},
	}
}

func (p *Picker) handleMouse(msg tea.MouseMsg) tea.Cmd {
	g := p.geometry()
	lx := msg.X - p.originX - g.insX
	ly := msg.Y - p.originY - g.insY
	pt := CellCenter(lx-g.faceX, ly-g.faceY, p.opts.CellAspect)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if ly >= 0 && ly < g.topH {
				for _, t := range g.top.Targets {
					if t.Contains(lx-g.topX, ly) {
						return t.OnClick
					}
				}
				return nil
			}
			pos, ok := p.gesture.Press(p.face, pt)
			if !ok {
				return nil
			}
			return p.resolve(pos)
		case tea.MouseButtonWheelUp:
			if p.face.Contains(pt) {
				return p.step(1)
			}
		case tea.MouseButtonWheelDown:
			if p.face.Contains(pt) {
				return p.step(-1)
			}
		}
	case tea.MouseActionMotion:
		if pos, ok := p.gesture.Move(pt); ok {
			return p.resolve(pos)
		}
	case tea.MouseActionRelease:
		ended, last, ok := p.gesture.Release(pt, true)
		if !ended {
			return nil
		}
		var cmds []tea.Cmd
		if ok {
			cmds = append(cmds, p.resolve(last))
		}
		if p.opts.AutoAdvance && p.pendingField() == FieldHour {
			cmds = append(cmds, p.SwitchField(FieldMinute))
		}
		return tea.Batch(cmds...)
	}
	return nil
}

// resolve commits the tick nearest to pt for the active field.
func (p *Picker) resolve(pt Point) tea.Cmd {
	points := p.face.Points(p.active)
	idx := Nearest(points, pt)
	if idx < 0 || idx >= len(points) {
		return nil
	}
	next := p.value
	next.set(p.active, points[idx].Value)
	return p.commit(next)
}

// step moves the active field one tick around the face, wrapping.
func (p *Picker) step(dir int) tea.Cmd {
	points := p.face.Points(p.active)
	n := len(points)
	if n == 0 {
		return nil
	}
	cur := p.value.field(p.active)
	idx := IndexOf(points, cur)
	switch {
	case idx >= 0:
		idx = (idx + dir + n) % n
	case dir > 0:
		idx = (cur/p.opts.MinuteStep + 1) % n
	default:
		idx = (cur / p.opts.MinuteStep) % n
	}
	next := p.value
	next.set(p.active, points[idx].Value)
	return p.commit(next)
}

// commit stores next and notifies listeners. Notification happens only
// after the state holds the new value.
func (p *Picker) commit(next Value) tea.Cmd {
	if next == p.value {
		return nil
	}
	p.value = next
	p.log.Debug().Str("value", next.String()).Stringer("field", p.active).Msg("value committed")
	if p.opts.OnChange != nil {
		p.opts.OnChange(next)
	}
	id := p.id
	return func() tea.Msg { return ChangedMsg{ID: id, Value: next} }
}

func (p *Picker) View() string {
	g := p.geometry()
	lines := make([]string, 0, g.topH+1+p.rows)
	for _, l := range strings.Split(g.top.Content, "\n") {
		lines = append(lines, strings.Repeat(" ", g.topX)+l)
	}
	lines = append(lines, "")
	for _, l := range strings.Split(p.renderFace(), "\n") {
		lines = append(lines, strings.Repeat(" ", g.faceX)+l)
	}
	return p.styles.Container.Render(strings.Join(lines, "\n"))
}

func valueAngle(field Field, v int) float64 {
	turn := float64(v%12) / 12
	if field == FieldMinute {
		turn = float64(v%60) / 60
	}
	return turn*2*math.Pi - math.Pi/2
}

func (p *Picker) renderFace() string {
	aspect := p.opts.CellAspect
	center := p.face.Center
	inside := func(col, row int) bool {
		return p.face.Contains(CellCenter(col, row, aspect))
	}
	c := widgets.NewCanvas(p.cols, p.rows, inside, p.styles.Clock, p.styles.Outside)

	opacity := p.tween.Value()
	if opacity > 0.05 {
		points := p.face.Points(p.active)
		cur := p.value.field(p.active)
		r := p.face.NumberRadius * p.tween.Scale()
		labelEvery := 1
		if p.active == FieldMinute && len(points) == 60 {
			labelEvery = 5
		}

		tick := widgets.Fade(p.colors.ClockRing, p.colors.ClockBackground, opacity)
		for i, pt := range points {
			if i%labelEvery == 0 || pt.Value == cur {
				continue
			}
			col, row := CellOf(PointAt(center, r, pt.Angle), aspect)
			if c.Empty(col, row) {
				c.Put(col, row, p.styles.Ring.Foreground(lipgloss.Color(tick)).Render("·"))
			}
		}

		angle := valueAngle(p.active, cur)
		cells := lineCells(center, angle, r-1.5, aspect)
		for i, cell := range cells {
			if i == len(cells)-1 {
				c.Put(cell[0], cell[1], p.comps.End.RenderEnd(EndProps{
					Value: cur, Active: p.active, Opacity: opacity, Colors: p.colors, Styles: p.styles,
				}))
				break
			}
			c.Put(cell[0], cell[1], p.comps.Line.RenderLine(LineProps{
				Step: i, Steps: len(cells), Angle: angle, Opacity: opacity, Colors: p.colors, Styles: p.styles,
			}))
		}

		for i, pt := range points {
			active := pt.Value == cur
			if i%labelEvery != 0 && !active {
				continue
			}
			col, row := CellOf(PointAt(center, r, pt.Angle), aspect)
			c.PutCentered(col, row, p.comps.Number.RenderNumber(NumberProps{
				Value: pt.Value, Active: active, Field: p.active, Opacity: opacity, Colors: p.colors, Styles: p.styles,
			}))
		}
	}

	col, row := CellOf(center, aspect)
	c.Put(col, row, p.comps.Center.RenderCenter(CenterProps{Active: p.active, Colors: p.colors, Styles: p.styles}))
	return c.Render()
}

// lineCells lists the distinct cells from just outside the centre out to
// length along angle.
func lineCells(center Point, angle, length, aspect float64) [][2]int {
	cc, cr := CellOf(center, aspect)
	var out [][2]int
	for d := 0.5; d <= length; d += 0.5 {
		col, row := CellOf(PointAt(center, d, angle), aspect)
		if col == cc && row == cr {
			continue
		}
		if n := len(out); n > 0 && out[n-1] == [2]int{col, row} {
			continue
		}
		out = append(out, [2]int{col, row})
	}
	return out
}
